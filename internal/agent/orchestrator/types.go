package orchestrator

import "chat-with-search/internal/model"

// HistoryMode selects how much of the transcript the model sees.
type HistoryMode string

const (
	// HistoryFull sends every prior turn.
	HistoryFull HistoryMode = "full"
	// HistoryLatest sends only the new question.
	HistoryLatest HistoryMode = "latest"
)

// Options tunes the agent loop.
type Options struct {
	Timezone    string
	HistoryMode HistoryMode
	MaxSteps    int
}

// ReplyInput is one question plus the transcript that preceded it.
type ReplyInput struct {
	APIKey  string // Empty uses the configured key
	History []model.Turn
	Query   string
}
