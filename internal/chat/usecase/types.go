package usecase

import (
	"context"

	"chat-with-search/internal/agent/orchestrator"
)

// Agent answers one question given the transcript so far.
type Agent interface {
	Reply(ctx context.Context, input orchestrator.ReplyInput) (string, error)
}

// Options configures the chat use case.
type Options struct {
	Greeting string
	// EnvKeyAvailable is true when a key came from the environment or .env.
	EnvKeyAvailable bool
}

// DefaultGreeting seeds every new transcript.
const DefaultGreeting = "Hi, I am a chatbot who can search the web. How can I help you?"

// sessionLockStripes bounds the per-session lock table.
const sessionLockStripes = 256
