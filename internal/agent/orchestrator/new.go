package orchestrator

import (
	"chat-with-search/internal/agent"
	"chat-with-search/pkg/llmprovider"
	pkgLog "chat-with-search/pkg/log"
)

type Orchestrator struct {
	newManager  llmprovider.ManagerFactory
	registry    *agent.ToolRegistry
	l           pkgLog.Logger
	timezone    string
	historyMode HistoryMode
	maxSteps    int
}

func New(newManager llmprovider.ManagerFactory, registry *agent.ToolRegistry, l pkgLog.Logger, opts Options) *Orchestrator {
	if opts.Timezone == "" {
		opts.Timezone = DefaultTimezone
	}
	if opts.HistoryMode == "" {
		opts.HistoryMode = HistoryFull
	}
	if opts.MaxSteps <= 0 {
		opts.MaxSteps = DefaultMaxAgentSteps
	}
	return &Orchestrator{
		newManager:  newManager,
		registry:    registry,
		l:           l,
		timezone:    opts.Timezone,
		historyMode: opts.HistoryMode,
		maxSteps:    opts.MaxSteps,
	}
}
