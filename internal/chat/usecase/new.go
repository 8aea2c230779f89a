package usecase

import (
	"hash/fnv"
	"sync"
	"time"

	"chat-with-search/internal/chat"
	"chat-with-search/internal/chat/repository"
	pkgLog "chat-with-search/pkg/log"
)

type implUseCase struct {
	l               pkgLog.Logger
	repo            repository.SessionRepository
	agent           Agent
	greeting        string
	envKeyAvailable bool
	locks           [sessionLockStripes]sync.Mutex
	newID           func() string
	now             func() time.Time
}

// New creates a new chat UseCase instance.
func New(l pkgLog.Logger, repo repository.SessionRepository, agent Agent, opts Options) chat.UseCase {
	if opts.Greeting == "" {
		opts.Greeting = DefaultGreeting
	}
	return &implUseCase{
		l:               l,
		repo:            repo,
		agent:           agent,
		greeting:        opts.Greeting,
		envKeyAvailable: opts.EnvKeyAvailable,
		newID:           newSessionID,
		now:             time.Now,
	}
}

// lockSession serialises rounds of one session. Different sessions may share
// a stripe, which only costs some parallelism.
func (uc *implUseCase) lockSession(id string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	mu := &uc.locks[h.Sum32()%sessionLockStripes]
	mu.Lock()
	return mu.Unlock
}
