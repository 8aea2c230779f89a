package memory

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"chat-with-search/internal/chat/repository"
	"chat-with-search/internal/model"
)

const (
	DefaultMaxSessions = 10000
	DefaultTTL         = 12 * time.Hour
)

type implRepository struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, model.Session]
	now      func() time.Time
}

// New creates an in-memory session repository. Sessions expire ttl after
// their last change; the least recently used ones are evicted past maxSessions.
func New(maxSessions int, ttl time.Duration) repository.SessionRepository {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{
		sessions: expirable.NewLRU[string, model.Session](maxSessions, nil, ttl),
		now:      time.Now,
	}
}
