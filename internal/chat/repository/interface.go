package repository

import (
	"context"

	"chat-with-search/internal/model"
)

// SessionRepository stores chat transcripts. Implementations return copies,
// and AppendTurn is the only way a stored transcript changes.
type SessionRepository interface {
	CreateSession(ctx context.Context, opt CreateSessionOptions) (model.Session, error)
	GetSession(ctx context.Context, id string) (model.Session, error)
	AppendTurn(ctx context.Context, id string, turn model.Turn) (model.Session, error)
	Len() int
}
