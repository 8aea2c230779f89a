package memory

import (
	"context"
	"fmt"

	"chat-with-search/internal/chat"
	"chat-with-search/internal/chat/repository"
	"chat-with-search/internal/model"
)

func (r *implRepository) CreateSession(ctx context.Context, opt repository.CreateSessionOptions) (model.Session, error) {
	if opt.ID == "" {
		return model.Session{}, fmt.Errorf("session id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sessions.Contains(opt.ID) {
		return model.Session{}, fmt.Errorf("session %s already exists", opt.ID)
	}

	now := r.now()
	s := model.Session{
		ID:        opt.ID,
		Turns:     append([]model.Turn(nil), opt.Seed...),
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.sessions.Add(s.ID, s)
	return s.Clone(), nil
}

func (r *implRepository) GetSession(ctx context.Context, id string) (model.Session, error) {
	s, ok := r.sessions.Get(id)
	if !ok {
		return model.Session{}, chat.ErrSessionNotFound
	}
	return s.Clone(), nil
}

func (r *implRepository) AppendTurn(ctx context.Context, id string, turn model.Turn) (model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions.Get(id)
	if !ok {
		return model.Session{}, chat.ErrSessionNotFound
	}

	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = r.now()
	}
	s = s.Clone()
	s.Turns = append(s.Turns, turn)
	s.UpdatedAt = turn.CreatedAt

	// Re-adding refreshes the TTL.
	r.sessions.Add(id, s)
	return s.Clone(), nil
}

func (r *implRepository) Len() int {
	return r.sessions.Len()
}
