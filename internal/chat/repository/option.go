package repository

import "chat-with-search/internal/model"

// CreateSessionOptions holds the parameters for creating a session.
type CreateSessionOptions struct {
	ID   string       // Must be unique; generated by the caller
	Seed []model.Turn // Initial turns, usually the greeting
}
