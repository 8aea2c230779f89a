package chat

import (
	"context"

	"chat-with-search/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// StartSession creates a transcript seeded with the greeting.
	StartSession(ctx context.Context) (model.Session, error)

	// GetSession returns a transcript without changing it.
	GetSession(ctx context.Context, id string) (model.Session, error)

	// CredentialStatus reports whether an API key is available for a round.
	CredentialStatus(apiKeyOverride string) CredentialStatus

	// Send runs one round: record the question, ask the agent, record the answer.
	Send(ctx context.Context, input SendInput) (SendOutput, error)
}
