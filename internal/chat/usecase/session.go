package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"chat-with-search/internal/chat"
	"chat-with-search/internal/chat/repository"
	"chat-with-search/internal/model"
)

func newSessionID() string {
	return uuid.NewString()
}

// StartSession creates a transcript seeded with the greeting.
func (uc *implUseCase) StartSession(ctx context.Context) (model.Session, error) {
	s, err := uc.repo.CreateSession(ctx, repository.CreateSessionOptions{
		ID: uc.newID(),
		Seed: []model.Turn{{
			Role:      model.RoleAssistant,
			Content:   uc.greeting,
			CreatedAt: uc.now(),
		}},
	})
	if err != nil {
		uc.l.Errorf(ctx, "StartSession: failed to create session: %v", err)
		return model.Session{}, fmt.Errorf("failed to start session: %w", err)
	}

	uc.l.Infof(ctx, "StartSession: session=%s", s.ID)
	return s, nil
}

// GetSession returns the transcript as stored. Redisplaying never changes it.
func (uc *implUseCase) GetSession(ctx context.Context, id string) (model.Session, error) {
	if id == "" {
		return model.Session{}, chat.ErrSessionNotFound
	}
	return uc.repo.GetSession(ctx, id)
}

// CredentialStatus reports whether a round can run. A key typed into the page
// takes precedence over the environment.
func (uc *implUseCase) CredentialStatus(apiKeyOverride string) chat.CredentialStatus {
	switch {
	case apiKeyOverride != "":
		return chat.CredentialStatus{Available: true, Source: chat.CredentialOverride}
	case uc.envKeyAvailable:
		return chat.CredentialStatus{Available: true, Source: chat.CredentialEnvironment}
	default:
		return chat.CredentialStatus{Available: false, Source: chat.CredentialNone}
	}
}
