package usecase

import (
	"context"
	"errors"
	"testing"

	"chat-with-search/internal/chat"
	"chat-with-search/internal/model"
)

func TestStartSession(t *testing.T) {
	uc := newTestUseCase(echoAgent(), true)
	ctx := context.Background()

	a, err := uc.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	b, _ := uc.StartSession(ctx)

	if a.ID == "" || a.ID == b.ID {
		t.Errorf("expected distinct ids, got %q and %q", a.ID, b.ID)
	}
	if len(a.Turns) != 1 || a.Turns[0].Role != model.RoleAssistant || a.Turns[0].Content != "I'm ready to help." {
		t.Errorf("expected greeting seed, got %+v", a.Turns)
	}
}

func TestStartSession_DefaultGreeting(t *testing.T) {
	uc := New(&mockLogger{}, nil, nil, Options{}).(*implUseCase)
	if uc.greeting != DefaultGreeting {
		t.Errorf("expected default greeting, got %q", uc.greeting)
	}
}

func TestGetSession_IsIdempotent(t *testing.T) {
	uc := newTestUseCase(echoAgent(), true)
	ctx := context.Background()
	s, _ := uc.StartSession(ctx)
	_, _ = uc.Send(ctx, chat.SendInput{SessionID: s.ID, Message: "hi"})

	first, _ := uc.GetSession(ctx, s.ID)
	for i := 0; i < 5; i++ {
		again, err := uc.GetSession(ctx, s.ID)
		if err != nil {
			t.Fatalf("GetSession() error = %v", err)
		}
		if len(again.Turns) != len(first.Turns) {
			t.Fatalf("redisplay changed the transcript: %d vs %d turns", len(again.Turns), len(first.Turns))
		}
		for j := range first.Turns {
			if again.Turns[j] != first.Turns[j] {
				t.Errorf("turn %d changed on redisplay", j)
			}
		}
	}

	if _, err := uc.GetSession(ctx, ""); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound for empty id, got %v", err)
	}
}

func TestCredentialStatus(t *testing.T) {
	tests := []struct {
		name     string
		envKey   bool
		override string
		want     chat.CredentialStatus
	}{
		{name: "none", want: chat.CredentialStatus{Available: false, Source: chat.CredentialNone}},
		{name: "environment", envKey: true, want: chat.CredentialStatus{Available: true, Source: chat.CredentialEnvironment}},
		{name: "override", override: "k", want: chat.CredentialStatus{Available: true, Source: chat.CredentialOverride}},
		{name: "override wins", envKey: true, override: "k", want: chat.CredentialStatus{Available: true, Source: chat.CredentialOverride}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(echoAgent(), tt.envKey)
			if got := uc.CredentialStatus(tt.override); got != tt.want {
				t.Errorf("CredentialStatus() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
