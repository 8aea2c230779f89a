package usecase

import (
	"context"
	"errors"
	"strings"

	"chat-with-search/internal/agent/orchestrator"
	"chat-with-search/internal/chat"
	"chat-with-search/internal/model"
	"chat-with-search/pkg/llmprovider"
)

// Send runs one round. The user turn is recorded before the agent is called;
// the assistant turn only when the agent answered. A failed round is reported
// in SendOutput.Failure and is not retried.
func (uc *implUseCase) Send(ctx context.Context, input chat.SendInput) (chat.SendOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.SendOutput{}, chat.ErrEmptyMessage
	}

	apiKey := strings.TrimSpace(input.APIKeyOverride)
	if !uc.CredentialStatus(apiKey).Available {
		uc.l.Warnf(ctx, "Send: session=%s no API key configured", input.SessionID)
		return chat.SendOutput{}, chat.ErrMissingCredential
	}

	unlock := uc.lockSession(input.SessionID)
	defer unlock()

	userTurn := model.Turn{Role: model.RoleUser, Content: message, CreatedAt: uc.now()}
	session, err := uc.repo.AppendTurn(ctx, input.SessionID, userTurn)
	if err != nil {
		return chat.SendOutput{}, err
	}

	uc.l.Infof(ctx, "Send: session=%s turns=%d", session.ID, len(session.Turns))

	reply, err := uc.agent.Reply(ctx, orchestrator.ReplyInput{
		APIKey:  apiKey,
		History: session.Turns[:len(session.Turns)-1],
		Query:   message,
	})
	if err != nil {
		failure := classifyFailure(err)
		uc.l.Errorf(ctx, "Send: session=%s round failed (%s): %v", session.ID, failure.Class, err)
		return chat.SendOutput{Session: session, UserTurn: userTurn, Failure: failure}, nil
	}

	assistantTurn := model.Turn{Role: model.RoleAssistant, Content: reply, CreatedAt: uc.now()}
	session, err = uc.repo.AppendTurn(ctx, session.ID, assistantTurn)
	if err != nil {
		return chat.SendOutput{}, err
	}

	return chat.SendOutput{Session: session, UserTurn: userTurn, Assistant: &assistantTurn}, nil
}

func classifyFailure(err error) *chat.Failure {
	if errors.Is(err, llmprovider.ErrToolCallFormat) {
		return &chat.Failure{Class: chat.FailureToolCallFormat, Message: chat.ErrMsgToolCallFormat}
	}
	return &chat.Failure{Class: chat.FailureGeneric, Message: chat.ErrMsgGeneric + err.Error()}
}
