package chat

import "chat-with-search/internal/model"

// FailureClass classifies a failed round.
type FailureClass string

const (
	FailureToolCallFormat FailureClass = "tool_call_format"
	FailureGeneric        FailureClass = "generic"
)

// CredentialSource tells where the effective API key comes from.
type CredentialSource string

const (
	CredentialNone        CredentialSource = ""
	CredentialOverride    CredentialSource = "override"
	CredentialEnvironment CredentialSource = "environment"
)

// CredentialStatus reports whether a round can run.
type CredentialStatus struct {
	Available bool
	Source    CredentialSource
}

// SendInput is the input for one chat round.
type SendInput struct {
	SessionID      string
	Message        string
	APIKeyOverride string // Key typed into the page; wins over the environment
}

// Failure describes a round that produced no assistant turn.
type Failure struct {
	Class   FailureClass `json:"class"`
	Message string       `json:"message"`
}

// SendOutput is the result of one chat round.
// Failure is nil when the assistant answered.
type SendOutput struct {
	Session   model.Session
	UserTurn  model.Turn
	Assistant *model.Turn
	Failure   *Failure
}
