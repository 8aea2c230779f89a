package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyMessage      = errors.New("message is empty")
	ErrMissingCredential = errors.New("groq API key is not configured")
	ErrSessionNotFound   = errors.New("session not found")
)

// User-visible failure messages.
const (
	ErrMsgToolCallFormat = "The model produced a malformed tool call. Try rephrasing your question or asking it more simply."
	ErrMsgGeneric        = "An error occurred: "
	InfoMsgMissingKey    = "Please add your Groq API key in the sidebar to continue."
)
