package orchestrator

import "errors"

var (
	// ErrEmptyResponse is returned when the model answers with neither text nor tool calls.
	ErrEmptyResponse = errors.New("empty LLM response")
)
