package groq

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrToolUseFailed means the model produced a malformed tool call.
	ErrToolUseFailed = errors.New("groq: tool use failed")

	// ErrRateLimited means the API answered 429.
	ErrRateLimited = errors.New("groq: rate limited")

	// ErrUnauthorized means the API key was rejected.
	ErrUnauthorized = errors.New("groq: unauthorized")
)

// APIError is a non-200 answer from the API.
type APIError struct {
	StatusCode       int
	Type             string
	Code             string
	Message          string
	FailedGeneration string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("groq: API error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("groq: API error %d: %s", e.StatusCode, e.Message)
}

// Is lets callers match the sentinel errors with errors.Is.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrToolUseFailed:
		return e.Code == codeToolUseFailed
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	}
	return false
}
