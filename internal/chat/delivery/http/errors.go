package http

import (
	"errors"
	"net/http"

	"chat-with-search/internal/chat"
	pkgErrors "chat-with-search/pkg/errors"
)

// Error codes returned in response.Resp.ErrorCode.
const (
	ErrCodeEmptyMessage      = 40001
	ErrCodeInvalidRequest    = 40002
	ErrCodeMissingCredential = 40101
	ErrCodeSessionNotFound   = 40401
	ErrCodeToolCallFormat    = 42201
	ErrCodeInternal          = 50001
	ErrCodeAgentFailed       = 50201
)

var errInvalidRequest = pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, ErrCodeEmptyMessage, err.Error())
	case errors.Is(err, chat.ErrMissingCredential):
		return pkgErrors.NewHTTPErrorWithCode(http.StatusUnauthorized, ErrCodeMissingCredential, chat.InfoMsgMissingKey)
	case errors.Is(err, chat.ErrSessionNotFound):
		return pkgErrors.NewHTTPErrorWithCode(http.StatusNotFound, ErrCodeSessionNotFound, err.Error())
	default:
		return pkgErrors.NewHTTPErrorWithCode(http.StatusInternalServerError, ErrCodeInternal, "internal server error")
	}
}

// mapFailure translates a failed round into an HTTP error.
func (h *handler) mapFailure(f *chat.Failure) error {
	if f.Class == chat.FailureToolCallFormat {
		return pkgErrors.NewHTTPErrorWithCode(http.StatusUnprocessableEntity, ErrCodeToolCallFormat, f.Message)
	}
	return pkgErrors.NewHTTPErrorWithCode(http.StatusBadGateway, ErrCodeAgentFailed, f.Message)
}
