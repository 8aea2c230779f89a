package errors

import "fmt"

// HTTPError is an error with the HTTP status and error code it should be reported with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// NewHTTPError creates an HTTPError whose error code equals its status.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: statusCode, Message: message}
}

// NewHTTPErrorWithCode creates an HTTPError with a domain error code.
func NewHTTPErrorWithCode(statusCode, code int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) String() string {
	return fmt.Sprintf("%d/%d: %s", e.StatusCode, e.Code, e.Message)
}
