package easypostapi

import (
	"errors"
	"fmt"
)

// ErrRequestFailed is the sentinel wrapped by every RequestError.
var ErrRequestFailed = errors.New("shipping api request failed")

// RequestError reports a failed round trip against the shipping service:
// transport failures, non-success statuses and unreadable response bodies all
// surface through it. Callers distinguish it from domain validation errors
// with errors.Is(err, ErrRequestFailed) or errors.As.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Cause      error
}

// NewRequestError creates a RequestError for a response the service answered
// with a non-success status.
//
// Parameters:
//   - method: HTTP method of the failed request
//   - path: Request path relative to the API base
//   - statusCode: Status the service answered with
//   - message: Remote error message, or a body excerpt when none was decodable
//
// Returns:
//   - *RequestError: The constructed error
func NewRequestError(method string, path string, statusCode int, message string) *RequestError {
	return &RequestError{
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewRequestErrorWithCause creates a RequestError for a round trip that never
// produced a usable response: transport failures and malformed bodies.
//
// Parameters:
//   - method: HTTP method of the failed request
//   - path: Request path relative to the API base
//   - cause: Underlying error
//
// Returns:
//   - *RequestError: The constructed error
func NewRequestErrorWithCause(method string, path string, cause error) *RequestError {
	return &RequestError{
		Method: method,
		Path:   path,
		Cause:  cause,
	}
}

func (e *RequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %s)", ErrRequestFailed, e.Method, e.Path, e.Cause)
	}

	return fmt.Sprintf("%s: %s %s: status %d: %s", ErrRequestFailed, e.Method, e.Path, e.StatusCode, e.Message)
}

func (e *RequestError) Unwrap() error {
	return ErrRequestFailed
}
