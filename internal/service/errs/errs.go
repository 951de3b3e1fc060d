// Package errs carries the uniform error shape that crosses the service
// boundary: a numeric status and a client-safe message.
package errs

import (
	"fmt"
	"net/http"
)

// Error is the error type surfaced to callers. Internal detail never travels
// in Message; it stays in the operator logs.
type Error struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// New creates an Error with the given status code and message.
func New(status int, message string) *Error {
	return &Error{
		Status:  status,
		Message: message,
	}
}

// NotFoundf creates a not-found Error with a formatted message.
func NotFoundf(format string, args ...any) *Error {
	return New(http.StatusNotFound, fmt.Sprintf(format, args...))
}

// BadRequest creates a client-error Error.
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}
