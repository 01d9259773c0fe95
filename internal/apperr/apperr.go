// Package apperr defines the domain error type shared by all HTTP-facing
// services. An Error carries the status code it should be surfaced with so a
// single filter can translate any failure into the response envelope.
package apperr

import (
	"fmt"
	"net/http"
)

// Error is a domain error with an associated HTTP status.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New builds an Error with an explicit status.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Newf builds an Error with a formatted message.
func Newf(status int, format string, args ...any) *Error {
	return &Error{Status: status, Message: fmt.Sprintf(format, args...)}
}

// BadRequest builds a 400 Error.
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// Unauthorized builds a 401 Error.
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// Forbidden builds a 403 Error.
func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}
