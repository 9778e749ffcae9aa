// Package apierror defines the error kinds the service layer surfaces to the
// HTTP boundary. Every error carries an HTTP-style status and a message that
// handlers return verbatim; nothing is retried or translated on the way out.
package apierror

import (
	"errors"
	"net/http"
)

type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// NewNotFound reports a required record that does not exist.
func NewNotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// NewBadRequest reports a validation failure in an otherwise well-formed request.
func NewBadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// NewInternal reports an underlying store or infrastructure failure.
func NewInternal(message string, cause error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, Err: cause}
}

// From returns err as an *Error, wrapping unknown errors as internal ones so
// the boundary always has a status and a safe message to send.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &Error{Status: http.StatusInternalServerError, Message: "Internal server error", Err: err}
}

// StatusOf extracts the HTTP status carried by err, defaulting to 500.
func StatusOf(err error) int {
	return From(err).Status
}
