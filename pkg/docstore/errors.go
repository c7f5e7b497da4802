package docstore

import (
	"net/http"
)

// Error is a failed document operation. Status is the HTTP status the
// operation maps to and Message the text returned to the client.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for this error.
func (e *Error) StatusCode() int {
	return e.Status
}

// Is reports whether target is an *Error with the same status, so callers can
// test for a kind of failure with errors.Is(err, docstore.ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Status == e.Status
}

// Error kinds. Compare with errors.Is; the messages carried by returned errors
// are more specific.
var (
	ErrBadRequest       = &Error{Status: http.StatusBadRequest, Message: "Bad Request"}
	ErrNotFound         = &Error{Status: http.StatusNotFound, Message: "Not Found"}
	ErrMethodNotAllowed = &Error{Status: http.StatusMethodNotAllowed, Message: "Method Not Allowed"}
	ErrInternal         = &Error{Status: http.StatusInternalServerError, Message: "Internal Server Error"}
)

// StatusCodeError is an error that carries an HTTP status code.
type StatusCodeError interface {
	error
	StatusCode() int
}

func badRequest(msg string) error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

func notFound(msg string) error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

func methodNotAllowed() error {
	return &Error{Status: http.StatusMethodNotAllowed, Message: "Method Not Allowed"}
}

func internal(msg string) error {
	return &Error{Status: http.StatusInternalServerError, Message: msg}
}
