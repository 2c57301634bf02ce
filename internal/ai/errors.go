package ai

import (
	"errors"
	"fmt"
)

// Sentinel kinds for generation failures. Match them with errors.Is.
var (
	// ErrTransport means the completion service could not be reached.
	ErrTransport = errors.New("transport error")
	// ErrMalformedResponse means the body was not JSON or lacked
	// choices[0].message.content as a string.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrAPI means the service answered with a non-2xx status and an error envelope.
	ErrAPI = errors.New("api error")
)

// Error is a generation failure of a given Kind.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is this error's kind.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func newError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}
