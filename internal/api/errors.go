package api

import (
	"errors"
	"fmt"
)

// ErrEmptyNote is returned before any request is sent when required input is
// missing.
var ErrEmptyNote = errors.New("note text cannot be empty")

// TransportError wraps a network or decode failure: the server was never
// reached, or it answered with something that isn't JSON. Callers must not
// treat it as an empty result.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is a well-formed response carrying success:false or an error
// field. Message is the server's own wording.
type APIError struct {
	Op      string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: request rejected", e.Op)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// IsTransport reports whether err is a transport-level failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
