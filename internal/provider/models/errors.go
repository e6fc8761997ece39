package models

import (
	"errors"
	"fmt"
)

// TransportError wraps any failure to complete a model round trip: the
// server is unreachable, returns a non-success status, or sends back an
// envelope that cannot be decoded. It is fatal to the current user
// request and crosses the agent loop boundary.
type TransportError struct {
	Provider   string
	Message    string
	StatusCode int
	Cause      error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Provider, e.Message, e.StatusCode)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// IsTransport reports whether err is, or wraps, a TransportError.
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}
