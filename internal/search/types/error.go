package types

import (
	"errors"
	"fmt"
)

var (
	// Configuration errors
	ErrInvalidAPIHost  = errors.New("invalid API host")
	ErrInvalidBaseURL  = errors.New("invalid base URL")
	ErrMissingBasicAuthPassword = errors.New("missing basic auth password")

	// Request errors
	ErrEmptyQuery = errors.New("empty search query")

	// Backend errors
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrNoResults          = errors.New("no results found")
)

// BackendError wraps a transient failure of a single retrieval strategy.
// It is consumed at the strategy boundary by the fallback cascade and is
// never propagated raw to the HTTP caller.
type BackendError struct {
	Backend Method
	Code    string
	Message string
	Err     error
}

func (e *BackendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s (%v)", e.Backend, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Backend, e.Code, e.Message)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
