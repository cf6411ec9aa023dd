package spotify

import (
	"errors"
	"fmt"
)

// Static error definitions for better error handling.
var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
)

// APIError reports a failed embed page fetch.
// StatusCode carries the HTTP status for non-success responses and is zero
// when the failure happened before a status was received (network errors,
// truncated reads and the like).
type APIError struct {
	// StatusCode is the HTTP status code of the response, if one was received.
	StatusCode int
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("embed request failed: %v: %d", e.Err, e.StatusCode)
	}

	return fmt.Sprintf("embed request failed: %v", e.Err)
}

// Unwrap returns the underlying cause so errors.Is keeps working.
func (e *APIError) Unwrap() error {
	return e.Err
}
