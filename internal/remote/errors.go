package remote

import "errors"

var (
	// ErrUnavailable indicates the document store is unreachable.
	ErrUnavailable = errors.New("remote store unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("remote request timed out")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("remote retry attempts exhausted")
)
