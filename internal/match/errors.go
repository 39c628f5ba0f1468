package match

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// BackendError is a failed language-model call that carried an HTTP status.
// Adapters wrap their client library's API errors into this type so the
// retry policy can classify them without knowing the library.
type BackendError struct {
	StatusCode int
	Err        error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend: status %d: %v", e.StatusCode, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// ExhaustedError is raised when every retry attempt against the backend
// failed. It carries the last failure and the attempt count. The matcher
// catches it internally and falls back to the deterministic path.
type ExhaustedError struct {
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("backend: giving up after %d attempts: %v", e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() error { return e.Last }

// retryable classifies a backend failure. Rate limits and server errors are
// worth retrying, as are transport-level faults, which carry no status at
// all. Everything else, including whatever the caller's context cancels, is
// terminal.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var be *BackendError
	if errors.As(err, &be) {
		return be.StatusCode == http.StatusTooManyRequests ||
			be.StatusCode >= http.StatusInternalServerError
	}
	return true
}
