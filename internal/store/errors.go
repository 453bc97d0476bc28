package store

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors surfaced by repositories. Callers match with errors.Is.
var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("store: not found")

	// ErrConflict means an update named a version that is no longer
	// current; a concurrent writer got there first.
	ErrConflict = errors.New("store: version conflict")

	// ErrUnavailable means the store could not be reached in time.
	// The operation may be retried.
	ErrUnavailable = errors.New("store: unavailable")
)

// wrapErr classifies a driver-level error. Deadline and cancellation
// failures become ErrUnavailable so callers can apply a retry policy.
func wrapErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
