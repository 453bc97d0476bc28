package review

import "errors"

// Error taxonomy for review operations. Callers decide retry policy:
// ErrInvalidRating is never retried, ErrWriteConflict means re-read and
// resubmit, ErrStoreUnavailable means retry with backoff.
var (
	// ErrInvalidRating means the quality score was outside [0,5].
	ErrInvalidRating = errors.New("review: quality rating must be between 0 and 5")

	// ErrRecordNotFound means the user never enrolled the card.
	ErrRecordNotFound = errors.New("review: card not enrolled for study")

	// ErrAlreadyEnrolled means the card is already in the user's study set.
	ErrAlreadyEnrolled = errors.New("review: card already enrolled")

	// ErrWriteConflict means a concurrent submission updated the record
	// first. The caller should re-read and resubmit; retrying blindly
	// here could double-count a review event.
	ErrWriteConflict = errors.New("review: concurrent modification detected")

	// ErrStoreUnavailable means the store timed out or was unreachable.
	ErrStoreUnavailable = errors.New("review: store unavailable")
)
