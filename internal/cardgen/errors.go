package cardgen

import "fmt"

// ErrProvider wraps any transport or API failure from the underlying
// LLM client. Callers can retry these; the request itself was fine.
type ErrProvider struct {
	Provider string
	Err      error
}

func (e *ErrProvider) Error() string {
	return fmt.Sprintf("cardgen: %s provider: %v", e.Provider, e.Err)
}

func (e *ErrProvider) Unwrap() error { return e.Err }

// ErrInvalidBatch means the model returned output that does not match
// the card batch schema. Retrying may help; the raw content is kept
// for logging.
type ErrInvalidBatch struct {
	Content string
	Err     error
}

func (e *ErrInvalidBatch) Error() string {
	return fmt.Sprintf("cardgen: invalid card batch: %v", e.Err)
}

func (e *ErrInvalidBatch) Unwrap() error { return e.Err }

// ErrConfig reports a misconfigured generator, e.g. a missing API key
// or an unknown provider name.
type ErrConfig struct {
	Reason string
}

func (e *ErrConfig) Error() string {
	return "cardgen: " + e.Reason
}
