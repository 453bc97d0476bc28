package cardgen

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryConfig tunes the retry decorator.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig gives three attempts with short exponential backoff.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 500 * time.Millisecond,
		MaxWait:     5 * time.Second,
		Multiplier:  2.0,
	}
}

// retryGenerator decorates a Generator with retries on transient
// errors, using exponential backoff and jitter.
type retryGenerator struct {
	inner  Generator
	config RetryConfig
}

// WithRetry wraps a Generator with retry logic.
func WithRetry(g Generator, cfg RetryConfig) Generator {
	return &retryGenerator{inner: g, config: cfg}
}

func (r *retryGenerator) GenerateCards(ctx context.Context, req Request) ([]CardDraft, error) {
	var lastErr error
	invalidRetried := false

	for attempt := range r.config.MaxAttempts {
		cards, err := r.inner.GenerateCards(ctx, req)
		if err == nil {
			return cards, nil
		}
		lastErr = err

		if !shouldRetry(err, &invalidRetried) {
			return nil, err
		}
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff(attempt)):
		}
	}

	return nil, lastErr
}

func (r *retryGenerator) ModelID() string {
	return r.inner.ModelID()
}

func shouldRetry(err error, invalidRetried *bool) bool {
	// Context errors are never retried.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Misconfiguration will not fix itself.
	var cfgErr *ErrConfig
	if errors.As(err, &cfgErr) {
		return false
	}

	// A malformed batch gets one retry; the model may do better on a
	// second pass.
	var badBatch *ErrInvalidBatch
	if errors.As(err, &badBatch) {
		if *invalidRetried {
			return false
		}
		*invalidRetried = true
		return true
	}

	// Provider failures and anything else are treated as transient.
	return true
}

func (r *retryGenerator) backoff(attempt int) time.Duration {
	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// ±20% jitter.
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
