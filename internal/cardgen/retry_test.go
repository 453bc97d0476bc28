package cardgen

import (
	"context"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

var oneCard = []CardDraft{{Front: "Q", Back: "A", Difficulty: "easy"}}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockGenerator(MockBatch{Cards: oneCard})
	g := WithRetry(mock, retryConfig())

	cards, err := g.GenerateCards(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(cards))
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockGenerator(
		MockBatch{Err: &ErrProvider{Provider: "openai", Err: errors.New("down")}},
		MockBatch{Cards: oneCard},
	)
	g := WithRetry(mock, retryConfig())

	cards, err := g.GenerateCards(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(cards))
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	boom := &ErrProvider{Provider: "openai", Err: errors.New("down")}
	mock := NewMockGenerator(
		MockBatch{Err: boom},
		MockBatch{Err: boom},
		MockBatch{Err: boom},
	)
	g := WithRetry(mock, retryConfig())

	_, err := g.GenerateCards(context.Background(), Request{})
	var provider *ErrProvider
	if !errors.As(err, &provider) {
		t.Fatalf("got %v, want ErrProvider", err)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_InvalidBatchRetriedOnce(t *testing.T) {
	bad := &ErrInvalidBatch{Err: errors.New("schema mismatch")}
	mock := NewMockGenerator(
		MockBatch{Err: bad},
		MockBatch{Err: bad},
		MockBatch{Err: bad},
	)
	g := WithRetry(mock, retryConfig())

	_, err := g.GenerateCards(context.Background(), Request{})
	var invalid *ErrInvalidBatch
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want ErrInvalidBatch", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls (one retry), got %d", mock.CallCount())
	}
}

func TestRetry_ConfigErrorNotRetried(t *testing.T) {
	mock := NewMockGenerator(MockBatch{Err: &ErrConfig{Reason: "missing key"}})
	g := WithRetry(mock, retryConfig())

	_, err := g.GenerateCards(context.Background(), Request{})
	var cfgErr *ErrConfig
	if !errors.As(err, &cfgErr) {
		t.Fatalf("got %v, want ErrConfig", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := NewMockGenerator(MockBatch{Err: &ErrProvider{Provider: "openai", Err: ctx.Err()}})
	g := WithRetry(mock, retryConfig())

	if _, err := g.GenerateCards(ctx, Request{}); err == nil {
		t.Fatal("expected error after cancellation")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}
