// Package cardgen turns raw study material into card drafts using an
// LLM provider. Generation quality is the provider's problem; this
// package owns prompting, schema validation of the output, and nothing
// else. Drafts only become real cards when the caller persists them.
package cardgen

import "context"

// CardDraft is one generated flashcard, not yet persisted.
type CardDraft struct {
	Front      string `json:"front"`
	Back       string `json:"back"`
	Difficulty string `json:"difficulty"`
}

// Request describes the study context to generate cards for.
type Request struct {
	// ContestName is the exam the learner is preparing for,
	// e.g. "Concurso TRF 2024".
	ContestName string

	// Office is the position applied for. Optional.
	Office string

	// TopicName is the subject area, e.g. "Direito Constitucional".
	TopicName string

	// SubtopicName narrows the topic, e.g. "Princípios Fundamentais".
	SubtopicName string

	// Count is how many cards to produce. Default 5, capped at 20.
	Count int
}

// Generator produces card drafts from study material.
type Generator interface {
	GenerateCards(ctx context.Context, req Request) ([]CardDraft, error)

	// ModelID reports which model this generator is configured to use.
	ModelID() string
}

const (
	defaultCardCount = 5
	maxCardCount     = 20
)

func normalizeCount(n int) int {
	if n <= 0 {
		return defaultCardCount
	}
	if n > maxCardCount {
		return maxCardCount
	}
	return n
}
