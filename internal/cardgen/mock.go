package cardgen

import (
	"context"
	"fmt"
	"sync"
)

// MockBatch is a canned result for the MockGenerator.
type MockBatch struct {
	Cards []CardDraft
	Err   error
}

// MockGenerator is a deterministic Generator for testing and local use
// without an API key. It returns canned batches in FIFO order and
// records all requests. When the queue is empty it synthesizes a batch
// from the request context.
type MockGenerator struct {
	mu      sync.Mutex
	batches []MockBatch
	Calls   []Request
}

// NewMockGenerator creates a MockGenerator with the given canned batches.
func NewMockGenerator(batches ...MockBatch) *MockGenerator {
	return &MockGenerator{batches: batches}
}

func (m *MockGenerator) GenerateCards(_ context.Context, req Request) ([]CardDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.batches) > 0 {
		batch := m.batches[0]
		m.batches = m.batches[1:]
		if batch.Err != nil {
			return nil, batch.Err
		}
		return batch.Cards, nil
	}

	count := normalizeCount(req.Count)
	cards := make([]CardDraft, count)
	for i := range cards {
		cards[i] = CardDraft{
			Front:      fmt.Sprintf("%s: conceito %d de %s", req.TopicName, i+1, req.SubtopicName),
			Back:       fmt.Sprintf("Definição do conceito %d de %s.", i+1, req.SubtopicName),
			Difficulty: "medium",
		}
	}
	return cards, nil
}

// ModelID returns "mock".
func (m *MockGenerator) ModelID() string {
	return "mock"
}

// AddBatch appends a canned batch to the queue.
func (m *MockGenerator) AddBatch(batch MockBatch) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batches = append(m.batches, batch)
}

// CallCount returns the number of GenerateCards calls made.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
