package cardgen

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestParseBatch_Valid(t *testing.T) {
	raw := `{"cards": [
		{"front": "Quais são os fundamentos da República?", "back": "Soberania, cidadania, dignidade da pessoa humana, valores sociais do trabalho e da livre iniciativa, pluralismo político.", "difficulty": "medium"},
		{"front": "O que é soberania?", "back": "Poder supremo do Estado na ordem interna e independência na ordem internacional.", "difficulty": "easy"}
	]}`

	cards, err := parseBatch(raw)
	if err != nil {
		t.Fatalf("parseBatch: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(cards))
	}
	if cards[1].Difficulty != "easy" {
		t.Errorf("difficulty = %q, want easy", cards[1].Difficulty)
	}
}

func TestParseBatch_InvalidJSON(t *testing.T) {
	_, err := parseBatch("not json at all")

	var invalid *ErrInvalidBatch
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want ErrInvalidBatch", err)
	}
	if invalid.Content != "not json at all" {
		t.Errorf("Content = %q, want original raw text", invalid.Content)
	}
}

func TestParseBatch_SchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing back", `{"cards": [{"front": "Q", "difficulty": "easy"}]}`},
		{"empty front", `{"cards": [{"front": "", "back": "A", "difficulty": "easy"}]}`},
		{"bad difficulty", `{"cards": [{"front": "Q", "back": "A", "difficulty": "impossible"}]}`},
		{"empty batch", `{"cards": []}`},
		{"extra field", `{"cards": [{"front": "Q", "back": "A", "difficulty": "easy", "hint": "H"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseBatch(tc.raw)
			var invalid *ErrInvalidBatch
			if !errors.As(err, &invalid) {
				t.Fatalf("got %v, want ErrInvalidBatch", err)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt(Request{
		ContestName:  "Concurso TRF 2026",
		TopicName:    "Direito Constitucional",
		SubtopicName: "Princípios Fundamentais",
		Count:        3,
	})

	for _, want := range []string{
		"Gere 3 cards",
		"Concurso: Concurso TRF 2026",
		"Cargo: Não especificado",
		"Matéria: Direito Constitucional",
		"Subtópico: Princípios Fundamentais",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestNormalizeCount(t *testing.T) {
	cases := map[int]int{-1: 5, 0: 5, 1: 1, 20: 20, 50: 20}
	for in, want := range cases {
		if got := normalizeCount(in); got != want {
			t.Errorf("normalizeCount(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestMockGenerator_FIFO(t *testing.T) {
	mock := NewMockGenerator(
		MockBatch{Cards: []CardDraft{{Front: "A", Back: "B", Difficulty: "easy"}}},
		MockBatch{Err: &ErrProvider{Provider: "mock", Err: errors.New("boom")}},
	)

	cards, err := mock.GenerateCards(context.Background(), Request{Count: 1})
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if len(cards) != 1 || cards[0].Front != "A" {
		t.Fatalf("unexpected cards %+v", cards)
	}

	if _, err := mock.GenerateCards(context.Background(), Request{Count: 1}); err == nil {
		t.Fatal("second call should return the canned error")
	}

	if mock.CallCount() != 2 {
		t.Errorf("CallCount = %d, want 2", mock.CallCount())
	}
}

func TestMockGenerator_SynthesizesWhenEmpty(t *testing.T) {
	mock := NewMockGenerator()

	cards, err := mock.GenerateCards(context.Background(), Request{
		TopicName:    "Direito Administrativo",
		SubtopicName: "Atos Administrativos",
		Count:        2,
	})
	if err != nil {
		t.Fatalf("GenerateCards: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(cards))
	}
	if !strings.Contains(cards[0].Front, "Direito Administrativo") {
		t.Errorf("front %q should mention the topic", cards[0].Front)
	}
}

func TestNew_ProviderSelection(t *testing.T) {
	if _, err := New(Config{Provider: "mock"}); err != nil {
		t.Errorf("mock provider: %v", err)
	}

	var cfgErr *ErrConfig
	if _, err := New(Config{Provider: "openai"}); !errors.As(err, &cfgErr) {
		t.Errorf("openai without key: got %v, want ErrConfig", err)
	}
	if _, err := New(Config{Provider: "anthropic"}); !errors.As(err, &cfgErr) {
		t.Errorf("anthropic without key: got %v, want ErrConfig", err)
	}
	if _, err := New(Config{Provider: "gemini"}); !errors.As(err, &cfgErr) {
		t.Errorf("unknown provider: got %v, want ErrConfig", err)
	}
}
