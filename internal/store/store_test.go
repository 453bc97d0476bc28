package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

// openTestStore opens a named in-memory database. The name keeps
// parallel tests from sharing state while cache=shared lets the pool
// reuse one database per test.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedCatalog(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()
	cat := s.Catalog()
	if err := cat.CreateContest(ctx, &Contest{ID: "contest-1", Name: "TRF Analista"}); err != nil {
		t.Fatalf("seed contest: %v", err)
	}
	if err := cat.CreateTopic(ctx, &Topic{ID: "topic-1", ContestID: "contest-1", Name: "Direito Constitucional"}); err != nil {
		t.Fatalf("seed topic: %v", err)
	}
	if err := cat.CreateSubtopic(ctx, &Subtopic{ID: "sub-1", TopicID: "topic-1", Name: "Direitos Fundamentais"}); err != nil {
		t.Fatalf("seed subtopic: %v", err)
	}
	if err := cat.CreateCard(ctx, &Card{ID: "card-1", SubtopicID: "sub-1", Front: "Art. 5o caput", Back: "Todos sao iguais perante a lei"}); err != nil {
		t.Fatalf("seed card: %v", err)
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestRecordCreateGet(t *testing.T) {
	s := openTestStore(t)
	seedCatalog(t, s)
	ctx := context.Background()
	repo := s.Records()

	rec := &Record{
		UserID:     "user-1",
		CardID:     "card-1",
		ContestID:  "contest-1",
		SubtopicID: "sub-1",
		EaseFactor: 2.5,
		Status:     "new",
	}
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Version != 1 {
		t.Errorf("Version = %d, want 1", rec.Version)
	}

	got, err := repo.Get(ctx, "user-1", "card-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.EaseFactor != 2.5 || got.Status != "new" {
		t.Errorf("got EaseFactor=%v Status=%q, want 2.5 new", got.EaseFactor, got.Status)
	}
	if got.NextDueAt != nil {
		t.Errorf("NextDueAt = %v, want nil for unreviewed record", got.NextDueAt)
	}
}

func TestRecordGet_NotFound(t *testing.T) {
	s := openTestStore(t)
	repo := s.Records()

	_, err := repo.Get(context.Background(), "user-1", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRecordUpdate_VersionConflict(t *testing.T) {
	s := openTestStore(t)
	seedCatalog(t, s)
	ctx := context.Background()
	repo := s.Records()

	rec := &Record{
		UserID:     "user-1",
		CardID:     "card-1",
		ContestID:  "contest-1",
		SubtopicID: "sub-1",
		EaseFactor: 2.5,
		Status:     "new",
	}
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Two readers load the same version.
	first, _ := repo.Get(ctx, "user-1", "card-1")
	second, _ := repo.Get(ctx, "user-1", "card-1")

	first.Repetitions = 1
	if err := repo.Update(ctx, first); err != nil {
		t.Fatalf("first update: %v", err)
	}
	if first.Version != 2 {
		t.Errorf("first.Version = %d, want 2", first.Version)
	}

	second.Repetitions = 5
	err := repo.Update(ctx, second)
	if !errors.Is(err, ErrConflict) {
		t.Errorf("second update err = %v, want ErrConflict", err)
	}

	// The stale write must not have landed.
	got, _ := repo.Get(ctx, "user-1", "card-1")
	if got.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", got.Repetitions)
	}
}

func TestRecordUpdate_Missing(t *testing.T) {
	s := openTestStore(t)
	repo := s.Records()

	err := repo.Update(context.Background(), &Record{
		UserID: "user-1", CardID: "ghost", Version: 1, Status: "learning", EaseFactor: 2.5,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestEventAppendQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Events()

	ts := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		ev := &Event{
			Timestamp:    ts.Add(time.Duration(i) * time.Minute),
			UserID:       "user-1",
			CardID:       "card-1",
			ContestID:    "contest-1",
			SubtopicID:   "sub-1",
			Quality:      4,
			Correct:      true,
			Repetitions:  i + 1,
			EaseFactor:   2.5,
			IntervalDays: 1,
			LatencySecs:  30,
		}
		if err := repo.Append(ctx, ev); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		if ev.Sequence == 0 {
			t.Fatalf("append %d: sequence not assigned", i)
		}
	}

	events, err := repo.Query(ctx, EventFilter{UserID: "user-1"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].Sequence <= events[i-1].Sequence {
			t.Errorf("events out of sequence order at %d", i)
		}
	}

	// A time window keeps only the events inside it, bounds inclusive.
	events, err = repo.Query(ctx, EventFilter{
		UserID: "user-1",
		From:   ts.Add(time.Minute),
		To:     ts.Add(2 * time.Minute),
	})
	if err != nil {
		t.Fatalf("query window: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) in window = %d, want 2", len(events))
	}
	if events[0].Repetitions != 2 || events[1].Repetitions != 3 {
		t.Errorf("window returned wrong events: %d, %d",
			events[0].Repetitions, events[1].Repetitions)
	}

	// Scoped query for another user is empty, not an error.
	events, err = repo.Query(ctx, EventFilter{UserID: "user-2"})
	if err != nil {
		t.Fatalf("query empty: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("len(events) = %d, want 0", len(events))
	}
}

func TestCatalogResolveCard(t *testing.T) {
	s := openTestStore(t)
	seedCatalog(t, s)
	ctx := context.Background()

	cc, err := s.Catalog().ResolveCard(ctx, "card-1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cc.SubtopicID != "sub-1" || cc.TopicID != "topic-1" || cc.ContestID != "contest-1" {
		t.Errorf("resolved %+v, want sub-1/topic-1/contest-1", cc)
	}

	_, err = s.Catalog().ResolveCard(ctx, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCatalogHierarchyGuards(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	cat := s.Catalog()

	err := cat.CreateTopic(ctx, &Topic{ID: "topic-x", ContestID: "no-such-contest", Name: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("create topic with missing contest: err = %v, want ErrNotFound", err)
	}
}
