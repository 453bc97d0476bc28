package perf

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/revisa-app/revisa/internal/store"
)

// fakeData backs all three repo interfaces for rollup tests.
type fakeData struct {
	events    []*store.Event
	records   []*store.Record
	contests  map[string]*store.Contest
	topics    map[string]*store.Topic
	subtopics map[string]*store.Subtopic
	cardCount map[string]int
}

func newFakeData() *fakeData {
	return &fakeData{
		contests:  make(map[string]*store.Contest),
		topics:    make(map[string]*store.Topic),
		subtopics: make(map[string]*store.Subtopic),
		cardCount: make(map[string]int),
	}
}

func (f *fakeData) Query(_ context.Context, filter store.EventFilter) ([]*store.Event, error) {
	inSubtopics := make(map[string]bool, len(filter.SubtopicIDs))
	for _, id := range filter.SubtopicIDs {
		inSubtopics[id] = true
	}
	var out []*store.Event
	for _, ev := range f.events {
		if ev.UserID != filter.UserID {
			continue
		}
		if filter.ContestID != "" && ev.ContestID != filter.ContestID {
			continue
		}
		if filter.SubtopicID != "" && ev.SubtopicID != filter.SubtopicID {
			continue
		}
		if len(inSubtopics) > 0 && !inSubtopics[ev.SubtopicID] {
			continue
		}
		if !filter.From.IsZero() && ev.Timestamp.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && ev.Timestamp.After(filter.To) {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

func (f *fakeData) Append(_ context.Context, ev *store.Event) error {
	f.events = append(f.events, ev)
	return nil
}

func (f *fakeData) Get(_ context.Context, _, _ string) (*store.Record, error) {
	return nil, store.ErrNotFound
}
func (f *fakeData) Create(_ context.Context, _ *store.Record) error { return nil }
func (f *fakeData) Update(_ context.Context, _ *store.Record) error { return nil }
func (f *fakeData) Delete(_ context.Context, _, _ string) error     { return nil }
func (f *fakeData) CountByStatus(_ context.Context, _ string, _ store.Scope) (map[string]int, error) {
	return nil, nil
}

func (f *fakeData) List(_ context.Context, userID string, scope store.Scope) ([]*store.Record, error) {
	var out []*store.Record
	for _, rec := range f.records {
		if rec.UserID != userID {
			continue
		}
		if scope.SubtopicID != "" && rec.SubtopicID != scope.SubtopicID {
			continue
		}
		if scope.ContestID != "" && rec.ContestID != scope.ContestID {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeData) CreateContest(_ context.Context, _ *store.Contest) error   { return nil }
func (f *fakeData) CreateTopic(_ context.Context, _ *store.Topic) error       { return nil }
func (f *fakeData) CreateSubtopic(_ context.Context, _ *store.Subtopic) error { return nil }
func (f *fakeData) CreateCard(_ context.Context, _ *store.Card) error         { return nil }
func (f *fakeData) GetCard(_ context.Context, _ string) (*store.Card, error) {
	return nil, store.ErrNotFound
}
func (f *fakeData) ResolveCard(_ context.Context, _ string) (*store.CardContext, error) {
	return nil, store.ErrNotFound
}

func (f *fakeData) GetContest(_ context.Context, id string) (*store.Contest, error) {
	c, ok := f.contests[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return c, nil
}

func (f *fakeData) GetTopic(_ context.Context, id string) (*store.Topic, error) {
	t, ok := f.topics[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return t, nil
}

func (f *fakeData) GetSubtopic(_ context.Context, id string) (*store.Subtopic, error) {
	st, ok := f.subtopics[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return st, nil
}

func (f *fakeData) TopicsByContest(_ context.Context, contestID string) ([]*store.Topic, error) {
	var out []*store.Topic
	for _, t := range f.topics {
		if t.ContestID == contestID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeData) SubtopicsByTopic(_ context.Context, topicID string) ([]*store.Subtopic, error) {
	var out []*store.Subtopic
	for _, st := range f.subtopics {
		if st.TopicID == topicID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (f *fakeData) CardsBySubtopic(_ context.Context, _ string) ([]*store.Card, error) {
	return nil, nil
}

func (f *fakeData) CountCardsBySubtopic(_ context.Context, subtopicID string) (int, error) {
	return f.cardCount[subtopicID], nil
}

func seedHierarchy(f *fakeData) {
	f.contests["contest-1"] = &store.Contest{ID: "contest-1", Name: "TRF Analista"}
	f.topics["topic-1"] = &store.Topic{ID: "topic-1", ContestID: "contest-1", Name: "Constitucional"}
	f.subtopics["sub-1"] = &store.Subtopic{ID: "sub-1", TopicID: "topic-1", Name: "Direitos Fundamentais"}
	f.cardCount["sub-1"] = 10
}

func newTestService(f *fakeData) *Service {
	return NewService(f, f, f, func() time.Time { return today })
}

func TestStats_NoEvents(t *testing.T) {
	f := newFakeData()
	svc := newTestService(f)

	summary, err := svc.Stats(context.Background(), "user-1", store.Scope{}, Window{})
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if summary.Accuracy != 0 || summary.StreakDays != 0 {
		t.Errorf("summary = %+v, want zero metrics", summary.Metrics)
	}
	if len(summary.DailyProgress) != 0 || len(summary.DifficultyDistribution) != 0 {
		t.Error("expected empty progress and distribution")
	}
}

func TestStats_WindowBoundsEvents(t *testing.T) {
	f := newFakeData()
	f.events = []*store.Event{
		ev(today.AddDate(0, 0, -10), true, 2.5, 1, 30),
		ev(today.AddDate(0, 0, -1), true, 2.6, 2, 30),
		ev(today, false, 2.4, 0, 30),
	}
	svc := newTestService(f)

	// Only the middle event falls inside the window.
	win := Window{From: today.AddDate(0, 0, -5), To: today.Add(-time.Hour)}
	summary, err := svc.Stats(context.Background(), "user-1", store.Scope{}, win)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if summary.TotalReviews != 1 {
		t.Errorf("TotalReviews = %d, want 1", summary.TotalReviews)
	}
	if summary.CorrectAnswers != 1 || summary.IncorrectAnswers != 0 {
		t.Errorf("correct/incorrect = %d/%d, want 1/0",
			summary.CorrectAnswers, summary.IncorrectAnswers)
	}
	if len(summary.DailyProgress) != 1 {
		t.Fatalf("len(DailyProgress) = %d, want 1", len(summary.DailyProgress))
	}

	// An open window sees everything.
	summary, err = svc.Stats(context.Background(), "user-1", store.Scope{}, Window{})
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if summary.TotalReviews != 3 {
		t.Errorf("TotalReviews = %d, want 3", summary.TotalReviews)
	}
}

func TestStats_Idempotent(t *testing.T) {
	f := newFakeData()
	f.events = []*store.Event{
		ev(today, true, 2.5, 1, 30),
		ev(today.AddDate(0, 0, -1), false, 2.3, 0, 45),
	}
	svc := newTestService(f)
	ctx := context.Background()

	first, err := svc.Stats(ctx, "user-1", store.Scope{}, Window{})
	if err != nil {
		t.Fatalf("first stats: %v", err)
	}
	second, err := svc.Stats(ctx, "user-1", store.Scope{}, Window{})
	if err != nil {
		t.Fatalf("second stats: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("stats not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestOverall_CountsContests(t *testing.T) {
	f := newFakeData()
	e1 := ev(today, true, 2.5, 1, 30)
	e2 := ev(today, true, 2.5, 2, 30)
	e2.ContestID = "contest-2"
	f.events = []*store.Event{e1, e2}
	svc := newTestService(f)

	overall, err := svc.Overall(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("overall: %v", err)
	}
	if overall.ContestsCount != 2 {
		t.Errorf("ContestsCount = %d, want 2", overall.ContestsCount)
	}
	if overall.TotalReviews != 2 {
		t.Errorf("TotalReviews = %d, want 2", overall.TotalReviews)
	}
}

func TestContest_RollsUpTopics(t *testing.T) {
	f := newFakeData()
	seedHierarchy(f)
	f.events = []*store.Event{
		ev(today, true, 2.5, 1, 30),
		ev(today, false, 2.3, 0, 30),
	}
	svc := newTestService(f)

	perf, err := svc.Contest(context.Background(), "user-1", "contest-1")
	if err != nil {
		t.Fatalf("contest: %v", err)
	}
	if perf.ContestName != "TRF Analista" {
		t.Errorf("ContestName = %q", perf.ContestName)
	}
	if perf.Accuracy != 50 {
		t.Errorf("Accuracy = %v, want 50", perf.Accuracy)
	}
	if len(perf.TopicPerformance) != 1 {
		t.Fatalf("len(TopicPerformance) = %d, want 1", len(perf.TopicPerformance))
	}
	tp := perf.TopicPerformance[0]
	if tp.TotalReviews != 2 {
		t.Errorf("topic TotalReviews = %d, want 2", tp.TotalReviews)
	}
	if len(tp.SubtopicPerformance) != 1 {
		t.Fatalf("len(SubtopicPerformance) = %d, want 1", len(tp.SubtopicPerformance))
	}
}

func TestContest_NotFound(t *testing.T) {
	f := newFakeData()
	svc := newTestService(f)

	_, err := svc.Contest(context.Background(), "user-1", "ghost")
	if err == nil {
		t.Fatal("expected error for unknown contest")
	}
}

func TestSubtopic_CardProgress(t *testing.T) {
	f := newFakeData()
	seedHierarchy(f)

	past := today.AddDate(0, 0, -1)
	future := today.AddDate(0, 0, 5)
	f.records = []*store.Record{
		{UserID: "user-1", CardID: "c1", ContestID: "contest-1", SubtopicID: "sub-1",
			Status: "graduated", EaseFactor: 2.8, NextDueAt: &future},
		{UserID: "user-1", CardID: "c2", ContestID: "contest-1", SubtopicID: "sub-1",
			Status: "learning", EaseFactor: 2.2, NextDueAt: &past},
		{UserID: "user-1", CardID: "c3", ContestID: "contest-1", SubtopicID: "sub-1",
			Status: "new", EaseFactor: 2.5},
	}
	svc := newTestService(f)

	sp, err := svc.Subtopic(context.Background(), "user-1", "sub-1")
	if err != nil {
		t.Fatalf("subtopic: %v", err)
	}
	if sp.CardsTotal != 10 {
		t.Errorf("CardsTotal = %d, want 10", sp.CardsTotal)
	}
	if sp.CardsLearned != 1 {
		t.Errorf("CardsLearned = %d, want 1", sp.CardsLearned)
	}
	// c2 is past due and c3 was never reviewed.
	if sp.CardsToReview != 2 {
		t.Errorf("CardsToReview = %d, want 2", sp.CardsToReview)
	}
	wantEase := (2.8 + 2.2 + 2.5) / 3
	if diff := sp.AverageEaseFactor - wantEase; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("AverageEaseFactor = %v, want %v", sp.AverageEaseFactor, wantEase)
	}
}
