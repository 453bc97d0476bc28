package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/revisa-app/revisa/internal/srs"
	"github.com/revisa-app/revisa/internal/store"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

// fakeStore is an in-memory implementation of the three repos.
type fakeStore struct {
	records  map[string]*store.Record
	events   []*store.Event
	cards    map[string]*store.CardContext
	failWith error // when set, every call fails with this error
	seq      int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		records: make(map[string]*store.Record),
		cards:   make(map[string]*store.CardContext),
	}
}

func key(userID, cardID string) string { return userID + "/" + cardID }

func (f *fakeStore) Get(_ context.Context, userID, cardID string) (*store.Record, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	rec, ok := f.records[key(userID, cardID)]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeStore) Create(_ context.Context, rec *store.Record) error {
	if f.failWith != nil {
		return f.failWith
	}
	k := key(rec.UserID, rec.CardID)
	if _, ok := f.records[k]; ok {
		return store.ErrConflict
	}
	rec.ID = len(f.records) + 1
	rec.Version = 1
	rec.CreatedAt = testNow
	cp := *rec
	f.records[k] = &cp
	return nil
}

func (f *fakeStore) Update(_ context.Context, rec *store.Record) error {
	if f.failWith != nil {
		return f.failWith
	}
	k := key(rec.UserID, rec.CardID)
	cur, ok := f.records[k]
	if !ok {
		return store.ErrNotFound
	}
	if cur.Version != rec.Version {
		return store.ErrConflict
	}
	rec.Version++
	cp := *rec
	f.records[k] = &cp
	return nil
}

func (f *fakeStore) List(_ context.Context, userID string, scope store.Scope) ([]*store.Record, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*store.Record
	for _, rec := range f.records {
		if rec.UserID != userID {
			continue
		}
		if scope.ContestID != "" && rec.ContestID != scope.ContestID {
			continue
		}
		if scope.SubtopicID != "" && rec.SubtopicID != scope.SubtopicID {
			continue
		}
		cp := *rec
		out = append(out, &cp)
	}
	// Creation order, like the SQL repo.
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].ID < out[i].ID {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (f *fakeStore) Delete(_ context.Context, userID, cardID string) error {
	if f.failWith != nil {
		return f.failWith
	}
	k := key(userID, cardID)
	if _, ok := f.records[k]; !ok {
		return store.ErrNotFound
	}
	delete(f.records, k)
	return nil
}

func (f *fakeStore) CountByStatus(_ context.Context, userID string, scope store.Scope) (map[string]int, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	counts := make(map[string]int)
	for _, rec := range f.records {
		if rec.UserID != userID {
			continue
		}
		if scope.ContestID != "" && rec.ContestID != scope.ContestID {
			continue
		}
		if scope.SubtopicID != "" && rec.SubtopicID != scope.SubtopicID {
			continue
		}
		counts[rec.Status]++
	}
	return counts, nil
}

func (f *fakeStore) Append(_ context.Context, ev *store.Event) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.seq++
	ev.Sequence = f.seq
	cp := *ev
	f.events = append(f.events, &cp)
	return nil
}

func (f *fakeStore) Query(_ context.Context, filter store.EventFilter) ([]*store.Event, error) {
	var out []*store.Event
	for _, ev := range f.events {
		if ev.UserID == filter.UserID {
			cp := *ev
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeStore) ResolveCard(_ context.Context, cardID string) (*store.CardContext, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	cc, ok := f.cards[cardID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cc, nil
}

// The remaining CatalogRepo methods are unused by the review service.
func (f *fakeStore) CreateContest(context.Context, *store.Contest) error   { return nil }
func (f *fakeStore) CreateTopic(context.Context, *store.Topic) error      { return nil }
func (f *fakeStore) CreateSubtopic(context.Context, *store.Subtopic) error { return nil }
func (f *fakeStore) CreateCard(context.Context, *store.Card) error        { return nil }
func (f *fakeStore) GetContest(context.Context, string) (*store.Contest, error) {
	return nil, store.ErrNotFound
}
func (f *fakeStore) GetTopic(context.Context, string) (*store.Topic, error) {
	return nil, store.ErrNotFound
}
func (f *fakeStore) GetSubtopic(context.Context, string) (*store.Subtopic, error) {
	return nil, store.ErrNotFound
}
func (f *fakeStore) GetCard(context.Context, string) (*store.Card, error) {
	return nil, store.ErrNotFound
}
func (f *fakeStore) TopicsByContest(context.Context, string) ([]*store.Topic, error) {
	return nil, nil
}
func (f *fakeStore) SubtopicsByTopic(context.Context, string) ([]*store.Subtopic, error) {
	return nil, nil
}
func (f *fakeStore) CardsBySubtopic(context.Context, string) ([]*store.Card, error) {
	return nil, nil
}
func (f *fakeStore) CountCardsBySubtopic(context.Context, string) (int, error) { return 0, nil }

func newTestService(f *fakeStore) *Service {
	return NewService(f, f, f, func() time.Time { return testNow })
}

func addCard(f *fakeStore, cardID string) {
	f.cards[cardID] = &store.CardContext{
		CardID:     cardID,
		SubtopicID: "sub-1",
		TopicID:    "topic-1",
		ContestID:  "contest-1",
	}
}

func TestEnroll_CreatesDueRecord(t *testing.T) {
	f := newFakeStore()
	addCard(f, "card-1")
	svc := newTestService(f)

	rec, err := svc.Enroll(context.Background(), "user-1", "card-1")
	if err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if rec.Status != string(srs.StatusNew) {
		t.Errorf("Status = %q, want new", rec.Status)
	}
	if rec.NextDueAt != nil {
		t.Errorf("NextDueAt = %v, want nil (immediately due)", rec.NextDueAt)
	}
	if rec.EaseFactor != srs.DefaultEaseFactor {
		t.Errorf("EaseFactor = %v, want %v", rec.EaseFactor, srs.DefaultEaseFactor)
	}
	if rec.ContestID != "contest-1" || rec.SubtopicID != "sub-1" {
		t.Errorf("hierarchy not resolved: %+v", rec)
	}
}

func TestEnroll_UnknownCard(t *testing.T) {
	f := newFakeStore()
	svc := newTestService(f)

	_, err := svc.Enroll(context.Background(), "user-1", "missing")
	if !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestEnroll_Twice(t *testing.T) {
	f := newFakeStore()
	addCard(f, "card-1")
	svc := newTestService(f)
	ctx := context.Background()

	if _, err := svc.Enroll(ctx, "user-1", "card-1"); err != nil {
		t.Fatalf("first enroll: %v", err)
	}
	_, err := svc.Enroll(ctx, "user-1", "card-1")
	if !errors.Is(err, ErrAlreadyEnrolled) {
		t.Errorf("err = %v, want ErrAlreadyEnrolled", err)
	}
}

func TestSubmit_InvalidRating(t *testing.T) {
	f := newFakeStore()
	svc := newTestService(f)

	for _, q := range []int{-1, 6} {
		_, err := svc.Submit(context.Background(), Submission{UserID: "user-1", CardID: "card-1", Quality: q})
		if !errors.Is(err, ErrInvalidRating) {
			t.Errorf("Submit(quality=%d): err = %v, want ErrInvalidRating", q, err)
		}
	}
	if len(f.events) != 0 {
		t.Errorf("invalid rating must not append events, got %d", len(f.events))
	}
}

func TestSubmit_NotEnrolled(t *testing.T) {
	f := newFakeStore()
	svc := newTestService(f)

	_, err := svc.Submit(context.Background(), Submission{UserID: "user-1", CardID: "card-1", Quality: 4})
	if !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestSubmit_FirstCorrectReview(t *testing.T) {
	f := newFakeStore()
	addCard(f, "card-1")
	svc := newTestService(f)
	ctx := context.Background()

	if _, err := svc.Enroll(ctx, "user-1", "card-1"); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	out, err := svc.Submit(ctx, Submission{UserID: "user-1", CardID: "card-1", Quality: 4})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Status != srs.StatusLearning {
		t.Errorf("Status = %s, want learning (first exposure)", out.Status)
	}
	if out.Record.Repetitions != 1 || out.Record.IntervalDays != 1 {
		t.Errorf("Repetitions = %d, IntervalDays = %d, want 1, 1", out.Record.Repetitions, out.Record.IntervalDays)
	}
	wantDue := testNow.AddDate(0, 0, 1)
	if !out.NextDueAt.Equal(wantDue) {
		t.Errorf("NextDueAt = %v, want %v", out.NextDueAt, wantDue)
	}
	if out.Record.CorrectStreak != 1 || out.Record.IncorrectStreak != 0 {
		t.Errorf("streaks = %d/%d, want 1/0", out.Record.CorrectStreak, out.Record.IncorrectStreak)
	}

	if len(f.events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(f.events))
	}
	ev := f.events[0]
	if !ev.Correct || ev.Quality != 4 {
		t.Errorf("event = %+v, want correct quality-4", ev)
	}
	if ev.LatencySecs != DefaultLatencySecs {
		t.Errorf("LatencySecs = %v, want default %d", ev.LatencySecs, DefaultLatencySecs)
	}
	if ev.EaseFactor != out.Record.EaseFactor || ev.IntervalDays != out.Record.IntervalDays {
		t.Error("event must carry post-update ease and interval")
	}
}

func TestSubmit_IncorrectDemotesAndResets(t *testing.T) {
	f := newFakeStore()
	addCard(f, "card-1")
	svc := newTestService(f)
	ctx := context.Background()

	if _, err := svc.Enroll(ctx, "user-1", "card-1"); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	// Drive the card to graduated state.
	for _, q := range []int{5, 5, 5, 5} {
		if _, err := svc.Submit(ctx, Submission{UserID: "user-1", CardID: "card-1", Quality: q}); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	rec, _ := f.Get(ctx, "user-1", "card-1")
	if rec.Status != string(srs.StatusGraduated) {
		t.Fatalf("setup: Status = %q, want graduated", rec.Status)
	}

	out, err := svc.Submit(ctx, Submission{UserID: "user-1", CardID: "card-1", Quality: 2})
	if err != nil {
		t.Fatalf("submit lapse: %v", err)
	}
	if out.Status != srs.StatusLearning {
		t.Errorf("Status = %s, want learning after lapse", out.Status)
	}
	if out.Record.Repetitions != 0 || out.Record.IntervalDays != 1 {
		t.Errorf("Repetitions = %d, IntervalDays = %d, want 0, 1", out.Record.Repetitions, out.Record.IntervalDays)
	}
	if out.Record.CorrectStreak != 0 || out.Record.IncorrectStreak != 1 {
		t.Errorf("streaks = %d/%d, want 0/1", out.Record.CorrectStreak, out.Record.IncorrectStreak)
	}
	if out.Record.TotalCorrect != 4 || out.Record.TotalIncorrect != 1 {
		t.Errorf("totals = %d/%d, want 4/1", out.Record.TotalCorrect, out.Record.TotalIncorrect)
	}
}

func TestSubmit_MeasuredLatencyRecorded(t *testing.T) {
	f := newFakeStore()
	addCard(f, "card-1")
	svc := newTestService(f)
	ctx := context.Background()

	if _, err := svc.Enroll(ctx, "user-1", "card-1"); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if _, err := svc.Submit(ctx, Submission{UserID: "user-1", CardID: "card-1", Quality: 3, LatencySecs: 12.5}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if f.events[0].LatencySecs != 12.5 {
		t.Errorf("LatencySecs = %v, want 12.5", f.events[0].LatencySecs)
	}
}

func TestSubmit_WriteConflictSurfaced(t *testing.T) {
	f := newFakeStore()
	addCard(f, "card-1")
	svc := newTestService(f)
	ctx := context.Background()

	if _, err := svc.Enroll(ctx, "user-1", "card-1"); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	// Simulate a concurrent writer winning the version race.
	conflicting := &conflictOnUpdate{fakeStore: f}
	svc2 := NewService(conflicting, f, f, func() time.Time { return testNow })

	_, err := svc2.Submit(ctx, Submission{UserID: "user-1", CardID: "card-1", Quality: 4})
	if !errors.Is(err, ErrWriteConflict) {
		t.Errorf("err = %v, want ErrWriteConflict", err)
	}
	if len(f.events) != 0 {
		t.Errorf("conflicting submission must not append an event, got %d", len(f.events))
	}
}

// conflictOnUpdate fails every Update with a version conflict.
type conflictOnUpdate struct {
	*fakeStore
}

func (c *conflictOnUpdate) Update(context.Context, *store.Record) error {
	return store.ErrConflict
}

func TestSubmit_StoreUnavailable(t *testing.T) {
	f := newFakeStore()
	addCard(f, "card-1")
	svc := newTestService(f)
	ctx := context.Background()

	if _, err := svc.Enroll(ctx, "user-1", "card-1"); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	f.failWith = store.ErrUnavailable

	_, err := svc.Submit(ctx, Submission{UserID: "user-1", CardID: "card-1", Quality: 4})
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("err = %v, want ErrStoreUnavailable", err)
	}
}

func TestRemove(t *testing.T) {
	f := newFakeStore()
	addCard(f, "card-1")
	svc := newTestService(f)
	ctx := context.Background()

	if _, err := svc.Enroll(ctx, "user-1", "card-1"); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if err := svc.Remove(ctx, "user-1", "card-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	err := svc.Remove(ctx, "user-1", "card-1")
	if !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("second remove err = %v, want ErrRecordNotFound", err)
	}
}

func TestSubmit_IntervalProgressionToGraduation(t *testing.T) {
	f := newFakeStore()
	addCard(f, "card-1")
	svc := newTestService(f)
	ctx := context.Background()

	if _, err := svc.Enroll(ctx, "user-1", "card-1"); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	// Quality 4 leaves the ease factor at 2.5, so intervals run
	// 1, 6, round(6x2.5)=15, round(15x2.5)=38.
	wantIntervals := []int{1, 6, 15, 38}
	wantStatuses := []srs.Status{srs.StatusLearning, srs.StatusReview, srs.StatusReview, srs.StatusGraduated}

	for i := range wantIntervals {
		out, err := svc.Submit(ctx, Submission{UserID: "user-1", CardID: "card-1", Quality: 4})
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if out.Record.IntervalDays != wantIntervals[i] {
			t.Errorf("review %d: IntervalDays = %d, want %d", i+1, out.Record.IntervalDays, wantIntervals[i])
		}
		if out.Status != wantStatuses[i] {
			t.Errorf("review %d: Status = %s, want %s", i+1, out.Status, wantStatuses[i])
		}
	}
}
