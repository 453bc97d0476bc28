package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/revisa-app/revisa/internal/store"
)

func seedStatusRecord(f *fakeStore, cardID, subtopicID, status string, due *time.Time) {
	rec := &store.Record{
		UserID:     "user-1",
		CardID:     cardID,
		ContestID:  "contest-1",
		SubtopicID: subtopicID,
		EaseFactor: 2.5,
		Status:     status,
		NextDueAt:  due,
	}
	rec.ID = len(f.records) + 1
	rec.Version = 1
	f.records[key(rec.UserID, rec.CardID)] = rec
}

func TestStudyStats_CountsAndDue(t *testing.T) {
	f := newFakeStore()
	svc := newTestService(f)

	past := testNow.Add(-24 * time.Hour)
	future := testNow.Add(72 * time.Hour)

	// Due: the never-reviewed card, the past learning card, and the
	// past graduated card.
	seedStatusRecord(f, "card-new", "sub-1", "new", nil)
	seedStatusRecord(f, "card-learn", "sub-1", "learning", &past)
	seedStatusRecord(f, "card-rev", "sub-1", "review", &future)
	seedStatusRecord(f, "card-grad", "sub-1", "graduated", &future)
	seedStatusRecord(f, "card-grad2", "sub-2", "graduated", &past)

	stats, err := svc.StudyStats(context.Background(), "user-1", store.Scope{})
	if err != nil {
		t.Fatalf("study stats: %v", err)
	}

	if stats.Total != 5 {
		t.Errorf("Total = %d, want 5", stats.Total)
	}
	if stats.NewCards != 1 || stats.Learning != 1 || stats.Review != 1 || stats.Graduated != 2 {
		t.Errorf("status counts = %d/%d/%d/%d, want 1/1/1/2",
			stats.NewCards, stats.Learning, stats.Review, stats.Graduated)
	}
	if stats.DueForReview != 3 {
		t.Errorf("DueForReview = %d, want 3", stats.DueForReview)
	}
}

func TestStudyStats_Scoped(t *testing.T) {
	f := newFakeStore()
	svc := newTestService(f)

	past := testNow.Add(-time.Hour)
	seedStatusRecord(f, "card-a", "sub-1", "learning", &past)
	seedStatusRecord(f, "card-b", "sub-2", "review", &past)

	stats, err := svc.StudyStats(context.Background(), "user-1", store.Scope{SubtopicID: "sub-1"})
	if err != nil {
		t.Fatalf("study stats: %v", err)
	}
	if stats.Total != 1 || stats.Learning != 1 || stats.Review != 0 {
		t.Errorf("scoped counts = total %d, learning %d, review %d; want 1, 1, 0",
			stats.Total, stats.Learning, stats.Review)
	}
	if stats.DueForReview != 1 {
		t.Errorf("DueForReview = %d, want 1", stats.DueForReview)
	}
}

func TestStudyStats_EmptyUser(t *testing.T) {
	f := newFakeStore()
	svc := newTestService(f)

	stats, err := svc.StudyStats(context.Background(), "user-1", store.Scope{})
	if err != nil {
		t.Fatalf("study stats: %v", err)
	}
	if *stats != (StudyStats{}) {
		t.Errorf("expected all-zero stats, got %+v", stats)
	}
}

func TestStudyStats_StoreUnavailable(t *testing.T) {
	f := newFakeStore()
	f.failWith = store.ErrUnavailable
	svc := newTestService(f)

	_, err := svc.StudyStats(context.Background(), "user-1", store.Scope{})
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("got %v, want ErrStoreUnavailable", err)
	}
}
