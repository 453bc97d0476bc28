package review

import (
	"context"
	"testing"
	"time"

	"github.com/revisa-app/revisa/internal/store"
)

func seedRecord(f *fakeStore, cardID string, due *time.Time) {
	rec := &store.Record{
		UserID:     "user-1",
		CardID:     cardID,
		ContestID:  "contest-1",
		SubtopicID: "sub-1",
		EaseFactor: 2.5,
		Status:     "learning",
		NextDueAt:  due,
	}
	rec.ID = len(f.records) + 1
	rec.Version = 1
	f.records[key(rec.UserID, rec.CardID)] = rec
}

func TestDueCards_OrderingAndBoundary(t *testing.T) {
	f := newFakeStore()
	svc := newTestService(f)

	past := testNow.Add(-48 * time.Hour)
	exact := testNow
	future := testNow.Add(time.Hour)

	seedRecord(f, "card-past", &past)
	seedRecord(f, "card-never", nil)
	seedRecord(f, "card-exact", &exact)
	seedRecord(f, "card-future", &future)

	due, err := svc.DueCards(context.Background(), "user-1", store.Scope{}, 0)
	if err != nil {
		t.Fatalf("due cards: %v", err)
	}

	want := []string{"card-never", "card-past", "card-exact"}
	if len(due) != len(want) {
		t.Fatalf("len(due) = %d, want %d", len(due), len(want))
	}
	for i, cardID := range want {
		if due[i].CardID != cardID {
			t.Errorf("due[%d] = %s, want %s", i, due[i].CardID, cardID)
		}
	}
}

func TestDueCards_NeverReviewedTieBreaksByCreation(t *testing.T) {
	f := newFakeStore()
	svc := newTestService(f)

	seedRecord(f, "card-a", nil)
	seedRecord(f, "card-b", nil)
	seedRecord(f, "card-c", nil)

	due, err := svc.DueCards(context.Background(), "user-1", store.Scope{}, 0)
	if err != nil {
		t.Fatalf("due cards: %v", err)
	}
	want := []string{"card-a", "card-b", "card-c"}
	for i, cardID := range want {
		if due[i].CardID != cardID {
			t.Errorf("due[%d] = %s, want %s (creation order)", i, due[i].CardID, cardID)
		}
	}
}

func TestDueCards_Limit(t *testing.T) {
	f := newFakeStore()
	svc := newTestService(f)

	for i := 0; i < 30; i++ {
		seedRecord(f, "card-"+string(rune('a'+i)), nil)
	}

	due, err := svc.DueCards(context.Background(), "user-1", store.Scope{}, 0)
	if err != nil {
		t.Fatalf("due cards: %v", err)
	}
	if len(due) != DefaultSessionLimit {
		t.Errorf("len(due) = %d, want default limit %d", len(due), DefaultSessionLimit)
	}

	due, err = svc.DueCards(context.Background(), "user-1", store.Scope{}, 5)
	if err != nil {
		t.Fatalf("due cards limit 5: %v", err)
	}
	if len(due) != 5 {
		t.Errorf("len(due) = %d, want 5", len(due))
	}
}

func TestDueCards_EmptyStudySet(t *testing.T) {
	f := newFakeStore()
	svc := newTestService(f)

	due, err := svc.DueCards(context.Background(), "user-nobody", store.Scope{}, 0)
	if err != nil {
		t.Fatalf("due cards: %v", err)
	}
	if len(due) != 0 {
		t.Errorf("len(due) = %d, want 0", len(due))
	}
}

func TestDueCards_Scoped(t *testing.T) {
	f := newFakeStore()
	svc := newTestService(f)

	seedRecord(f, "card-a", nil)
	other := &store.Record{
		UserID: "user-1", CardID: "card-b",
		ContestID: "contest-2", SubtopicID: "sub-9",
		EaseFactor: 2.5, Status: "learning",
	}
	other.ID = 2
	other.Version = 1
	f.records[key("user-1", "card-b")] = other

	due, err := svc.DueCards(context.Background(), "user-1", store.Scope{ContestID: "contest-1"}, 0)
	if err != nil {
		t.Fatalf("due cards: %v", err)
	}
	if len(due) != 1 || due[0].CardID != "card-a" {
		t.Errorf("scoped due = %v, want only card-a", due)
	}
}
