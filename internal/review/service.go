package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/revisa-app/revisa/internal/srs"
	"github.com/revisa-app/revisa/internal/store"
)

// DefaultLatencySecs is assumed when the caller did not measure how long
// the learner took to answer.
const DefaultLatencySecs = 30

// Service owns the review write path: enrollment, submission, removal.
// Submissions for the same (user, card) key are serialized in-process
// and guarded by the record's version stamp at the store.
type Service struct {
	records store.RecordRepo
	events  store.EventRepo
	catalog store.CatalogRepo
	now     func() time.Time
	locks   keyLocks
}

// NewService builds a review service. nowFn may be nil, in which case
// time.Now is used; tests inject a fixed clock.
func NewService(records store.RecordRepo, events store.EventRepo, catalog store.CatalogRepo, nowFn func() time.Time) *Service {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Service{
		records: records,
		events:  events,
		catalog: catalog,
		now:     nowFn,
	}
}

// Submission is one review answer.
type Submission struct {
	UserID      string
	CardID      string
	Quality     int
	LatencySecs float64 // 0 means unmeasured; DefaultLatencySecs is recorded
}

// Outcome reports the scheduling state after a submission.
type Outcome struct {
	Record    *store.Record
	NextDueAt time.Time
	Status    srs.Status
}

// Enroll adds a card to the user's study set. The new record is due
// immediately: it has no next-due timestamp and status "new".
func (s *Service) Enroll(ctx context.Context, userID, cardID string) (*store.Record, error) {
	cc, err := s.catalog.ResolveCard(ctx, cardID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if _, err := s.records.Get(ctx, userID, cardID); err == nil {
		return nil, ErrAlreadyEnrolled
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, mapStoreErr(err)
	}

	rec := &store.Record{
		UserID:     userID,
		CardID:     cardID,
		ContestID:  cc.ContestID,
		SubtopicID: cc.SubtopicID,
		EaseFactor: srs.DefaultEaseFactor,
		Status:     string(srs.StatusNew),
	}
	if err := s.records.Create(ctx, rec); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, mapStoreErr(err)
	}
	return rec, nil
}

// Remove takes a card out of the user's study set. The event log is
// untouched; history survives removal.
func (s *Service) Remove(ctx context.Context, userID, cardID string) error {
	if err := s.records.Delete(ctx, userID, cardID); err != nil {
		return mapStoreErr(err)
	}
	return nil
}

// Submit applies one review answer: runs the SM-2 step, advances the
// lifecycle status, writes the record under its version stamp, and
// appends the review event. A version conflict is surfaced as
// ErrWriteConflict and never retried here; a silent retry could
// double-count the review event.
func (s *Service) Submit(ctx context.Context, sub Submission) (*Outcome, error) {
	if !srs.ValidQuality(sub.Quality) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRating, sub.Quality)
	}

	mu := s.locks.lock(sub.UserID, sub.CardID)
	defer mu.Unlock()

	rec, err := s.records.Get(ctx, sub.UserID, sub.CardID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	now := s.now()
	correct := srs.IsCorrect(sub.Quality)
	result := srs.Advance(sub.Quality, rec.Repetitions, rec.EaseFactor, rec.IntervalDays, now)
	status := srs.Transition(srs.Status(rec.Status), correct, result.Repetitions, result.IntervalDays)

	rec.Repetitions = result.Repetitions
	rec.EaseFactor = result.EaseFactor
	rec.IntervalDays = result.IntervalDays
	rec.NextDueAt = &result.NextDueAt
	rec.Status = string(status)
	rec.LastReviewedAt = &now
	if correct {
		rec.CorrectStreak++
		rec.IncorrectStreak = 0
		rec.TotalCorrect++
	} else {
		rec.IncorrectStreak++
		rec.CorrectStreak = 0
		rec.TotalIncorrect++
	}

	if err := s.records.Update(ctx, rec); err != nil {
		return nil, mapStoreErr(err)
	}

	latency := sub.LatencySecs
	if latency <= 0 {
		latency = DefaultLatencySecs
	}
	ev := &store.Event{
		Timestamp:    now,
		UserID:       sub.UserID,
		CardID:       sub.CardID,
		ContestID:    rec.ContestID,
		SubtopicID:   rec.SubtopicID,
		Quality:      sub.Quality,
		Correct:      correct,
		Repetitions:  result.Repetitions,
		EaseFactor:   result.EaseFactor,
		IntervalDays: result.IntervalDays,
		LatencySecs:  latency,
	}
	if err := s.events.Append(ctx, ev); err != nil {
		return nil, mapStoreErr(err)
	}

	return &Outcome{
		Record:    rec,
		NextDueAt: result.NextDueAt,
		Status:    status,
	}, nil
}

// mapStoreErr translates store sentinels into the review taxonomy.
func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrRecordNotFound, err)
	case errors.Is(err, store.ErrConflict):
		return fmt.Errorf("%w: %v", ErrWriteConflict, err)
	case errors.Is(err, store.ErrUnavailable):
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	default:
		return err
	}
}
