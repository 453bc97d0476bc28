package store

import (
	"context"
	"time"
)

// Record is the scheduling state for one (user, card) pair. It is a
// projection of the event log kept for scheduling speed; the log remains
// the source of truth.
type Record struct {
	ID              int
	UserID          string
	CardID          string
	ContestID       string
	SubtopicID      string
	Repetitions     int
	EaseFactor      float64
	IntervalDays    int
	NextDueAt       *time.Time
	Status          string
	CorrectStreak   int
	IncorrectStreak int
	TotalCorrect    int
	TotalIncorrect  int
	LastReviewedAt  *time.Time
	Version         int64
	CreatedAt       time.Time
}

// Event is one entry in the append-only review log. Ease factor,
// interval, and repetitions are the values *after* the update.
type Event struct {
	Sequence     int64
	Timestamp    time.Time
	UserID       string
	CardID       string
	ContestID    string
	SubtopicID   string
	Quality      int
	Correct      bool
	Repetitions  int
	EaseFactor   float64
	IntervalDays int
	LatencySecs  float64
}

// Scope narrows record and event queries to part of the hierarchy.
// The zero value means no narrowing.
type Scope struct {
	ContestID  string
	SubtopicID string
}

// EventFilter selects review events. UserID is required; everything else
// is optional.
type EventFilter struct {
	UserID      string
	ContestID   string
	SubtopicID  string
	SubtopicIDs []string // used for topic-level rollups
	From        time.Time
	To          time.Time
}

// RecordRepo manages review records.
type RecordRepo interface {
	// Get returns the record for (userID, cardID), or ErrNotFound.
	Get(ctx context.Context, userID, cardID string) (*Record, error)

	// Create inserts a fresh record. Fails if one already exists for
	// the (user, card) pair.
	Create(ctx context.Context, rec *Record) error

	// Update writes rec's mutable fields, but only if the row still
	// carries rec.Version. On success the stored version is bumped and
	// rec.Version reflects it. Returns ErrConflict when the version
	// check fails.
	Update(ctx context.Context, rec *Record) error

	// List returns the user's records within scope, oldest first.
	List(ctx context.Context, userID string, scope Scope) ([]*Record, error)

	// Delete removes the record for (userID, cardID), or ErrNotFound.
	Delete(ctx context.Context, userID, cardID string) error

	// CountByStatus counts the user's records in scope per status.
	CountByStatus(ctx context.Context, userID string, scope Scope) (map[string]int, error)
}

// EventRepo provides append and query access to the review log.
type EventRepo interface {
	// Append writes one event, assigning it the next global sequence.
	// The event's Sequence field is set on return.
	Append(ctx context.Context, ev *Event) error

	// Query returns matching events in sequence order.
	Query(ctx context.Context, f EventFilter) ([]*Event, error)
}

// Contest, Topic, Subtopic, and Card mirror the catalog tables.
type Contest struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

type Topic struct {
	ID        string
	ContestID string
	Name      string
	CreatedAt time.Time
}

type Subtopic struct {
	ID        string
	TopicID   string
	Name      string
	CreatedAt time.Time
}

type Card struct {
	ID         string
	SubtopicID string
	Front      string
	Back       string
	Difficulty string
	CreatedAt  time.Time
}

// CardContext resolves where a card sits in the hierarchy.
type CardContext struct {
	CardID     string
	SubtopicID string
	TopicID    string
	ContestID  string
}

// CatalogRepo provides access to the content hierarchy. The scheduling
// engine only reads it; writes come from content authoring.
type CatalogRepo interface {
	CreateContest(ctx context.Context, c *Contest) error
	CreateTopic(ctx context.Context, t *Topic) error
	CreateSubtopic(ctx context.Context, st *Subtopic) error
	CreateCard(ctx context.Context, c *Card) error

	GetContest(ctx context.Context, id string) (*Contest, error)
	GetTopic(ctx context.Context, id string) (*Topic, error)
	GetSubtopic(ctx context.Context, id string) (*Subtopic, error)
	GetCard(ctx context.Context, id string) (*Card, error)

	TopicsByContest(ctx context.Context, contestID string) ([]*Topic, error)
	SubtopicsByTopic(ctx context.Context, topicID string) ([]*Subtopic, error)
	CardsBySubtopic(ctx context.Context, subtopicID string) ([]*Card, error)
	CountCardsBySubtopic(ctx context.Context, subtopicID string) (int, error)

	// ResolveCard walks Card -> Subtopic -> Topic -> Contest.
	ResolveCard(ctx context.Context, cardID string) (*CardContext, error)
}
