package perf

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/revisa-app/revisa/internal/srs"
	"github.com/revisa-app/revisa/internal/store"
)

// Service answers performance queries by folding the review log. It is
// read-only: every result is re-derivable from the events at any time,
// and concurrent writes only mean the snapshot is a moment stale.
type Service struct {
	events  store.EventRepo
	records store.RecordRepo
	catalog store.CatalogRepo
	now     func() time.Time
}

// NewService builds a performance service. nowFn may be nil, in which
// case time.Now is used.
func NewService(events store.EventRepo, records store.RecordRepo, catalog store.CatalogRepo, nowFn func() time.Time) *Service {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Service{events: events, records: records, catalog: catalog, now: nowFn}
}

// Summary is the stats payload for a user, optionally scoped.
type Summary struct {
	Metrics
	DailyProgress          []DailyProgress   `json:"dailyProgress"`
	DifficultyDistribution []DifficultyStats `json:"difficultyDistribution"`
}

// OverallPerformance extends the summary with cross-contest context.
type OverallPerformance struct {
	Summary
	ContestsCount int `json:"contestsCount"`
}

// ContestPerformance breaks a contest's numbers down by topic.
type ContestPerformance struct {
	ContestID   string `json:"contestId"`
	ContestName string `json:"contestName"`
	Summary
	TopicPerformance []TopicPerformance `json:"topicPerformance"`
}

// TopicPerformance breaks a topic's numbers down by subtopic.
type TopicPerformance struct {
	TopicID   string `json:"topicId"`
	TopicName string `json:"topicName"`
	Metrics
	SubtopicPerformance []SubtopicPerformance `json:"subtopicPerformance"`
}

// SubtopicPerformance pairs review metrics with card-level progress.
type SubtopicPerformance struct {
	SubtopicID   string `json:"subtopicId"`
	SubtopicName string `json:"subtopicName"`
	Metrics
	CardsTotal        int     `json:"cardsTotal"`
	CardsLearned      int     `json:"cardsLearned"`
	CardsToReview     int     `json:"cardsToReview"`
	AverageEaseFactor float64 `json:"averageEaseFactor"`
}

// Window bounds a stats query in time. A zero side leaves that end
// open, so the zero value covers all history.
type Window struct {
	From time.Time
	To   time.Time
}

// Stats computes the summary for a user within the given scope and
// window. An empty scope covers everything the user has reviewed.
func (s *Service) Stats(ctx context.Context, userID string, scope store.Scope, win Window) (*Summary, error) {
	events, err := s.events.Query(ctx, store.EventFilter{
		UserID:     userID,
		ContestID:  scope.ContestID,
		SubtopicID: scope.SubtopicID,
		From:       win.From,
		To:         win.To,
	})
	if err != nil {
		return nil, err
	}
	return s.summarize(events), nil
}

// Overall reports across all of the user's contests.
func (s *Service) Overall(ctx context.Context, userID string) (*OverallPerformance, error) {
	events, err := s.events.Query(ctx, store.EventFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	contests := make(map[string]bool)
	for _, ev := range events {
		contests[ev.ContestID] = true
	}

	return &OverallPerformance{
		Summary:       *s.summarize(events),
		ContestsCount: len(contests),
	}, nil
}

// Contest reports one contest with per-topic breakdown.
func (s *Service) Contest(ctx context.Context, userID, contestID string) (*ContestPerformance, error) {
	contest, err := s.catalog.GetContest(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("contest %s: %w", contestID, err)
	}

	events, err := s.events.Query(ctx, store.EventFilter{UserID: userID, ContestID: contestID})
	if err != nil {
		return nil, err
	}

	topics, err := s.catalog.TopicsByContest(ctx, contestID)
	if err != nil {
		return nil, err
	}

	perf := &ContestPerformance{
		ContestID:   contest.ID,
		ContestName: contest.Name,
		Summary:     *s.summarize(events),
	}
	for _, topic := range topics {
		tp, err := s.topicPerformance(ctx, userID, topic, events)
		if err != nil {
			return nil, err
		}
		perf.TopicPerformance = append(perf.TopicPerformance, *tp)
	}
	return perf, nil
}

// Topic reports one topic with per-subtopic breakdown.
func (s *Service) Topic(ctx context.Context, userID, topicID string) (*TopicPerformance, error) {
	topic, err := s.catalog.GetTopic(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("topic %s: %w", topicID, err)
	}

	subtopics, err := s.catalog.SubtopicsByTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}
	subtopicIDs := make([]string, len(subtopics))
	for i, st := range subtopics {
		subtopicIDs[i] = st.ID
	}

	var events []*store.Event
	if len(subtopicIDs) > 0 {
		events, err = s.events.Query(ctx, store.EventFilter{UserID: userID, SubtopicIDs: subtopicIDs})
		if err != nil {
			return nil, err
		}
	}

	return s.topicPerformanceFrom(ctx, userID, topic, subtopics, events)
}

// Subtopic reports one subtopic, including card-level progress counts.
func (s *Service) Subtopic(ctx context.Context, userID, subtopicID string) (*SubtopicPerformance, error) {
	subtopic, err := s.catalog.GetSubtopic(ctx, subtopicID)
	if err != nil {
		return nil, fmt.Errorf("subtopic %s: %w", subtopicID, err)
	}

	events, err := s.events.Query(ctx, store.EventFilter{UserID: userID, SubtopicID: subtopicID})
	if err != nil {
		return nil, err
	}
	return s.subtopicPerformance(ctx, userID, subtopic, events)
}

func (s *Service) summarize(events []*store.Event) *Summary {
	return &Summary{
		Metrics:                CalculateMetrics(events, s.now()),
		DailyProgress:          CalculateDailyProgress(events),
		DifficultyDistribution: CalculateDifficultyDistribution(events),
	}
}

func (s *Service) topicPerformance(ctx context.Context, userID string, topic *store.Topic, contestEvents []*store.Event) (*TopicPerformance, error) {
	subtopics, err := s.catalog.SubtopicsByTopic(ctx, topic.ID)
	if err != nil {
		return nil, err
	}

	// Partition the already-fetched contest events instead of re-querying
	// per topic.
	inTopic := make(map[string]bool, len(subtopics))
	for _, st := range subtopics {
		inTopic[st.ID] = true
	}
	var events []*store.Event
	for _, ev := range contestEvents {
		if inTopic[ev.SubtopicID] {
			events = append(events, ev)
		}
	}

	return s.topicPerformanceFrom(ctx, userID, topic, subtopics, events)
}

func (s *Service) topicPerformanceFrom(ctx context.Context, userID string, topic *store.Topic, subtopics []*store.Subtopic, events []*store.Event) (*TopicPerformance, error) {
	tp := &TopicPerformance{
		TopicID:   topic.ID,
		TopicName: topic.Name,
		Metrics:   CalculateMetrics(events, s.now()),
	}

	for _, st := range subtopics {
		var subEvents []*store.Event
		for _, ev := range events {
			if ev.SubtopicID == st.ID {
				subEvents = append(subEvents, ev)
			}
		}
		sp, err := s.subtopicPerformance(ctx, userID, st, subEvents)
		if err != nil {
			return nil, err
		}
		tp.SubtopicPerformance = append(tp.SubtopicPerformance, *sp)
	}
	return tp, nil
}

func (s *Service) subtopicPerformance(ctx context.Context, userID string, subtopic *store.Subtopic, events []*store.Event) (*SubtopicPerformance, error) {
	sp := &SubtopicPerformance{
		SubtopicID:   subtopic.ID,
		SubtopicName: subtopic.Name,
		Metrics:      CalculateMetrics(events, s.now()),
	}

	total, err := s.catalog.CountCardsBySubtopic(ctx, subtopic.ID)
	if err != nil {
		return nil, err
	}
	sp.CardsTotal = total

	records, err := s.records.List(ctx, userID, store.Scope{SubtopicID: subtopic.ID})
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	now := s.now()
	var easeSum float64
	for _, rec := range records {
		if rec.Status == string(srs.StatusGraduated) {
			sp.CardsLearned++
		}
		if rec.NextDueAt == nil || !rec.NextDueAt.After(now) {
			sp.CardsToReview++
		}
		easeSum += rec.EaseFactor
	}
	if len(records) > 0 {
		sp.AverageEaseFactor = easeSum / float64(len(records))
	} else {
		sp.AverageEaseFactor = srs.DefaultEaseFactor
	}
	return sp, nil
}
