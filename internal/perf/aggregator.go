package perf

import (
	"sort"
	"time"

	"github.com/revisa-app/revisa/internal/store"
)

// Difficulty bands derived from the ease factor recorded at event time.
// A high ease means the card has been easy for this user.
const (
	easyEaseMin   = 2.8
	mediumEaseMin = 2.3
)

// Metrics is the core performance rollup over a set of review events.
// Empty input yields the zero value, never an error.
type Metrics struct {
	TotalReviews       int        `json:"totalReviews"`
	CorrectAnswers     int        `json:"correctAnswers"`
	IncorrectAnswers   int        `json:"incorrectAnswers"`
	Accuracy           float64    `json:"accuracy"`
	TotalStudyTimeSecs float64    `json:"totalStudyTimeSecs"`
	AvgResponseSecs    float64    `json:"averageResponseTime"`
	StreakDays         int        `json:"streakDays"`
	LastStudyDate      *time.Time `json:"lastStudyDate"`
}

// DailyProgress is one calendar day's worth of review activity. The date
// comes from the event timestamps, not the wall clock of computation.
type DailyProgress struct {
	Date             string  `json:"date"` // YYYY-MM-DD
	ReviewsCount     int     `json:"reviewsCount"`
	CorrectCount     int     `json:"correctCount"`
	StudyTimeMinutes float64 `json:"studyTimeMinutes"`
	NewCardsLearned  int     `json:"newCardsLearned"`
}

// DifficultyStats reports review volume and accuracy within one
// ease-factor band.
type DifficultyStats struct {
	Difficulty string  `json:"difficulty"` // easy, medium, or hard
	Count      int     `json:"count"`
	Accuracy   float64 `json:"accuracy"`
}

// CalculateMetrics folds events into a Metrics value. today anchors the
// streak walk and is injected for determinism.
func CalculateMetrics(events []*store.Event, today time.Time) Metrics {
	var m Metrics
	if len(events) == 0 {
		return m
	}

	m.TotalReviews = len(events)
	var totalLatency float64
	var last time.Time
	for _, ev := range events {
		if ev.Correct {
			m.CorrectAnswers++
		}
		totalLatency += ev.LatencySecs
		if ev.Timestamp.After(last) {
			last = ev.Timestamp
		}
	}
	m.IncorrectAnswers = m.TotalReviews - m.CorrectAnswers
	m.Accuracy = float64(m.CorrectAnswers) / float64(m.TotalReviews) * 100
	m.TotalStudyTimeSecs = totalLatency
	m.AvgResponseSecs = totalLatency / float64(m.TotalReviews)
	m.StreakDays = StreakDays(events, today)
	m.LastStudyDate = &last
	return m
}

// StreakDays counts consecutive calendar days with at least one event,
// walking backward from today. A day with no events ends the walk; the
// streak may start on yesterday if today has no events yet, but a gap of
// more than one day means the streak is over.
func StreakDays(events []*store.Event, today time.Time) int {
	if len(events) == 0 {
		return 0
	}

	days := make(map[string]bool, len(events))
	for _, ev := range events {
		days[dateKey(ev.Timestamp)] = true
	}

	day := today.UTC().Truncate(24 * time.Hour)
	if !days[dateKey(day)] {
		day = day.AddDate(0, 0, -1)
		if !days[dateKey(day)] {
			return 0
		}
	}

	streak := 0
	for days[dateKey(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// CalculateDailyProgress groups events by calendar date, oldest first.
// NewCardsLearned counts events that were the first correct repetition
// for their card, a proxy for newly learned content.
func CalculateDailyProgress(events []*store.Event) []DailyProgress {
	buckets := make(map[string]*DailyProgress)
	for _, ev := range events {
		date := dateKey(ev.Timestamp)
		day, ok := buckets[date]
		if !ok {
			day = &DailyProgress{Date: date}
			buckets[date] = day
		}
		day.ReviewsCount++
		if ev.Correct {
			day.CorrectCount++
		}
		day.StudyTimeMinutes += ev.LatencySecs / 60
		if ev.Correct && ev.Repetitions == 1 {
			day.NewCardsLearned++
		}
	}

	progress := make([]DailyProgress, 0, len(buckets))
	for _, day := range buckets {
		progress = append(progress, *day)
	}
	sort.Slice(progress, func(i, j int) bool {
		return progress[i].Date < progress[j].Date
	})
	return progress
}

// CalculateDifficultyDistribution buckets events by the ease factor at
// event time: easy >= 2.8, medium >= 2.3, hard below. Empty bands are
// omitted; the rest come out in easy, medium, hard order.
func CalculateDifficultyDistribution(events []*store.Event) []DifficultyStats {
	type bucket struct {
		count   int
		correct int
	}
	buckets := make(map[string]*bucket, 3)
	for _, ev := range events {
		band := "hard"
		switch {
		case ev.EaseFactor >= easyEaseMin:
			band = "easy"
		case ev.EaseFactor >= mediumEaseMin:
			band = "medium"
		}
		b, ok := buckets[band]
		if !ok {
			b = &bucket{}
			buckets[band] = b
		}
		b.count++
		if ev.Correct {
			b.correct++
		}
	}

	var stats []DifficultyStats
	for _, band := range []string{"easy", "medium", "hard"} {
		b, ok := buckets[band]
		if !ok {
			continue
		}
		stats = append(stats, DifficultyStats{
			Difficulty: band,
			Count:      b.count,
			Accuracy:   float64(b.correct) / float64(b.count) * 100,
		})
	}
	return stats
}

func dateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
