package perf

import (
	"math"
	"testing"
	"time"

	"github.com/revisa-app/revisa/internal/store"
)

var today = time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

func ev(ts time.Time, correct bool, ease float64, reps int, latency float64) *store.Event {
	quality := 2
	if correct {
		quality = 4
	}
	return &store.Event{
		Timestamp:    ts,
		UserID:       "user-1",
		CardID:       "card-1",
		ContestID:    "contest-1",
		SubtopicID:   "sub-1",
		Quality:      quality,
		Correct:      correct,
		Repetitions:  reps,
		EaseFactor:   ease,
		IntervalDays: 1,
		LatencySecs:  latency,
	}
}

func TestCalculateMetrics_Empty(t *testing.T) {
	m := CalculateMetrics(nil, today)

	if m.TotalReviews != 0 || m.Accuracy != 0 || m.StreakDays != 0 {
		t.Errorf("empty metrics = %+v, want zero values", m)
	}
	if m.LastStudyDate != nil {
		t.Errorf("LastStudyDate = %v, want nil", m.LastStudyDate)
	}
}

func TestCalculateMetrics_AccuracyAndLatency(t *testing.T) {
	events := []*store.Event{
		ev(today, true, 2.5, 1, 10),
		ev(today, true, 2.5, 2, 20),
		ev(today, false, 2.3, 0, 30),
		ev(today, true, 2.6, 3, 20),
	}
	m := CalculateMetrics(events, today)

	if m.TotalReviews != 4 || m.CorrectAnswers != 3 || m.IncorrectAnswers != 1 {
		t.Errorf("counts = %d/%d/%d, want 4/3/1", m.TotalReviews, m.CorrectAnswers, m.IncorrectAnswers)
	}
	if m.Accuracy != 75 {
		t.Errorf("Accuracy = %v, want 75", m.Accuracy)
	}
	if m.AvgResponseSecs != 20 {
		t.Errorf("AvgResponseSecs = %v, want 20", m.AvgResponseSecs)
	}
	if m.TotalStudyTimeSecs != 80 {
		t.Errorf("TotalStudyTimeSecs = %v, want 80", m.TotalStudyTimeSecs)
	}
	if m.LastStudyDate == nil || !m.LastStudyDate.Equal(today) {
		t.Errorf("LastStudyDate = %v, want %v", m.LastStudyDate, today)
	}
}

func TestStreakDays(t *testing.T) {
	day := func(n int) time.Time { return today.AddDate(0, 0, -n) }

	tests := []struct {
		name string
		days []int // days ago with activity
		want int
	}{
		{"no events", nil, 0},
		{"only today", []int{0}, 1},
		{"three consecutive days", []int{0, 1, 2}, 3},
		{"today missing, streak from yesterday", []int{1, 2, 3}, 3},
		{"two day gap breaks streak", []int{2, 3}, 0},
		{"gap in the middle stops the walk", []int{0, 1, 3, 4}, 2},
		{"long run", []int{0, 1, 2, 3, 4, 5, 6}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var events []*store.Event
			for _, n := range tt.days {
				events = append(events, ev(day(n), true, 2.5, 1, 30))
			}
			if got := StreakDays(events, today); got != tt.want {
				t.Errorf("StreakDays = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateDailyProgress(t *testing.T) {
	yesterday := today.AddDate(0, 0, -1)
	events := []*store.Event{
		ev(yesterday, true, 2.5, 1, 60),  // newly learned
		ev(yesterday, false, 2.3, 0, 30),
		ev(today, true, 2.6, 2, 90),
		ev(today, true, 2.5, 1, 30), // newly learned
	}

	progress := CalculateDailyProgress(events)
	if len(progress) != 2 {
		t.Fatalf("len(progress) = %d, want 2", len(progress))
	}

	// Oldest first.
	if progress[0].Date != "2025-03-09" || progress[1].Date != "2025-03-10" {
		t.Errorf("dates = %s, %s, want 2025-03-09, 2025-03-10", progress[0].Date, progress[1].Date)
	}

	d0 := progress[0]
	if d0.ReviewsCount != 2 || d0.CorrectCount != 1 || d0.NewCardsLearned != 1 {
		t.Errorf("day 0 = %+v, want 2 reviews, 1 correct, 1 new", d0)
	}
	if math.Abs(d0.StudyTimeMinutes-1.5) > 1e-9 {
		t.Errorf("day 0 StudyTimeMinutes = %v, want 1.5", d0.StudyTimeMinutes)
	}

	d1 := progress[1]
	if d1.ReviewsCount != 2 || d1.CorrectCount != 2 || d1.NewCardsLearned != 1 {
		t.Errorf("day 1 = %+v, want 2 reviews, 2 correct, 1 new", d1)
	}
}

func TestCalculateDailyProgress_IncorrectFirstRepetitionNotNew(t *testing.T) {
	// An incorrect answer resets repetitions; only a correct first
	// repetition counts as newly learned.
	events := []*store.Event{ev(today, false, 2.0, 0, 30)}
	progress := CalculateDailyProgress(events)
	if progress[0].NewCardsLearned != 0 {
		t.Errorf("NewCardsLearned = %d, want 0", progress[0].NewCardsLearned)
	}
}

func TestCalculateDifficultyDistribution(t *testing.T) {
	events := []*store.Event{
		ev(today, true, 3.0, 1, 30),  // easy
		ev(today, true, 2.8, 2, 30),  // easy (inclusive boundary)
		ev(today, true, 2.5, 1, 30),  // medium
		ev(today, false, 2.3, 0, 30), // medium (inclusive boundary)
		ev(today, false, 2.0, 0, 30), // hard
		ev(today, false, 1.3, 0, 30), // hard
	}

	stats := CalculateDifficultyDistribution(events)
	if len(stats) != 3 {
		t.Fatalf("len(stats) = %d, want 3", len(stats))
	}

	want := []DifficultyStats{
		{Difficulty: "easy", Count: 2, Accuracy: 100},
		{Difficulty: "medium", Count: 2, Accuracy: 50},
		{Difficulty: "hard", Count: 2, Accuracy: 0},
	}
	for i, w := range want {
		if stats[i] != w {
			t.Errorf("stats[%d] = %+v, want %+v", i, stats[i], w)
		}
	}
}

func TestCalculateDifficultyDistribution_OmitsEmptyBands(t *testing.T) {
	events := []*store.Event{ev(today, true, 3.0, 1, 30)}
	stats := CalculateDifficultyDistribution(events)
	if len(stats) != 1 || stats[0].Difficulty != "easy" {
		t.Errorf("stats = %+v, want single easy band", stats)
	}
}
