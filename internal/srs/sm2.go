package srs

import (
	"math"
	"time"
)

// SM-2 scheduling constants.
const (
	// MinQuality and MaxQuality bound the self-assessed recall score.
	MinQuality = 0
	MaxQuality = 5

	// CorrectThreshold is the lowest quality that counts as a correct answer.
	CorrectThreshold = 3

	// DefaultEaseFactor is the ease assigned to a card never reviewed before.
	DefaultEaseFactor = 2.5

	// MinEaseFactor is the floor the ease factor never drops below.
	MinEaseFactor = 1.3

	// FirstInterval and SecondInterval are the fixed intervals (in days)
	// for the first two successful repetitions.
	FirstInterval  = 1
	SecondInterval = 6
)

// ValidQuality reports whether q is an acceptable recall score.
func ValidQuality(q int) bool {
	return q >= MinQuality && q <= MaxQuality
}

// IsCorrect reports whether q counts as a correct answer.
func IsCorrect(q int) bool {
	return q >= CorrectThreshold
}

// Result is the scheduling state produced by one application of Advance.
type Result struct {
	Repetitions  int
	EaseFactor   float64
	IntervalDays int
	NextDueAt    time.Time
}

// Advance applies one SM-2 step to a card's scheduling state. quality must
// already be validated to [0,5]; callers reject out-of-range input before
// reaching here. The clock is passed in so the function stays pure.
//
// A correct answer grows the repetition count and the interval (1 day,
// then 6, then interval x ease). An incorrect answer restarts the card:
// repetitions 0, interval 1. The ease factor moves on every answer and is
// clamped at MinEaseFactor.
func Advance(quality, repetitions int, easeFactor float64, intervalDays int, now time.Time) Result {
	r := Result{
		Repetitions:  repetitions,
		EaseFactor:   easeFactor,
		IntervalDays: intervalDays,
	}

	if IsCorrect(quality) {
		switch repetitions {
		case 0:
			r.IntervalDays = FirstInterval
		case 1:
			r.IntervalDays = SecondInterval
		default:
			r.IntervalDays = int(math.Round(float64(intervalDays) * easeFactor))
		}
		r.Repetitions = repetitions + 1
	} else {
		r.Repetitions = 0
		r.IntervalDays = FirstInterval
	}

	q := float64(quality)
	r.EaseFactor = easeFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if r.EaseFactor < MinEaseFactor {
		r.EaseFactor = MinEaseFactor
	}

	r.NextDueAt = now.AddDate(0, 0, r.IntervalDays)
	return r
}
