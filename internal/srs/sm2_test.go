package srs

import (
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestAdvance_FirstCorrectReview(t *testing.T) {
	r := Advance(4, 0, DefaultEaseFactor, 0, testNow)

	if r.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", r.Repetitions)
	}
	if r.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", r.IntervalDays)
	}
	wantDue := testNow.AddDate(0, 0, 1)
	if !r.NextDueAt.Equal(wantDue) {
		t.Errorf("NextDueAt = %v, want %v", r.NextDueAt, wantDue)
	}
}

func TestAdvance_SecondCorrectReview(t *testing.T) {
	r := Advance(4, 1, DefaultEaseFactor, 1, testNow)

	if r.Repetitions != 2 {
		t.Errorf("Repetitions = %d, want 2", r.Repetitions)
	}
	if r.IntervalDays != 6 {
		t.Errorf("IntervalDays = %d, want 6", r.IntervalDays)
	}
}

func TestAdvance_ThirdCorrectReview_MultipliesByEase(t *testing.T) {
	r := Advance(5, 2, 2.5, 6, testNow)

	if r.Repetitions != 3 {
		t.Errorf("Repetitions = %d, want 3", r.Repetitions)
	}
	// Quality 5 leaves the ease update at +0.1, but the interval uses the
	// prior ease: round(6 x 2.5) = 15.
	if r.IntervalDays != 15 {
		t.Errorf("IntervalDays = %d, want 15", r.IntervalDays)
	}
	if math.Abs(r.EaseFactor-2.6) > 1e-9 {
		t.Errorf("EaseFactor = %v, want 2.6", r.EaseFactor)
	}
}

func TestAdvance_IncorrectResetsProgress(t *testing.T) {
	r := Advance(1, 4, 2.0, 20, testNow)

	if r.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want 0", r.Repetitions)
	}
	if r.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", r.IntervalDays)
	}
	if r.EaseFactor >= 2.0 {
		t.Errorf("EaseFactor = %v, want < 2.0 after a poor answer", r.EaseFactor)
	}
}

func TestAdvance_EaseFactorUpdate(t *testing.T) {
	tests := []struct {
		quality int
		ease    float64
		want    float64
	}{
		{5, 2.5, 2.6},
		{4, 2.5, 2.5},
		{3, 2.5, 2.36},
		{2, 2.5, 2.18},
		{1, 2.5, 1.96},
		{0, 2.5, 1.7},
	}
	for _, tt := range tests {
		r := Advance(tt.quality, 3, tt.ease, 10, testNow)
		if math.Abs(r.EaseFactor-tt.want) > 1e-9 {
			t.Errorf("Advance(quality=%d): EaseFactor = %v, want %v", tt.quality, r.EaseFactor, tt.want)
		}
	}
}

func TestAdvance_EaseFactorFloor(t *testing.T) {
	ease := DefaultEaseFactor
	for i := 0; i < 20; i++ {
		r := Advance(0, 0, ease, 1, testNow)
		if r.EaseFactor < MinEaseFactor {
			t.Fatalf("iteration %d: EaseFactor = %v, below floor %v", i, r.EaseFactor, MinEaseFactor)
		}
		ease = r.EaseFactor
	}
	if ease != MinEaseFactor {
		t.Errorf("EaseFactor after repeated failures = %v, want exactly %v", ease, MinEaseFactor)
	}
}

func TestAdvance_Totality(t *testing.T) {
	// Every valid input must yield an ease >= floor and interval >= 1.
	eases := []float64{1.3, 1.9, 2.5, 3.4}
	intervals := []int{1, 6, 21, 180}
	reps := []int{0, 1, 2, 7}

	for q := MinQuality; q <= MaxQuality; q++ {
		for _, ef := range eases {
			for _, iv := range intervals {
				for _, rep := range reps {
					r := Advance(q, rep, ef, iv, testNow)
					if r.EaseFactor < MinEaseFactor {
						t.Fatalf("Advance(%d,%d,%v,%d): EaseFactor %v below floor", q, rep, ef, iv, r.EaseFactor)
					}
					if r.IntervalDays < 1 {
						t.Fatalf("Advance(%d,%d,%v,%d): IntervalDays %d < 1", q, rep, ef, iv, r.IntervalDays)
					}
				}
			}
		}
	}
}

func TestValidQuality(t *testing.T) {
	for q := 0; q <= 5; q++ {
		if !ValidQuality(q) {
			t.Errorf("ValidQuality(%d) = false, want true", q)
		}
	}
	for _, q := range []int{-1, 6, 100} {
		if ValidQuality(q) {
			t.Errorf("ValidQuality(%d) = true, want false", q)
		}
	}
}
