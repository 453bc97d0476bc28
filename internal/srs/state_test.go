package srs

import "testing"

func TestTransition(t *testing.T) {
	tests := []struct {
		name         string
		prior        Status
		correct      bool
		repetitions  int
		intervalDays int
		want         Status
	}{
		{"new card answered correctly enters learning", StatusNew, true, 1, 1, StatusLearning},
		{"new card answered incorrectly enters learning", StatusNew, false, 0, 1, StatusLearning},
		{"learning card with one hit stays learning", StatusLearning, true, 1, 1, StatusLearning},
		{"learning card with two hits moves to review", StatusLearning, true, 2, 6, StatusReview},
		{"review card below graduation interval stays review", StatusReview, true, 3, 15, StatusReview},
		{"review card at graduation interval graduates", StatusReview, true, 4, 21, StatusGraduated},
		{"review card past graduation interval graduates", StatusReview, true, 4, 39, StatusGraduated},
		{"learning card can graduate directly on long interval", StatusLearning, true, 3, 24, StatusGraduated},
		{"incorrect answer demotes review to learning", StatusReview, false, 0, 1, StatusLearning},
		{"incorrect answer demotes graduated to learning", StatusGraduated, false, 0, 1, StatusLearning},
		{"graduated card answered correctly stays graduated", StatusGraduated, true, 5, 40, StatusGraduated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transition(tt.prior, tt.correct, tt.repetitions, tt.intervalDays)
			if got != tt.want {
				t.Errorf("Transition(%s, %v, %d, %d) = %s, want %s",
					tt.prior, tt.correct, tt.repetitions, tt.intervalDays, got, tt.want)
			}
		})
	}
}

func TestTransition_RegressionAndRecovery(t *testing.T) {
	// A graduated card that lapses must climb back through the full
	// lifecycle rather than snapping back to graduated.
	status := StatusGraduated

	status = Transition(status, false, 0, 1)
	if status != StatusLearning {
		t.Fatalf("after lapse: status = %s, want learning", status)
	}

	status = Transition(status, true, 1, 1)
	if status != StatusLearning {
		t.Fatalf("after first recovery hit: status = %s, want learning", status)
	}

	status = Transition(status, true, 2, 6)
	if status != StatusReview {
		t.Fatalf("after second recovery hit: status = %s, want review", status)
	}

	status = Transition(status, true, 3, 21)
	if status != StatusGraduated {
		t.Fatalf("after interval reached 21: status = %s, want graduated", status)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []Status{StatusNew, StatusLearning, StatusReview, StatusGraduated} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%s) = false, want true", s)
		}
	}
	if ValidStatus(Status("mastered")) {
		t.Error("ValidStatus(mastered) = true, want false")
	}
}
