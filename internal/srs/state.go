package srs

// Status represents a card's position in the review lifecycle.
type Status string

const (
	StatusNew       Status = "new"
	StatusLearning  Status = "learning"
	StatusReview    Status = "review"
	StatusGraduated Status = "graduated"
)

// GraduationIntervalDays is the interval at which a correctly answered
// card graduates. Once the schedule pushes a card three weeks out, it is
// considered durably learned.
const GraduationIntervalDays = 21

// ValidStatus reports whether s is a known lifecycle status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusLearning, StatusReview, StatusGraduated:
		return true
	}
	return false
}

// Transition computes the lifecycle status after a review, given the
// prior status and the post-update repetition count and interval.
//
// Any incorrect answer forces the card back to learning, including from
// graduated: graduation is not terminal. A first exposure always enters
// learning regardless of correctness. From there, correct answers climb
// to review once the card has two consecutive hits, and to graduated
// once the interval reaches GraduationIntervalDays.
func Transition(prior Status, correct bool, repetitions, intervalDays int) Status {
	if !correct {
		return StatusLearning
	}
	if prior == StatusNew {
		return StatusLearning
	}
	if intervalDays >= GraduationIntervalDays {
		return StatusGraduated
	}
	if repetitions >= 2 {
		return StatusReview
	}
	return StatusLearning
}
