package review

import (
	"context"

	"github.com/revisa-app/revisa/internal/srs"
	"github.com/revisa-app/revisa/internal/store"
)

// StudyStats summarizes a user's card pipeline within a scope: how many
// cards sit in each lifecycle status and how many are due right now.
type StudyStats struct {
	Total        int `json:"total"`
	NewCards     int `json:"newCards"`
	Learning     int `json:"learning"`
	Review       int `json:"review"`
	Graduated    int `json:"graduated"`
	DueForReview int `json:"dueForReview"`
}

// StudyStats reports status counts and the due count for the scope. A
// user with nothing enrolled gets all zeroes.
func (s *Service) StudyStats(ctx context.Context, userID string, scope store.Scope) (*StudyStats, error) {
	counts, err := s.records.CountByStatus(ctx, userID, scope)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	stats := &StudyStats{
		NewCards:  counts[string(srs.StatusNew)],
		Learning:  counts[string(srs.StatusLearning)],
		Review:    counts[string(srs.StatusReview)],
		Graduated: counts[string(srs.StatusGraduated)],
	}
	for _, n := range counts {
		stats.Total += n
	}

	records, err := s.records.List(ctx, userID, scope)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	now := s.now()
	for _, rec := range records {
		if rec.NextDueAt == nil || !rec.NextDueAt.After(now) {
			stats.DueForReview++
		}
	}
	return stats, nil
}
