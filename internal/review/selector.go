package review

import (
	"context"
	"sort"

	"github.com/revisa-app/revisa/internal/store"
)

// DefaultSessionLimit caps a study session when the caller doesn't ask
// for a specific size.
const DefaultSessionLimit = 20

// DueCards returns the user's due records, never-reviewed cards first,
// then ascending by due date, capped at limit. A card whose due time
// equals now is due (inclusive boundary). An empty result is normal.
func (s *Service) DueCards(ctx context.Context, userID string, scope store.Scope, limit int) ([]*store.Record, error) {
	if limit <= 0 {
		limit = DefaultSessionLimit
	}

	records, err := s.records.List(ctx, userID, scope)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	now := s.now()
	due := records[:0]
	for _, rec := range records {
		if rec.NextDueAt == nil || !rec.NextDueAt.After(now) {
			due = append(due, rec)
		}
	}

	// List returns records in creation order, and sort.SliceStable keeps
	// that order within equal due dates.
	sort.SliceStable(due, func(i, j int) bool {
		a, b := due[i].NextDueAt, due[j].NextDueAt
		switch {
		case a == nil && b == nil:
			return false
		case a == nil:
			return true
		case b == nil:
			return false
		default:
			return a.Before(*b)
		}
	})

	if len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}
