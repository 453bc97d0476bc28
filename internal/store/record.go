package store

import (
	"context"

	"github.com/revisa-app/revisa/ent"
	"github.com/revisa-app/revisa/ent/reviewrecord"
)

type recordRepo struct {
	client *ent.Client
}

func (r *recordRepo) Get(ctx context.Context, userID, cardID string) (*Record, error) {
	row, err := r.client.ReviewRecord.Query().
		Where(
			reviewrecord.UserID(userID),
			reviewrecord.CardID(cardID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, wrapErr("get record", err)
	}
	return recordFromEnt(row), nil
}

func (r *recordRepo) Create(ctx context.Context, rec *Record) error {
	builder := r.client.ReviewRecord.Create().
		SetUserID(rec.UserID).
		SetCardID(rec.CardID).
		SetContestID(rec.ContestID).
		SetSubtopicID(rec.SubtopicID).
		SetRepetitions(rec.Repetitions).
		SetEaseFactor(rec.EaseFactor).
		SetIntervalDays(rec.IntervalDays).
		SetStatus(rec.Status).
		SetCorrectStreak(rec.CorrectStreak).
		SetIncorrectStreak(rec.IncorrectStreak).
		SetTotalCorrect(rec.TotalCorrect).
		SetTotalIncorrect(rec.TotalIncorrect)

	if rec.NextDueAt != nil {
		builder = builder.SetNextDueAt(*rec.NextDueAt)
	}
	if rec.LastReviewedAt != nil {
		builder = builder.SetLastReviewedAt(*rec.LastReviewedAt)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrConflict
		}
		return wrapErr("create record", err)
	}

	rec.ID = row.ID
	rec.Version = row.Version
	rec.CreatedAt = row.CreatedAt
	return nil
}

// Update performs a compare-and-swap on the version column: the row is
// only written when it still carries rec.Version, and zero affected rows
// means a concurrent writer advanced it first.
func (r *recordRepo) Update(ctx context.Context, rec *Record) error {
	builder := r.client.ReviewRecord.Update().
		Where(
			reviewrecord.UserID(rec.UserID),
			reviewrecord.CardID(rec.CardID),
			reviewrecord.Version(rec.Version),
		).
		SetRepetitions(rec.Repetitions).
		SetEaseFactor(rec.EaseFactor).
		SetIntervalDays(rec.IntervalDays).
		SetStatus(rec.Status).
		SetCorrectStreak(rec.CorrectStreak).
		SetIncorrectStreak(rec.IncorrectStreak).
		SetTotalCorrect(rec.TotalCorrect).
		SetTotalIncorrect(rec.TotalIncorrect).
		SetVersion(rec.Version + 1)

	if rec.NextDueAt != nil {
		builder = builder.SetNextDueAt(*rec.NextDueAt)
	}
	if rec.LastReviewedAt != nil {
		builder = builder.SetLastReviewedAt(*rec.LastReviewedAt)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return wrapErr("update record", err)
	}
	if n == 0 {
		// Either the record vanished or the version moved. Distinguish
		// so callers get the right retry guidance.
		exists, err := r.client.ReviewRecord.Query().
			Where(
				reviewrecord.UserID(rec.UserID),
				reviewrecord.CardID(rec.CardID),
			).
			Exist(ctx)
		if err != nil {
			return wrapErr("update record", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrConflict
	}

	rec.Version++
	return nil
}

func (r *recordRepo) List(ctx context.Context, userID string, scope Scope) ([]*Record, error) {
	q := r.client.ReviewRecord.Query().
		Where(reviewrecord.UserID(userID))
	if scope.ContestID != "" {
		q = q.Where(reviewrecord.ContestID(scope.ContestID))
	}
	if scope.SubtopicID != "" {
		q = q.Where(reviewrecord.SubtopicID(scope.SubtopicID))
	}

	rows, err := q.Order(ent.Asc(reviewrecord.FieldID)).All(ctx)
	if err != nil {
		return nil, wrapErr("list records", err)
	}

	records := make([]*Record, len(rows))
	for i, row := range rows {
		records[i] = recordFromEnt(row)
	}
	return records, nil
}

func (r *recordRepo) Delete(ctx context.Context, userID, cardID string) error {
	n, err := r.client.ReviewRecord.Delete().
		Where(
			reviewrecord.UserID(userID),
			reviewrecord.CardID(cardID),
		).
		Exec(ctx)
	if err != nil {
		return wrapErr("delete record", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *recordRepo) CountByStatus(ctx context.Context, userID string, scope Scope) (map[string]int, error) {
	q := r.client.ReviewRecord.Query().
		Where(reviewrecord.UserID(userID))
	if scope.ContestID != "" {
		q = q.Where(reviewrecord.ContestID(scope.ContestID))
	}
	if scope.SubtopicID != "" {
		q = q.Where(reviewrecord.SubtopicID(scope.SubtopicID))
	}

	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := q.GroupBy(reviewrecord.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, wrapErr("count records by status", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func recordFromEnt(row *ent.ReviewRecord) *Record {
	return &Record{
		ID:              row.ID,
		UserID:          row.UserID,
		CardID:          row.CardID,
		ContestID:       row.ContestID,
		SubtopicID:      row.SubtopicID,
		Repetitions:     row.Repetitions,
		EaseFactor:      row.EaseFactor,
		IntervalDays:    row.IntervalDays,
		NextDueAt:       row.NextDueAt,
		Status:          row.Status,
		CorrectStreak:   row.CorrectStreak,
		IncorrectStreak: row.IncorrectStreak,
		TotalCorrect:    row.TotalCorrect,
		TotalIncorrect:  row.TotalIncorrect,
		LastReviewedAt:  row.LastReviewedAt,
		Version:         row.Version,
		CreatedAt:       row.CreatedAt,
	}
}
