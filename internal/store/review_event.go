package store

import (
	"context"

	"github.com/revisa-app/revisa/ent"
	"github.com/revisa-app/revisa/ent/reviewevent"
)

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) Append(ctx context.Context, ev *Event) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	builder := r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetUserID(ev.UserID).
		SetCardID(ev.CardID).
		SetContestID(ev.ContestID).
		SetSubtopicID(ev.SubtopicID).
		SetQuality(ev.Quality).
		SetCorrect(ev.Correct).
		SetRepetitions(ev.Repetitions).
		SetEaseFactor(ev.EaseFactor).
		SetIntervalDays(ev.IntervalDays).
		SetLatencySecs(ev.LatencySecs)

	if !ev.Timestamp.IsZero() {
		builder = builder.SetTimestamp(ev.Timestamp)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return wrapErr("append review event", err)
	}

	ev.Sequence = row.Sequence
	ev.Timestamp = row.Timestamp
	return nil
}

func (r *eventRepo) Query(ctx context.Context, f EventFilter) ([]*Event, error) {
	q := r.client.ReviewEvent.Query().
		Where(reviewevent.UserID(f.UserID))

	if f.ContestID != "" {
		q = q.Where(reviewevent.ContestID(f.ContestID))
	}
	if f.SubtopicID != "" {
		q = q.Where(reviewevent.SubtopicID(f.SubtopicID))
	}
	if len(f.SubtopicIDs) > 0 {
		q = q.Where(reviewevent.SubtopicIDIn(f.SubtopicIDs...))
	}
	if !f.From.IsZero() {
		q = q.Where(reviewevent.TimestampGTE(f.From))
	}
	if !f.To.IsZero() {
		q = q.Where(reviewevent.TimestampLTE(f.To))
	}
	rows, err := q.Order(ent.Asc(reviewevent.FieldSequence)).All(ctx)
	if err != nil {
		return nil, wrapErr("query review events", err)
	}

	events := make([]*Event, len(rows))
	for i, row := range rows {
		events[i] = &Event{
			Sequence:     row.Sequence,
			Timestamp:    row.Timestamp,
			UserID:       row.UserID,
			CardID:       row.CardID,
			ContestID:    row.ContestID,
			SubtopicID:   row.SubtopicID,
			Quality:      row.Quality,
			Correct:      row.Correct,
			Repetitions:  row.Repetitions,
			EaseFactor:   row.EaseFactor,
			IntervalDays: row.IntervalDays,
			LatencySecs:  row.LatencySecs,
		}
	}
	return events, nil
}
