package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records a single review submission. The event log is the
// source of truth for all performance analytics; the ReviewRecord table
// is only a projection of it.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("card_id").
			NotEmpty(),
		field.String("contest_id").
			NotEmpty().
			Comment("Contest the card belongs to, denormalized for scoping"),
		field.String("subtopic_id").
			NotEmpty().
			Comment("Subtopic the card belongs to, denormalized for scoping"),
		field.Int("quality").
			Min(0).
			Max(5).
			Comment("Self-assessed recall score, 0-5"),
		field.Bool("correct").
			Comment("quality >= 3"),
		field.Int("repetitions").
			Comment("Consecutive-correct count after the update"),
		field.Float("ease_factor").
			Comment("Ease factor after the update"),
		field.Int("interval_days").
			Comment("Interval in days after the update"),
		field.Float("latency_secs").
			Comment("Response time in seconds, defaulted if unmeasured"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "card_id"),
		index.Fields("user_id", "contest_id"),
		index.Fields("user_id", "subtopic_id"),
	}
}
