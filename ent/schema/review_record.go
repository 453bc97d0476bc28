package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewRecord holds the mutable scheduling state for one (user, card)
// pair. Mutated exclusively by review submission, guarded by the version
// column: updates must name the version they read, and a mismatch means
// a concurrent writer won.
type ReviewRecord struct {
	ent.Schema
}

func (ReviewRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("card_id").
			NotEmpty(),
		field.String("contest_id").
			NotEmpty(),
		field.String("subtopic_id").
			NotEmpty(),
		field.Int("repetitions").
			Default(0).
			Min(0),
		field.Float("ease_factor").
			Default(2.5),
		field.Int("interval_days").
			Default(0),
		field.Time("next_due_at").
			Optional().
			Nillable().
			Comment("Nil until first review; a nil record is always due"),
		field.String("status").
			Default("new").
			Comment("new, learning, review, or graduated"),
		field.Int("correct_streak").
			Default(0),
		field.Int("incorrect_streak").
			Default(0),
		field.Int("total_correct").
			Default(0),
		field.Int("total_incorrect").
			Default(0),
		field.Time("last_reviewed_at").
			Optional().
			Nillable(),
		field.Int64("version").
			Default(1).
			Comment("Optimistic concurrency stamp"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ReviewRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "card_id").Unique(),
		index.Fields("user_id", "next_due_at"),
		index.Fields("user_id", "contest_id"),
		index.Fields("user_id", "subtopic_id"),
		index.Fields("user_id", "status"),
	}
}
