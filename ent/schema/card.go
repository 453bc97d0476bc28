package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Card is immutable study content. Created by a content author or the
// card generator, never mutated by the scheduling engine.
type Card struct {
	ent.Schema
}

func (Card) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("subtopic_id").
			NotEmpty(),
		field.String("front").
			NotEmpty().
			Comment("Question side"),
		field.String("back").
			NotEmpty().
			Comment("Answer side"),
		field.String("difficulty").
			Optional().
			Comment("Optional author-assigned tag: easy, medium, or hard"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Card) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subtopic_id"),
	}
}
