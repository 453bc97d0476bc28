package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subtopic groups cards within a topic.
type Subtopic struct {
	ent.Schema
}

func (Subtopic) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("topic_id").
			NotEmpty(),
		field.String("name").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Subtopic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
	}
}
