package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Contest is the top of the content hierarchy: Contest -> Topic ->
// Subtopic -> Card. The scheduling engine reads this hierarchy to scope
// queries and never mutates it.
type Contest struct {
	ent.Schema
}

func (Contest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
