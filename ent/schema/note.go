package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Note is a user-captured knowledge snippet. Append-only, never edited.
type Note struct {
	ent.Schema
}

func (Note) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			NotEmpty(),
		field.String("user_id").
			NotEmpty().
			Comment("Owning user"),
		field.Text("text").
			NotEmpty(),
		field.String("folder").
			Default("Knowledge Vault"),
		field.Time("captured_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Note) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
