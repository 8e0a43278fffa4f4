package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is a registered learner account.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			NotEmpty().
			Comment("UUID assigned at registration"),
		field.String("name").
			NotEmpty(),
		field.String("email").
			Unique().
			NotEmpty().
			Comment("Normalized (trimmed, lower-cased) at registration"),
		field.String("password_hash").
			Sensitive().
			NotEmpty().
			Comment("bcrypt hash of the credential"),
		field.Int("logical").Default(0),
		field.Int("computational").Default(0),
		field.Int("carelessness").Default(0),
		field.Int("strategy").Default(0),
		field.Int("attention").Default(0),
		field.JSON("solved_task_ids", []string{}).
			Optional(),
		field.JSON("failed_task_ids", []string{}).
			Optional(),
		field.Bool("placement_completed").
			Default(false),
		field.String("assigned_level").
			Default("School"),
		field.Int("assigned_grade").
			Default(9),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
	}
}
