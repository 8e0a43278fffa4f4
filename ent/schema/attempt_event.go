package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records the outcome of one task attempt: the diagnostic
// the model produced and how the attempt unfolded.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("task_id").NotEmpty(),
		field.String("error_type").NotEmpty().
			Comment("Carelessness, Wrong Strategy, Logical, Computational, or Unknown"),
		field.String("logic_break_point").Default(""),
		field.String("trap_task").Default(""),
		field.String("advice").Default(""),
		field.Int("step_count").Default(0),
		field.Int64("total_ms").Default(0).
			Comment("Wall-clock time from task open to submit"),
		field.Bool("fallback").Default(false).
			Comment("True when the diagnostic is the canned fallback, not a model result"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("task_id"),
	}
}
