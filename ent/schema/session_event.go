package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records lesson lifecycle events (start/complete/abandon).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a lesson"),
		field.String("user_id").
			NotEmpty().
			Comment("Learner the lesson belongs to"),
		field.String("action").
			NotEmpty().
			Comment("start, complete, or abandon"),
		field.String("topic").
			NotEmpty().
			Comment("Topic the lesson covers"),
		field.Int("questions_answered").
			Default(0).
			Comment("Total questions answered (complete/abandon only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total passing answers (complete/abandon only)"),
		field.Float("success_rate").
			Default(0).
			Comment("Percentage of passing answers (complete only)"),
		field.Bool("passed").
			Default(false).
			Comment("success_rate >= minimum lesson score (complete only)"),
		field.Int("final_difficulty").
			Default(0).
			Comment("Proficiency level when the lesson ended"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id"),
		index.Fields("action"),
	}
}
