package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProficiencyEvent records every proficiency update, including the
// level movements triggered by streaks. The current state lives in
// snapshots; this log exists for audit and stats.
type ProficiencyEvent struct {
	ent.Schema
}

func (ProficiencyEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ProficiencyEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("topic").
			NotEmpty(),
		field.Bool("passed").
			Comment("Whether the triggering answer passed"),
		field.Int("level_before"),
		field.Int("level_after"),
		field.Int("consecutive_correct").
			Comment("Streak counter after the update"),
		field.Int("consecutive_incorrect").
			Comment("Streak counter after the update"),
	}
}

func (ProficiencyEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic"),
	}
}
