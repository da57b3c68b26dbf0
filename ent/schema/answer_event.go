package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one evaluated answer within a lesson.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("user_id").
			NotEmpty().
			Comment("Learner the answer belongs to"),
		field.String("topic").
			NotEmpty().
			Comment("Methodology topic of the question"),
		field.Int("difficulty").
			Comment("Difficulty tier the question was issued at"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("reference_answer").
			NotEmpty().
			Comment("Reference answer the evaluation scored against"),
		field.String("user_answer").
			NotEmpty().
			Comment("Free-text answer the learner submitted"),
		field.Float("score").
			Comment("Evaluation score in [0,1]"),
		field.Bool("passed").
			Comment("score >= pass threshold"),
		field.String("rationale").
			Default("").
			Comment("Evaluator rationale shown as feedback"),
		field.JSON("supporting_chunks", []string{}).
			Optional().
			Comment("IDs of corpus chunks the question was grounded in"),
		field.JSON("matched_chunks", []string{}).
			Optional().
			Comment("IDs of corpus chunks the evaluator matched the answer to"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id", "topic"),
		index.Fields("passed"),
	}
}
