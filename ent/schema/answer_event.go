package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answer submission against a node.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_key").
			NotEmpty().
			Comment("Session the answer was submitted in"),
		field.String("node_id").
			NotEmpty().
			Comment("Node the question belongs to"),
		field.String("question_id").
			NotEmpty().
			Comment("The question that was answered"),
		field.Int("answer_index").
			Comment("Option index the learner chose"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Bool("completed").
			Comment("Whether this answer completed the node"),
		field.Int("unlocked_count").
			Default(0).
			Comment("Number of nodes unlocked by this answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_key"),
		index.Fields("node_id"),
		index.Fields("correct"),
	}
}
