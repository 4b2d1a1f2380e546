package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TutorEvent records a hint or explanation served to the learner,
// including whether it came from the cache or a live model call.
type TutorEvent struct {
	ent.Schema
}

func (TutorEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TutorEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").
			NotEmpty().
			Comment("hint or explain"),
		field.String("topic").
			NotEmpty().
			Comment("Node label the request was about"),
		field.String("question_text").
			NotEmpty().
			Comment("The question the learner asked about"),
		field.Bool("cache_hit").
			Comment("Whether the response was served from cache"),
	}
}

func (TutorEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
		index.Fields("cache_hit"),
	}
}
