package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GraphSnapshot stores one serialized progression graph per session key.
// Snapshots are append-only: each save writes the next sequence number for
// its session, and the unique (session_key, sequence) index turns a lost
// concurrent write into a constraint violation instead of a silent
// overwrite.
type GraphSnapshot struct {
	ent.Schema
}

func (GraphSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_key").
			NotEmpty().
			Comment("Session this snapshot belongs to"),
		field.Int64("sequence").
			Comment("Per-session snapshot sequence, starts at 1"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the snapshot was taken"),
		field.JSON("data", map[string]any{}).
			Comment("Full graph state as JSON"),
	}
}

func (GraphSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_key", "sequence").Unique(),
		index.Fields("session_key"),
	}
}
