// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_key", Type: field.TypeString},
		{Name: "node_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "answer_index", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "completed", Type: field.TypeBool},
		{Name: "unlocked_count", Type: field.TypeInt, Default: 0},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_key",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_node_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[7]},
			},
		},
	}
	// GraphSnapshotsColumns holds the columns for the "graph_snapshots" table.
	GraphSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_key", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// GraphSnapshotsTable holds the schema information for the "graph_snapshots" table.
	GraphSnapshotsTable = &schema.Table{
		Name:       "graph_snapshots",
		Columns:    GraphSnapshotsColumns,
		PrimaryKey: []*schema.Column{GraphSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "graphsnapshot_session_key_sequence",
				Unique:  true,
				Columns: []*schema.Column{GraphSnapshotsColumns[1], GraphSnapshotsColumns[2]},
			},
			{
				Name:    "graphsnapshot_session_key",
				Unique:  false,
				Columns: []*schema.Column{GraphSnapshotsColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// TutorEventsColumns holds the columns for the "tutor_events" table.
	TutorEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "kind", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "question_text", Type: field.TypeString},
		{Name: "cache_hit", Type: field.TypeBool},
	}
	// TutorEventsTable holds the schema information for the "tutor_events" table.
	TutorEventsTable = &schema.Table{
		Name:       "tutor_events",
		Columns:    TutorEventsColumns,
		PrimaryKey: []*schema.Column{TutorEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tutorevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TutorEventsColumns[1]},
			},
			{
				Name:    "tutorevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TutorEventsColumns[2]},
			},
			{
				Name:    "tutorevent_kind",
				Unique:  false,
				Columns: []*schema.Column{TutorEventsColumns[3]},
			},
			{
				Name:    "tutorevent_cache_hit",
				Unique:  false,
				Columns: []*schema.Column{TutorEventsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		GraphSnapshotsTable,
		LlmRequestEventsTable,
		TutorEventsTable,
	}
)

func init() {
}
