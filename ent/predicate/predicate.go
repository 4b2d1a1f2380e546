// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// GraphSnapshot is the predicate function for graphsnapshot builders.
type GraphSnapshot func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// TutorEvent is the predicate function for tutorevent builders.
type TutorEvent func(*sql.Selector)
