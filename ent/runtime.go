// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/axon-labs/axon/ent/answerevent"
	"github.com/axon-labs/axon/ent/graphsnapshot"
	"github.com/axon-labs/axon/ent/llmrequestevent"
	"github.com/axon-labs/axon/ent/schema"
	"github.com/axon-labs/axon/ent/tutorevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionKey is the schema descriptor for session_key field.
	answereventDescSessionKey := answereventFields[0].Descriptor()
	// answerevent.SessionKeyValidator is a validator for the "session_key" field. It is called by the builders before save.
	answerevent.SessionKeyValidator = answereventDescSessionKey.Validators[0].(func(string) error)
	// answereventDescNodeID is the schema descriptor for node_id field.
	answereventDescNodeID := answereventFields[1].Descriptor()
	// answerevent.NodeIDValidator is a validator for the "node_id" field. It is called by the builders before save.
	answerevent.NodeIDValidator = answereventDescNodeID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescUnlockedCount is the schema descriptor for unlocked_count field.
	answereventDescUnlockedCount := answereventFields[6].Descriptor()
	// answerevent.DefaultUnlockedCount holds the default value on creation for the unlocked_count field.
	answerevent.DefaultUnlockedCount = answereventDescUnlockedCount.Default.(int)
	graphsnapshotFields := schema.GraphSnapshot{}.Fields()
	_ = graphsnapshotFields
	// graphsnapshotDescSessionKey is the schema descriptor for session_key field.
	graphsnapshotDescSessionKey := graphsnapshotFields[0].Descriptor()
	// graphsnapshot.SessionKeyValidator is a validator for the "session_key" field. It is called by the builders before save.
	graphsnapshot.SessionKeyValidator = graphsnapshotDescSessionKey.Validators[0].(func(string) error)
	// graphsnapshotDescTimestamp is the schema descriptor for timestamp field.
	graphsnapshotDescTimestamp := graphsnapshotFields[2].Descriptor()
	// graphsnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	graphsnapshot.DefaultTimestamp = graphsnapshotDescTimestamp.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	tutoreventMixin := schema.TutorEvent{}.Mixin()
	tutoreventMixinFields0 := tutoreventMixin[0].Fields()
	_ = tutoreventMixinFields0
	tutoreventFields := schema.TutorEvent{}.Fields()
	_ = tutoreventFields
	// tutoreventDescTimestamp is the schema descriptor for timestamp field.
	tutoreventDescTimestamp := tutoreventMixinFields0[1].Descriptor()
	// tutorevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	tutorevent.DefaultTimestamp = tutoreventDescTimestamp.Default.(func() time.Time)
	// tutoreventDescKind is the schema descriptor for kind field.
	tutoreventDescKind := tutoreventFields[0].Descriptor()
	// tutorevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	tutorevent.KindValidator = tutoreventDescKind.Validators[0].(func(string) error)
	// tutoreventDescTopic is the schema descriptor for topic field.
	tutoreventDescTopic := tutoreventFields[1].Descriptor()
	// tutorevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	tutorevent.TopicValidator = tutoreventDescTopic.Validators[0].(func(string) error)
	// tutoreventDescQuestionText is the schema descriptor for question_text field.
	tutoreventDescQuestionText := tutoreventFields[2].Descriptor()
	// tutorevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	tutorevent.QuestionTextValidator = tutoreventDescQuestionText.Validators[0].(func(string) error)
}
