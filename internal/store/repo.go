package store

import (
	"context"
	"errors"
	"time"

	"github.com/axon-labs/axon/internal/neurograph"
)

// ErrSequenceConflict is returned by SnapshotRepo.Save when another
// writer already stored a snapshot with the same sequence for the
// session. The caller should reload the latest snapshot and retry.
var ErrSequenceConflict = errors.New("snapshot sequence conflict")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// GraphSnapshot is a point-in-time capture of one session's graph.
type GraphSnapshot struct {
	ID         int
	SessionKey string
	Sequence   int64
	Timestamp  time.Time
	Graph      neurograph.Graph
}

// SnapshotRepo manages per-session graph snapshots. Snapshots are
// append-only: writers save the next sequence for their session, and a
// duplicate sequence surfaces as ErrSequenceConflict.
type SnapshotRepo interface {
	// Load returns the latest snapshot for sessionKey, or nil if the
	// session has never been saved.
	Load(ctx context.Context, sessionKey string) (*GraphSnapshot, error)

	// Save stores g as the snapshot with the given sequence.
	Save(ctx context.Context, sessionKey string, sequence int64, g neurograph.Graph) error

	// Prune deletes all but the N most recent snapshots of sessionKey.
	Prune(ctx context.Context, sessionKey string, keep int) error
}

// AnswerEventData captures a single answer submission.
type AnswerEventData struct {
	SessionKey    string
	NodeID        string
	QuestionID    string
	AnswerIndex   int
	Correct       bool
	Completed     bool
	UnlockedCount int
}

// TutorEventData captures a hint or explanation served to the learner.
type TutorEventData struct {
	Kind         string // "hint" or "explain"
	Topic        string
	QuestionText string
	CacheHit     bool
}

// LLMRequestEventData captures the data for a single model API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored model request event.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventCounts aggregates event totals for the stats view.
type EventCounts struct {
	Answers        int
	CorrectAnswers int
	TutorResponses int
	CacheHits      int
	LLMRequests    int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnswer records an answer submission event.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendTutor records a served hint or explanation.
	AppendTutor(ctx context.Context, data TutorEventData) error

	// AppendLLMRequest records a model API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns model request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// Counts aggregates event totals across all types.
	Counts(ctx context.Context) (EventCounts, error)
}
