// Package network orchestrates the progression graph: it loads a
// session's graph, applies answers, persists the result, and records
// answer events.
package network

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/axon-labs/axon/internal/neurograph"
	"github.com/axon-labs/axon/internal/store"
)

// SaveError reports that an answer was applied but the resulting graph
// could not be persisted. The caller still gets the computed result and
// should surface the persistence failure.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("answer applied but not saved: %v", e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// AnswerResult is the outcome of a persisted answer submission.
type AnswerResult struct {
	Correct   bool
	Completed bool
	Node      neurograph.Node
	Unlocked  []string
	Graph     neurograph.Graph
	Saved     bool
	Sequence  int64
}

// Service coordinates graph state for all sessions. Writes to a session
// are serialized by a per-session mutex; the snapshot sequence check
// catches writers from other processes.
type Service struct {
	snapshots store.SnapshotRepo
	events    store.EventRepo // optional; nil disables event recording
	log       *zap.Logger
	keep      int

	mu       sync.Mutex
	sessions map[string]*sync.Mutex
}

// NewService creates a network service. events may be nil. keep bounds
// how many snapshots each session retains after a save.
func NewService(snapshots store.SnapshotRepo, events store.EventRepo, log *zap.Logger, keep int) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		snapshots: snapshots,
		events:    events,
		log:       log,
		keep:      keep,
		sessions:  make(map[string]*sync.Mutex),
	}
}

func (s *Service) sessionLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.sessions[key]
	if !ok {
		l = &sync.Mutex{}
		s.sessions[key] = l
	}
	return l
}

// State returns the current graph for sessionKey, seeding the curriculum
// on first access.
func (s *Service) State(ctx context.Context, sessionKey string) (neurograph.Graph, error) {
	lock := s.sessionLock(sessionKey)
	lock.Lock()
	defer lock.Unlock()

	snap, err := s.load(ctx, sessionKey)
	if err != nil {
		return neurograph.Graph{}, err
	}
	return snap.Graph, nil
}

// SubmitAnswer applies an answer for sessionKey and persists the result.
// A concurrent writer triggers one reload-and-retry; if persistence
// still fails the computed result is returned alongside a *SaveError.
func (s *Service) SubmitAnswer(ctx context.Context, sessionKey, nodeID string, answerIndex int) (*AnswerResult, error) {
	lock := s.sessionLock(sessionKey)
	lock.Lock()
	defer lock.Unlock()

	snap, err := s.load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	result, saveErr := s.applyAndSave(ctx, sessionKey, snap, nodeID, answerIndex)
	if errors.Is(saveErr, store.ErrSequenceConflict) {
		// Another process advanced the session. Reload and retry once.
		s.log.Warn("snapshot conflict, retrying",
			zap.String("session", sessionKey),
			zap.String("node", nodeID))
		snap, err = s.load(ctx, sessionKey)
		if err != nil {
			return nil, err
		}
		result, saveErr = s.applyAndSave(ctx, sessionKey, snap, nodeID, answerIndex)
	}
	if result == nil {
		return nil, saveErr
	}

	s.recordAnswer(ctx, sessionKey, nodeID, answerIndex, result)

	if saveErr != nil {
		result.Saved = false
		return result, &SaveError{Err: saveErr}
	}

	result.Saved = true
	if err := s.snapshots.Prune(ctx, sessionKey, s.keep); err != nil {
		s.log.Warn("prune failed", zap.String("session", sessionKey), zap.Error(err))
	}
	return result, nil
}

// applyAndSave runs the pure answer transition and attempts to persist
// the new graph at the next sequence. A nil result means the answer
// itself was rejected; a non-nil result with an error means persistence
// failed.
func (s *Service) applyAndSave(ctx context.Context, sessionKey string, snap *store.GraphSnapshot, nodeID string, answerIndex int) (*AnswerResult, error) {
	next, outcome, err := neurograph.SubmitAnswer(snap.Graph, nodeID, answerIndex)
	if err != nil {
		return nil, err
	}

	result := &AnswerResult{
		Correct:   outcome.Correct,
		Completed: outcome.Completed,
		Node:      outcome.Node,
		Unlocked:  unlockedIDs(outcome.Unlocked),
		Graph:     next,
		Sequence:  snap.Sequence + 1,
	}

	// A wrong answer leaves the graph untouched; nothing to persist.
	if !outcome.Correct {
		result.Sequence = snap.Sequence
		result.Saved = true
		return result, nil
	}

	if err := s.snapshots.Save(ctx, sessionKey, snap.Sequence+1, next); err != nil {
		return result, err
	}
	return result, nil
}

// RetrySave re-attempts persisting a result whose original save failed,
// without recomputing the answer. A sequence conflict means another
// writer advanced the session in the meantime; the result is then
// obsolete and the caller should resubmit against fresh state.
func (s *Service) RetrySave(ctx context.Context, sessionKey string, result *AnswerResult) error {
	lock := s.sessionLock(sessionKey)
	lock.Lock()
	defer lock.Unlock()

	if result.Saved {
		return nil
	}

	if err := s.snapshots.Save(ctx, sessionKey, result.Sequence, result.Graph); err != nil {
		if errors.Is(err, store.ErrSequenceConflict) {
			return fmt.Errorf("session advanced since the answer was computed: %w", err)
		}
		return &SaveError{Err: err}
	}

	result.Saved = true
	if err := s.snapshots.Prune(ctx, sessionKey, s.keep); err != nil {
		s.log.Warn("prune failed", zap.String("session", sessionKey), zap.Error(err))
	}
	return nil
}

// Reset discards the session's progress and reseeds the curriculum.
func (s *Service) Reset(ctx context.Context, sessionKey string) (neurograph.Graph, error) {
	lock := s.sessionLock(sessionKey)
	lock.Lock()
	defer lock.Unlock()

	g := neurograph.SeedGraph()

	snap, err := s.snapshots.Load(ctx, sessionKey)
	if err != nil {
		return neurograph.Graph{}, fmt.Errorf("load before reset: %w", err)
	}

	var seq int64 = 1
	if snap != nil {
		seq = snap.Sequence + 1
	}

	err = s.snapshots.Save(ctx, sessionKey, seq, g)
	if errors.Is(err, store.ErrSequenceConflict) {
		// Another process advanced the session. The reset still wins;
		// reload the latest sequence and write past it.
		s.log.Warn("reset conflict, retrying", zap.String("session", sessionKey))
		snap, err = s.snapshots.Load(ctx, sessionKey)
		if err != nil {
			return neurograph.Graph{}, fmt.Errorf("reload before reset retry: %w", err)
		}
		seq = 1
		if snap != nil {
			seq = snap.Sequence + 1
		}
		err = s.snapshots.Save(ctx, sessionKey, seq, g)
	}
	if err != nil {
		return neurograph.Graph{}, fmt.Errorf("save reset graph: %w", err)
	}

	s.log.Info("session reset", zap.String("session", sessionKey), zap.Int64("sequence", seq))

	if err := s.snapshots.Prune(ctx, sessionKey, s.keep); err != nil {
		s.log.Warn("prune failed", zap.String("session", sessionKey), zap.Error(err))
	}
	return g, nil
}

// load returns the session's latest snapshot, seeding it if absent.
func (s *Service) load(ctx context.Context, sessionKey string) (*store.GraphSnapshot, error) {
	snap, err := s.snapshots.Load(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("load session %q: %w", sessionKey, err)
	}
	if snap != nil {
		return snap, nil
	}

	g := neurograph.SeedGraph()
	if err := s.snapshots.Save(ctx, sessionKey, 1, g); err != nil {
		// A concurrent seeder won the race; its snapshot is as good as ours.
		if errors.Is(err, store.ErrSequenceConflict) {
			return s.snapshots.Load(ctx, sessionKey)
		}
		return nil, fmt.Errorf("seed session %q: %w", sessionKey, err)
	}

	s.log.Info("session seeded", zap.String("session", sessionKey))
	return &store.GraphSnapshot{SessionKey: sessionKey, Sequence: 1, Graph: g}, nil
}

// recordAnswer appends an answer event, best effort.
func (s *Service) recordAnswer(ctx context.Context, sessionKey, nodeID string, answerIndex int, result *AnswerResult) {
	if s.events == nil {
		return
	}

	// The post-transition cursor points past the answered question on a
	// correct answer and at it on a wrong one.
	questionID := ""
	if result.Correct {
		if i := result.Node.CurrentQuestionIndex; i > 0 && i <= len(result.Node.Questions) {
			questionID = result.Node.Questions[i-1].ID
		}
	} else if q, ok := result.Node.ActiveQuestion(); ok {
		questionID = q.ID
	}

	err := s.events.AppendAnswer(ctx, store.AnswerEventData{
		SessionKey:    sessionKey,
		NodeID:        nodeID,
		QuestionID:    questionID,
		AnswerIndex:   answerIndex,
		Correct:       result.Correct,
		Completed:     result.Completed,
		UnlockedCount: len(result.Unlocked),
	})
	if err != nil {
		s.log.Warn("answer event not recorded", zap.String("session", sessionKey), zap.Error(err))
	}
}

func unlockedIDs(nodes []neurograph.Node) []string {
	if len(nodes) == 0 {
		return nil
	}
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}
