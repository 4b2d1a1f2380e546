package network

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/axon-labs/axon/internal/neurograph"
	"github.com/axon-labs/axon/internal/store"
)

// memSnapshots is an in-memory SnapshotRepo with the same conflict
// semantics as the SQLite-backed one.
type memSnapshots struct {
	mu       sync.Mutex
	rows     map[string]map[int64]neurograph.Graph
	saves    int
	saveHook func(sessionKey string, sequence int64) error
}

func newMemSnapshots() *memSnapshots {
	return &memSnapshots{rows: make(map[string]map[int64]neurograph.Graph)}
}

func (m *memSnapshots) Load(_ context.Context, sessionKey string) (*store.GraphSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var best int64
	for seq := range m.rows[sessionKey] {
		if seq > best {
			best = seq
		}
	}
	if best == 0 {
		return nil, nil
	}
	return &store.GraphSnapshot{
		SessionKey: sessionKey,
		Sequence:   best,
		Graph:      m.rows[sessionKey][best].Clone(),
	}, nil
}

func (m *memSnapshots) Save(_ context.Context, sessionKey string, sequence int64, g neurograph.Graph) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveHook != nil {
		if err := m.saveHook(sessionKey, sequence); err != nil {
			return err
		}
	}

	if _, ok := m.rows[sessionKey][sequence]; ok {
		return store.ErrSequenceConflict
	}
	if m.rows[sessionKey] == nil {
		m.rows[sessionKey] = make(map[int64]neurograph.Graph)
	}
	m.rows[sessionKey][sequence] = g.Clone()
	m.saves++
	return nil
}

func (m *memSnapshots) Prune(_ context.Context, sessionKey string, keep int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session := m.rows[sessionKey]
	for len(session) > keep {
		var oldest int64
		for seq := range session {
			if oldest == 0 || seq < oldest {
				oldest = seq
			}
		}
		delete(session, oldest)
	}
	return nil
}

// memEvents records appended answer events.
type memEvents struct {
	answers []store.AnswerEventData
}

func (m *memEvents) AppendAnswer(_ context.Context, d store.AnswerEventData) error {
	m.answers = append(m.answers, d)
	return nil
}
func (m *memEvents) AppendTutor(context.Context, store.TutorEventData) error { return nil }
func (m *memEvents) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}
func (m *memEvents) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}
func (m *memEvents) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) { return nil, nil }
func (m *memEvents) Counts(context.Context) (store.EventCounts, error) {
	return store.EventCounts{}, nil
}

func newTestService(snaps *memSnapshots, events *memEvents) *Service {
	var repo store.EventRepo
	if events != nil {
		repo = events
	}
	return NewService(snaps, repo, nil, 20)
}

func TestState_SeedsOnFirstAccess(t *testing.T) {
	snaps := newMemSnapshots()
	svc := newTestService(snaps, nil)
	ctx := context.Background()

	g, err := svc.State(ctx, "global")
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if len(g.Nodes) != 15 {
		t.Errorf("seeded %d nodes, want 15", len(g.Nodes))
	}
	if snaps.saves != 1 {
		t.Errorf("saves = %d, want 1 (seed)", snaps.saves)
	}

	// Second access reads the stored graph without reseeding.
	if _, err := svc.State(ctx, "global"); err != nil {
		t.Fatalf("second state: %v", err)
	}
	if snaps.saves != 1 {
		t.Errorf("saves = %d after re-read, want 1", snaps.saves)
	}
}

func TestSubmitAnswer_CorrectPersists(t *testing.T) {
	snaps := newMemSnapshots()
	events := &memEvents{}
	svc := newTestService(snaps, events)
	ctx := context.Background()

	res, err := svc.SubmitAnswer(ctx, "global", "variables", 1)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Correct || res.Completed {
		t.Errorf("correct=%v completed=%v, want true false", res.Correct, res.Completed)
	}
	if !res.Saved || res.Sequence != 2 {
		t.Errorf("saved=%v sequence=%d, want true 2", res.Saved, res.Sequence)
	}
	if res.Node.Progress != 20 {
		t.Errorf("progress = %v, want 20", res.Node.Progress)
	}
	if res.Node.Status != neurograph.StatusInProgress {
		t.Errorf("status = %q, want in_progress", res.Node.Status)
	}

	// Progress survives a fresh load.
	g, err := svc.State(ctx, "global")
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if node := g.Node("variables"); node.CurrentQuestionIndex != 1 {
		t.Errorf("cursor = %d, want 1", node.CurrentQuestionIndex)
	}

	if len(events.answers) != 1 {
		t.Fatalf("recorded %d answer events, want 1", len(events.answers))
	}
	ev := events.answers[0]
	if !ev.Correct || ev.QuestionID != "variables-1" || ev.NodeID != "variables" {
		t.Errorf("event = %+v", ev)
	}
}

func TestSubmitAnswer_WrongDoesNotPersist(t *testing.T) {
	snaps := newMemSnapshots()
	events := &memEvents{}
	svc := newTestService(snaps, events)
	ctx := context.Background()

	res, err := svc.SubmitAnswer(ctx, "global", "variables", 0)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Correct {
		t.Error("answer 0 should be wrong")
	}
	if !res.Saved || res.Sequence != 1 {
		t.Errorf("saved=%v sequence=%d, want true 1 (no new snapshot)", res.Saved, res.Sequence)
	}
	if snaps.saves != 1 {
		t.Errorf("saves = %d, want 1 (seed only)", snaps.saves)
	}
	if len(events.answers) != 1 || events.answers[0].Correct {
		t.Errorf("events = %+v, want one incorrect answer", events.answers)
	}
	if events.answers[0].QuestionID != "variables-1" {
		t.Errorf("question id = %q, want variables-1", events.answers[0].QuestionID)
	}
}

func TestSubmitAnswer_DomainErrors(t *testing.T) {
	svc := newTestService(newMemSnapshots(), nil)
	ctx := context.Background()

	_, err := svc.SubmitAnswer(ctx, "global", "nonexistent", 0)
	if !errors.Is(err, neurograph.ErrNodeNotFound) {
		t.Errorf("unknown node: got %v, want ErrNodeNotFound", err)
	}

	_, err = svc.SubmitAnswer(ctx, "global", "data-types", 1)
	if !errors.Is(err, neurograph.ErrNodeLocked) {
		t.Errorf("blocked node: got %v, want ErrNodeLocked", err)
	}
}

func TestSubmitAnswer_ConflictRetriesOnce(t *testing.T) {
	snaps := newMemSnapshots()
	svc := newTestService(snaps, nil)
	ctx := context.Background()

	if _, err := svc.State(ctx, "global"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Simulate an external writer landing sequence 2 first.
	conflicted := false
	snaps.saveHook = func(_ string, sequence int64) error {
		if sequence == 2 && !conflicted {
			conflicted = true
			return store.ErrSequenceConflict
		}
		return nil
	}

	res, err := svc.SubmitAnswer(ctx, "global", "variables", 1)
	if err != nil {
		t.Fatalf("submit after conflict: %v", err)
	}
	if !res.Saved {
		t.Error("retry should have persisted")
	}
	if !conflicted {
		t.Error("conflict hook never fired")
	}
}

func TestSubmitAnswer_SaveFailureStillReturnsResult(t *testing.T) {
	snaps := newMemSnapshots()
	svc := newTestService(snaps, nil)
	ctx := context.Background()

	if _, err := svc.State(ctx, "global"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	boom := errors.New("disk full")
	snaps.saveHook = func(string, int64) error { return boom }

	res, err := svc.SubmitAnswer(ctx, "global", "variables", 1)
	var saveErr *SaveError
	if !errors.As(err, &saveErr) {
		t.Fatalf("got %v, want *SaveError", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("SaveError should wrap the cause, got %v", err)
	}
	if res == nil {
		t.Fatal("result must still be returned")
	}
	if res.Saved {
		t.Error("saved flag must be false")
	}
	if !res.Correct || res.Node.Progress != 20 {
		t.Errorf("computed result lost: %+v", res)
	}
}

func TestRetrySave_PersistsComputedResult(t *testing.T) {
	snaps := newMemSnapshots()
	svc := newTestService(snaps, nil)
	ctx := context.Background()

	if _, err := svc.State(ctx, "global"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	boom := errors.New("disk full")
	snaps.saveHook = func(string, int64) error { return boom }

	res, err := svc.SubmitAnswer(ctx, "global", "variables", 1)
	var saveErr *SaveError
	if !errors.As(err, &saveErr) {
		t.Fatalf("got %v, want *SaveError", err)
	}

	// Storage recovers; the same result saves without recomputation.
	snaps.saveHook = nil
	if err := svc.RetrySave(ctx, "global", res); err != nil {
		t.Fatalf("retry save: %v", err)
	}
	if !res.Saved {
		t.Error("saved flag should flip after a successful retry")
	}

	g, err := svc.State(ctx, "global")
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if node := g.Node("variables"); node.Progress != 20 {
		t.Errorf("persisted progress = %v, want 20", node.Progress)
	}

	// A second retry on an already-saved result is a no-op.
	saves := snaps.saves
	if err := svc.RetrySave(ctx, "global", res); err != nil {
		t.Fatalf("idempotent retry: %v", err)
	}
	if snaps.saves != saves {
		t.Errorf("saves = %d, want %d (no extra write)", snaps.saves, saves)
	}
}

func TestRetrySave_ConflictWhenSessionAdvanced(t *testing.T) {
	snaps := newMemSnapshots()
	svc := newTestService(snaps, nil)
	ctx := context.Background()

	if _, err := svc.State(ctx, "global"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	boom := errors.New("disk full")
	snaps.saveHook = func(string, int64) error { return boom }

	res, err := svc.SubmitAnswer(ctx, "global", "variables", 1)
	var saveErr *SaveError
	if !errors.As(err, &saveErr) {
		t.Fatalf("got %v, want *SaveError", err)
	}

	// Another writer lands the same sequence before the retry.
	snaps.saveHook = nil
	if err := snaps.Save(ctx, "global", res.Sequence, res.Graph); err != nil {
		t.Fatalf("external save: %v", err)
	}

	if err := svc.RetrySave(ctx, "global", res); !errors.Is(err, store.ErrSequenceConflict) {
		t.Errorf("got %v, want ErrSequenceConflict", err)
	}
	if res.Saved {
		t.Error("conflicted retry must not mark the result saved")
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	snaps := newMemSnapshots()
	svc := newTestService(snaps, nil)
	ctx := context.Background()

	if _, err := svc.SubmitAnswer(ctx, "alice", "variables", 1); err != nil {
		t.Fatalf("alice submit: %v", err)
	}

	g, err := svc.State(ctx, "bob")
	if err != nil {
		t.Fatalf("bob state: %v", err)
	}
	if node := g.Node("variables"); node.CurrentQuestionIndex != 0 {
		t.Errorf("bob cursor = %d, want 0", node.CurrentQuestionIndex)
	}
}

func TestReset_RestoresSeed(t *testing.T) {
	snaps := newMemSnapshots()
	svc := newTestService(snaps, nil)
	ctx := context.Background()

	if _, err := svc.SubmitAnswer(ctx, "global", "variables", 1); err != nil {
		t.Fatalf("submit: %v", err)
	}

	g, err := svc.Reset(ctx, "global")
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if node := g.Node("variables"); node.Progress != 0 || node.CurrentQuestionIndex != 0 {
		t.Errorf("reset graph not pristine: %+v", node)
	}

	// The reset state is what a fresh load sees.
	g, err = svc.State(ctx, "global")
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if node := g.Node("variables"); node.Progress != 0 {
		t.Errorf("persisted progress = %v, want 0", node.Progress)
	}
}

func TestReset_ConflictRetriesOnce(t *testing.T) {
	snaps := newMemSnapshots()
	svc := newTestService(snaps, nil)
	ctx := context.Background()

	if _, err := svc.SubmitAnswer(ctx, "global", "variables", 1); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// An external writer lands sequence 3 just before the reset save.
	conflicted := false
	snaps.saveHook = func(_ string, sequence int64) error {
		if sequence == 3 && !conflicted {
			conflicted = true
			return store.ErrSequenceConflict
		}
		return nil
	}

	g, err := svc.Reset(ctx, "global")
	if err != nil {
		t.Fatalf("reset after conflict: %v", err)
	}
	if !conflicted {
		t.Error("conflict hook never fired")
	}
	if node := g.Node("variables"); node.Progress != 0 {
		t.Errorf("reset graph not pristine: progress = %v", node.Progress)
	}

	// The retried reset is what a fresh load sees.
	g, err = svc.State(ctx, "global")
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if node := g.Node("variables"); node.CurrentQuestionIndex != 0 {
		t.Errorf("persisted cursor = %d, want 0", node.CurrentQuestionIndex)
	}
}

func TestCompletionUnlocksDownstream(t *testing.T) {
	snaps := newMemSnapshots()
	svc := newTestService(snaps, nil)
	ctx := context.Background()

	answers := []int{1, 1, 2, 2, 1} // correct indexes of the variables questions
	var last *AnswerResult
	for i, idx := range answers {
		res, err := svc.SubmitAnswer(ctx, "global", "variables", idx)
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		last = res
	}

	if !last.Completed {
		t.Fatal("final answer should complete the node")
	}
	if last.Node.Progress != 100 {
		t.Errorf("progress = %v, want exactly 100", last.Node.Progress)
	}
	if len(last.Unlocked) != 1 || last.Unlocked[0] != "data-types" {
		t.Errorf("unlocked = %v, want [data-types]", last.Unlocked)
	}

	g, err := svc.State(ctx, "global")
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if got := g.Node("data-types").Status; got != neurograph.StatusAvailable {
		t.Errorf("data-types status = %q, want available", got)
	}
}
