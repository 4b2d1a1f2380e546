package store

import (
	"context"
	"errors"
	"testing"

	"github.com/axon-labs/axon/internal/neurograph"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testGraph(progress float64) neurograph.Graph {
	return neurograph.Graph{
		Nodes: []neurograph.Node{
			{
				ID:       "variables",
				Label:    "Variables",
				Status:   neurograph.StatusInProgress,
				Progress: progress,
				Unlocks:  []string{"data-types"},
				Questions: []neurograph.Question{
					{ID: "v1", Prompt: "What declares a variable?", Options: []string{"let", "if", "for", "class"}, CorrectIndex: 0},
				},
			},
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Load(ctx, "global")
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	if err := repo.Save(ctx, "global", 1, testGraph(0)); err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Load(ctx, "global")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 1 {
		t.Errorf("sequence = %d, want 1", snap.Sequence)
	}
	if len(snap.Graph.Nodes) != 1 || snap.Graph.Nodes[0].ID != "variables" {
		t.Errorf("graph did not round-trip: %+v", snap.Graph)
	}
	if snap.Graph.Nodes[0].Status != neurograph.StatusInProgress {
		t.Errorf("status = %q, want %q", snap.Graph.Nodes[0].Status, neurograph.StatusInProgress)
	}
}

func TestSnapshotLoadReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		if err := repo.Save(ctx, "global", int64(i), testGraph(float64(i*20))); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Load(ctx, "global")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Graph.Nodes[0].Progress != 60 {
		t.Errorf("progress = %v, want 60", snap.Graph.Nodes[0].Progress)
	}
}

func TestSnapshotSequenceConflict(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, "global", 1, testGraph(0)); err != nil {
		t.Fatalf("first save: %v", err)
	}

	err := repo.Save(ctx, "global", 1, testGraph(20))
	if !errors.Is(err, ErrSequenceConflict) {
		t.Fatalf("duplicate sequence: got %v, want ErrSequenceConflict", err)
	}

	// The losing write must not have clobbered the winner.
	snap, err := repo.Load(ctx, "global")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap.Graph.Nodes[0].Progress != 0 {
		t.Errorf("progress = %v, want 0 (first write wins)", snap.Graph.Nodes[0].Progress)
	}
}

func TestSnapshotSessionsIndependent(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, "alice", 1, testGraph(20)); err != nil {
		t.Fatalf("save alice: %v", err)
	}
	// Same sequence under a different session key is not a conflict.
	if err := repo.Save(ctx, "bob", 1, testGraph(40)); err != nil {
		t.Fatalf("save bob: %v", err)
	}

	alice, err := repo.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("load alice: %v", err)
	}
	if alice.Graph.Nodes[0].Progress != 20 {
		t.Errorf("alice progress = %v, want 20", alice.Graph.Nodes[0].Progress)
	}

	bob, err := repo.Load(ctx, "bob")
	if err != nil {
		t.Fatalf("load bob: %v", err)
	}
	if bob.Graph.Nodes[0].Progress != 40 {
		t.Errorf("bob progress = %v, want 40", bob.Graph.Nodes[0].Progress)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		if err := repo.Save(ctx, "global", int64(i), testGraph(0)); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	if err := repo.Save(ctx, "other", 1, testGraph(0)); err != nil {
		t.Fatalf("save other: %v", err)
	}

	if err := repo.Prune(ctx, "global", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().GraphSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	// 5 kept for global plus the untouched other session.
	if count != 6 {
		t.Errorf("remaining snapshots = %d, want 6", count)
	}

	snap, err := repo.Load(ctx, "global")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 1; i <= 2; i++ {
		if err := repo.Save(ctx, "global", int64(i), testGraph(0)); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, "global", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().GraphSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestEventAppendAndCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionKey: "global", NodeID: "variables", QuestionID: "v1", AnswerIndex: 0, Correct: true},
		{SessionKey: "global", NodeID: "variables", QuestionID: "v2", AnswerIndex: 2, Correct: false},
	}
	for i, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	tutors := []TutorEventData{
		{Kind: "hint", Topic: "Variables", QuestionText: "What declares a variable?", CacheHit: false},
		{Kind: "hint", Topic: "Variables", QuestionText: "What declares a variable?", CacheHit: true},
		{Kind: "explain", Topic: "Loops", QuestionText: "Which loop runs at least once?", CacheHit: false},
	}
	for i, te := range tutors {
		if err := repo.AppendTutor(ctx, te); err != nil {
			t.Fatalf("append tutor %d: %v", i, err)
		}
	}

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "hint",
		InputTokens: 50, OutputTokens: 30, LatencyMs: 120, Success: true,
	}); err != nil {
		t.Fatalf("append model request: %v", err)
	}

	counts, err := repo.Counts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	want := EventCounts{Answers: 2, CorrectAnswers: 1, TutorResponses: 3, CacheHits: 1, LLMRequests: 1}
	if counts != want {
		t.Errorf("counts = %+v, want %+v", counts, want)
	}
}

func TestQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	purposes := []string{"hint", "explain", "hint"}
	for _, p := range purposes {
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: p, Success: true,
		}); err != nil {
			t.Fatalf("append %s: %v", p, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Newest first.
	if events[0].Sequence < events[1].Sequence {
		t.Errorf("events not ordered newest first: %d then %d", events[0].Sequence, events[1].Sequence)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ID != events[0].ID {
		t.Fatalf("get returned %+v, want event %d", got, events[0].ID)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}
}
