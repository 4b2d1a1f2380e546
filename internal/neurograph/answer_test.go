package neurograph

import (
	"errors"
	"testing"
)

// twoPrereqGraph builds a minimal graph where "target" is unlocked only
// when both "a" and "b" are dominated.
func twoPrereqGraph() Graph {
	q := func(id string) []Question {
		return []Question{{ID: id + "-1", Prompt: "?", Options: []string{"x", "y"}, CorrectIndex: 0}}
	}
	return Graph{Nodes: []Node{
		{ID: "a", Label: "A", Status: StatusAvailable, Unlocks: []string{"target"}, Questions: q("a")},
		{ID: "b", Label: "B", Status: StatusAvailable, Unlocks: []string{"target"}, Questions: q("b")},
		{ID: "target", Label: "T", Status: StatusBlocked, Unlocks: []string{}, Questions: q("target")},
	}}
}

// dominate answers every remaining question of a node correctly and
// returns the final graph and outcome.
func dominate(t *testing.T, g Graph, nodeID string) (Graph, Outcome) {
	t.Helper()
	var out Outcome
	for {
		n := g.Node(nodeID)
		q, ok := n.ActiveQuestion()
		if !ok {
			t.Fatalf("node %q ran out of questions before completing", nodeID)
		}
		var err error
		g, out, err = SubmitAnswer(g, nodeID, q.CorrectIndex)
		if err != nil {
			t.Fatalf("submit answer on %q: %v", nodeID, err)
		}
		if out.Completed {
			return g, out
		}
	}
}

func TestSubmitAnswer_NodeNotFound(t *testing.T) {
	g := SeedGraph()
	_, _, err := SubmitAnswer(g, "nonexistent", 0)
	if !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("got %v, want ErrNodeNotFound", err)
	}
}

func TestSubmitAnswer_BlockedNodeRejected(t *testing.T) {
	g := SeedGraph()
	_, _, err := SubmitAnswer(g, "data-types", 0)
	if !errors.Is(err, ErrNodeLocked) {
		t.Fatalf("got %v, want ErrNodeLocked", err)
	}
}

func TestSubmitAnswer_NoActiveQuestion(t *testing.T) {
	g := Graph{Nodes: []Node{{
		ID: "empty", Status: StatusAvailable, Questions: nil,
	}}}
	_, _, err := SubmitAnswer(g, "empty", 0)
	if !errors.Is(err, ErrNoActiveQuestion) {
		t.Fatalf("empty questions: got %v, want ErrNoActiveQuestion", err)
	}

	g = Graph{Nodes: []Node{{
		ID:     "done",
		Status: StatusInProgress,
		Questions: []Question{
			{ID: "q1", Prompt: "?", Options: []string{"a"}, CorrectIndex: 0},
		},
		CurrentQuestionIndex: 1,
	}}}
	_, _, err = SubmitAnswer(g, "done", 0)
	if !errors.Is(err, ErrNoActiveQuestion) {
		t.Fatalf("exhausted cursor: got %v, want ErrNoActiveQuestion", err)
	}
}

func TestSubmitAnswer_WrongAnswerIsIdempotent(t *testing.T) {
	g := SeedGraph()
	wrong := (g.Node("variables").Questions[0].CorrectIndex + 1) % 4

	for i := range 3 {
		next, out, err := SubmitAnswer(g, "variables", wrong)
		if err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
		if out.Correct || out.Completed {
			t.Fatalf("attempt %d: wrong answer reported correct=%v completed=%v", i, out.Correct, out.Completed)
		}
		if len(out.Unlocked) != 0 {
			t.Fatalf("attempt %d: wrong answer unlocked %d nodes", i, len(out.Unlocked))
		}

		n := next.Node("variables")
		if n.Progress != 0 || n.CurrentQuestionIndex != 0 || n.Status != StatusAvailable {
			t.Fatalf("attempt %d: wrong answer mutated node: progress=%v cursor=%d status=%s",
				i, n.Progress, n.CurrentQuestionIndex, n.Status)
		}
		g = next
	}
}

func TestSubmitAnswer_DoesNotMutateInput(t *testing.T) {
	g := SeedGraph()
	q := g.Node("variables").Questions[0]

	_, _, err := SubmitAnswer(g, "variables", q.CorrectIndex)
	if err != nil {
		t.Fatal(err)
	}

	n := g.Node("variables")
	if n.Progress != 0 || n.CurrentQuestionIndex != 0 {
		t.Fatalf("input graph was mutated: progress=%v cursor=%d", n.Progress, n.CurrentQuestionIndex)
	}
}

func TestSubmitAnswer_MonotonicProgress(t *testing.T) {
	g := SeedGraph()
	prev := 0.0

	for {
		n := g.Node("variables")
		q, ok := n.ActiveQuestion()
		if !ok {
			break
		}
		var err error
		g, _, err = SubmitAnswer(g, "variables", q.CorrectIndex)
		if err != nil {
			t.Fatal(err)
		}
		cur := g.Node("variables").Progress
		if cur < prev {
			t.Fatalf("progress decreased: %v -> %v", prev, cur)
		}
		if cur > 100 {
			t.Fatalf("progress exceeded 100: %v", cur)
		}
		prev = cur
	}
}

func TestSubmitAnswer_ExactCompletion(t *testing.T) {
	// Three questions means per-answer increments of 100/3; completion
	// must still land on exactly 100, and not before the last answer.
	g := SeedGraph()
	n := g.Node("conditionals")
	total := len(n.Questions)

	for i := range total {
		q, _ := g.Node("conditionals").ActiveQuestion()
		var out Outcome
		var err error
		g, out, err = SubmitAnswer(g, "conditionals", q.CorrectIndex)
		if err != nil {
			t.Fatal(err)
		}

		cur := g.Node("conditionals")
		if i < total-1 {
			if cur.Progress >= 100 || cur.Status == StatusDominated || out.Completed {
				t.Fatalf("answer %d/%d completed early: progress=%v status=%s", i+1, total, cur.Progress, cur.Status)
			}
			if cur.Status != StatusInProgress {
				t.Fatalf("answer %d/%d: status %s, want in_progress", i+1, total, cur.Status)
			}
		} else {
			if cur.Progress != 100 {
				t.Fatalf("final answer: progress %v, want exactly 100", cur.Progress)
			}
			if cur.Status != StatusDominated || !out.Completed {
				t.Fatalf("final answer: status=%s completed=%v", cur.Status, out.Completed)
			}
		}
	}
}

func TestSubmitAnswer_VariablesScenario(t *testing.T) {
	// Node "variables" has 5 questions; 5 correct answers yield
	// progress=100, dominated, and its sole unlock becomes available.
	g := SeedGraph()
	if got := len(g.Node("variables").Questions); got != 5 {
		t.Fatalf("variables has %d questions, want 5", got)
	}

	g, out := dominate(t, g, "variables")

	n := g.Node("variables")
	if n.Progress != 100 || n.Status != StatusDominated {
		t.Fatalf("progress=%v status=%s, want 100/dominated", n.Progress, n.Status)
	}

	if len(out.Unlocked) != 1 || out.Unlocked[0].ID != "data-types" {
		t.Fatalf("unlocked = %v, want [data-types]", unlockedIDs(out.Unlocked))
	}
	if g.Node("data-types").Status != StatusAvailable {
		t.Fatalf("data-types status = %s, want available", g.Node("data-types").Status)
	}
}

func TestUnlockGating_BothPrerequisitesRequired(t *testing.T) {
	orders := [][2]string{{"a", "b"}, {"b", "a"}}

	for _, order := range orders {
		g := twoPrereqGraph()

		g, out := dominate(t, g, order[0])
		if len(out.Unlocked) != 0 {
			t.Fatalf("completing %s alone unlocked %v", order[0], unlockedIDs(out.Unlocked))
		}
		if g.Node("target").Status != StatusBlocked {
			t.Fatalf("target unblocked after only %s", order[0])
		}

		g, out = dominate(t, g, order[1])
		if len(out.Unlocked) != 1 || out.Unlocked[0].ID != "target" {
			t.Fatalf("completing %s then %s: unlocked %v, want [target]", order[0], order[1], unlockedIDs(out.Unlocked))
		}
		if g.Node("target").Status != StatusAvailable {
			t.Fatalf("target status = %s, want available", g.Node("target").Status)
		}
	}
}

func TestUnlockPropagation_SkipsNonBlockedTargets(t *testing.T) {
	g := twoPrereqGraph()
	g.Nodes[2].Status = StatusInProgress
	g.Nodes[2].Progress = 50

	g, out := dominate(t, g, "a")
	_, out2 := dominate(t, g, "b")

	if len(out.Unlocked)+len(out2.Unlocked) != 0 {
		t.Fatalf("in-progress target reported as newly unlocked")
	}
}

func TestUnlockPropagation_InstantiatesTemplate(t *testing.T) {
	g := SeedGraph()
	if g.Node("closures") != nil {
		t.Fatal("closures should not exist in the seed graph")
	}

	// Walk the chain up to scope and return.
	for _, id := range []string{"variables", "data-types", "operators", "expressions", "functions", "parameters"} {
		g, _ = dominate(t, g, id)
	}

	// Completing return instantiates closures from its template, still
	// blocked because scope is not yet dominated.
	var out Outcome
	g, out = dominate(t, g, "return")
	if len(out.Unlocked) != 1 || out.Unlocked[0].ID != "closures" {
		t.Fatalf("completing return unlocked %v, want [closures]", unlockedIDs(out.Unlocked))
	}
	closures := g.Node("closures")
	if closures == nil {
		t.Fatal("closures not instantiated")
	}
	if closures.Status != StatusBlocked {
		t.Fatalf("closures status = %s, want blocked (scope not dominated)", closures.Status)
	}

	// Completing scope flips the instantiated node to available.
	g, out = dominate(t, g, "scope")
	if len(out.Unlocked) != 1 || out.Unlocked[0].ID != "closures" {
		t.Fatalf("completing scope unlocked %v, want [closures]", unlockedIDs(out.Unlocked))
	}
	if g.Node("closures").Status != StatusAvailable {
		t.Fatalf("closures status = %s, want available", g.Node("closures").Status)
	}
}

func unlockedIDs(nodes []Node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}
