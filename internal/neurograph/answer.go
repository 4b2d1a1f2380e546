package neurograph

import (
	"errors"
	"fmt"
)

var (
	// ErrNodeNotFound means the node id is not present in the graph.
	ErrNodeNotFound = errors.New("node not found")

	// ErrNodeLocked means the node exists but is not interactive yet:
	// its prerequisites have not all been dominated.
	ErrNodeLocked = errors.New("node is locked")

	// ErrNoActiveQuestion means the node has no questions, or its cursor
	// is already past the last question.
	ErrNoActiveQuestion = errors.New("node has no active question")
)

// Outcome describes the result of one answer submission.
type Outcome struct {
	// Correct reports whether the submitted index matched the active
	// question. An incorrect answer is a normal outcome, not an error.
	Correct bool

	// Completed is true when this answer drove the node to Dominated.
	Completed bool

	// Node is the post-transition copy of the target node.
	Node Node

	// Unlocked lists nodes that became Available (or were instantiated
	// from a template) because of this answer, in unlock-list order.
	Unlocked []Node
}

// SubmitAnswer is the transition function of the progression graph:
// (graph, nodeID, answerIndex) → (graph', outcome). It never mutates its
// input; on an incorrect answer the returned graph is an unchanged copy
// and the question cursor stays put so the caller may resubmit.
func SubmitAnswer(g Graph, nodeID string, answerIndex int) (Graph, Outcome, error) {
	src := g.Node(nodeID)
	if src == nil {
		return g, Outcome{}, fmt.Errorf("%w: %q", ErrNodeNotFound, nodeID)
	}
	if src.Status == StatusBlocked {
		return g, Outcome{}, fmt.Errorf("%w: %q", ErrNodeLocked, nodeID)
	}

	q, ok := src.ActiveQuestion()
	if !ok {
		return g, Outcome{}, fmt.Errorf("%w: %q", ErrNoActiveQuestion, nodeID)
	}

	if answerIndex != q.CorrectIndex {
		return g, Outcome{Correct: false, Node: src.clone()}, nil
	}

	next := g.Clone()
	node := next.Node(nodeID)

	node.CurrentQuestionIndex++
	node.Progress = min(node.Progress+100.0/float64(len(node.Questions)), 100)
	if node.CurrentQuestionIndex >= len(node.Questions) {
		// Every question answered: land on exactly 100 regardless of
		// rounding in the per-question increment.
		node.Progress = 100
	}

	switch {
	case node.Progress >= 100:
		node.Status = StatusDominated
	case node.Progress > 0:
		node.Status = StatusInProgress
	}

	out := Outcome{Correct: true, Completed: node.Status == StatusDominated}

	if out.Completed {
		out.Unlocked = propagateUnlocks(&next, node.ID)
	}

	out.Node = next.Node(nodeID).clone()
	return next, out, nil
}

// propagateUnlocks runs once per completion event, over the completed
// node's Unlocks list in order. It mutates the graph in place and returns
// copies of the newly unlocked nodes.
func propagateUnlocks(g *Graph, completedID string) []Node {
	completed := g.Node(completedID)
	var unlocked []Node

	for _, targetID := range completed.Unlocks {
		target := g.Node(targetID)

		if target == nil {
			// Lazily instantiated node: consult the template table and
			// append it to the graph if a template exists.
			tmpl, ok := Template(targetID)
			if !ok {
				continue
			}
			if g.allPrerequisitesDominated(targetID) {
				tmpl.Status = StatusAvailable
			}
			g.Nodes = append(g.Nodes, tmpl)
			unlocked = append(unlocked, tmpl.clone())
			continue
		}

		if target.Status != StatusBlocked {
			continue
		}
		if g.allPrerequisitesDominated(targetID) {
			target.Status = StatusAvailable
			unlocked = append(unlocked, target.clone())
		}
	}

	return unlocked
}
