package neurograph

import "slices"

// Status is a node's lifecycle state. Transitions run strictly forward
// (Blocked → Available → InProgress → Dominated); the only way back is a
// full graph reset.
type Status string

const (
	StatusBlocked    Status = "blocked"
	StatusAvailable  Status = "available"
	StatusInProgress Status = "in_progress"
	StatusDominated  Status = "dominated"
)

// Interactive reports whether a node in this status accepts answers.
// Available and InProgress are treated identically for answer acceptance;
// they differ only for display.
func (s Status) Interactive() bool {
	return s == StatusAvailable || s == StatusInProgress
}

// Question is a single multiple-choice question. CorrectIndex must be a
// valid index into Options. Explanation is display text shown after
// answering; the engine never reads it.
type Question struct {
	ID           string   `json:"id"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctAnswerIndex"`
	Explanation  string   `json:"explanation,omitempty"`
}

// Node is one learnable concept (a "neuron" in the UI).
type Node struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Status      Status `json:"status"`

	// Progress runs from 0 to 100 and never decreases within a learning
	// pass. Status is derived from it: 100 means Dominated.
	Progress float64 `json:"progress"`

	// Unlocks lists downstream node ids this node is a prerequisite for.
	Unlocks []string `json:"unlocks"`

	Questions []Question `json:"questions"`

	// CurrentQuestionIndex is the cursor into Questions. It equals
	// len(Questions) once the node is dominated.
	CurrentQuestionIndex int `json:"currentQuestionIndex"`
}

// ActiveQuestion returns the question at the cursor, or false when the
// node has no questions left to answer.
func (n *Node) ActiveQuestion() (Question, bool) {
	if n.CurrentQuestionIndex < 0 || n.CurrentQuestionIndex >= len(n.Questions) {
		return Question{}, false
	}
	return n.Questions[n.CurrentQuestionIndex], true
}

func (n *Node) clone() Node {
	c := *n
	c.Unlocks = slices.Clone(n.Unlocks)
	c.Questions = make([]Question, len(n.Questions))
	for i, q := range n.Questions {
		c.Questions[i] = q
		c.Questions[i].Options = slices.Clone(q.Options)
	}
	return c
}

// Graph is the ordered collection of nodes plus the edge set implied by
// their Unlocks lists. The zero value is an empty graph.
type Graph struct {
	Nodes []Node `json:"nodes"`
}

// Node returns a pointer to the node with the given id, or nil.
// The pointer aliases the graph's backing slice; callers that need an
// independent copy should dereference it.
func (g *Graph) Node(id string) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the graph.
func (g Graph) Clone() Graph {
	out := Graph{Nodes: make([]Node, len(g.Nodes))}
	for i := range g.Nodes {
		out.Nodes[i] = g.Nodes[i].clone()
	}
	return out
}

// Prerequisites returns the ids of all nodes whose Unlocks contain the
// given id, in graph order. These are the nodes that must be Dominated
// before a Blocked target becomes Available.
func (g *Graph) Prerequisites(id string) []string {
	var out []string
	for i := range g.Nodes {
		if slices.Contains(g.Nodes[i].Unlocks, id) {
			out = append(out, g.Nodes[i].ID)
		}
	}
	return out
}

// allPrerequisitesDominated reports whether every prerequisite of id that
// exists in the graph is Dominated.
func (g *Graph) allPrerequisitesDominated(id string) bool {
	for i := range g.Nodes {
		if slices.Contains(g.Nodes[i].Unlocks, id) && g.Nodes[i].Status != StatusDominated {
			return false
		}
	}
	return true
}
