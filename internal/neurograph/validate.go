package neurograph

import (
	"fmt"
	"strings"
)

// ValidateSeed checks the seed definition and template table for
// structural problems. Cycle prevention is a seed-data concern: the
// runtime propagation never loops (each step only flips Blocked to
// Available once), but a cycle would make the "all prerequisites
// dominated" check unsatisfiable forever.
func ValidateSeed() error {
	return validateNodes(seedNodes, nodeTemplates)
}

func validateNodes(nodes []Node, templates map[string]Node) error {
	var errs []string

	idSet := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if idSet[n.ID] {
			errs = append(errs, fmt.Sprintf("duplicate node ID: %q", n.ID))
		}
		idSet[n.ID] = true
	}
	for id, tmpl := range templates {
		if idSet[id] {
			errs = append(errs, fmt.Sprintf("template %q collides with a seed node", id))
		}
		if tmpl.ID != id {
			errs = append(errs, fmt.Sprintf("template key %q does not match its node ID %q", id, tmpl.ID))
		}
	}

	known := func(id string) bool {
		if idSet[id] {
			return true
		}
		_, ok := templates[id]
		return ok
	}

	// Unlock targets must resolve to a seed node or a template.
	for _, n := range nodes {
		for _, target := range n.Unlocks {
			if !known(target) {
				errs = append(errs, fmt.Sprintf("node %q unlocks unknown target %q", n.ID, target))
			}
		}
	}
	for _, tmpl := range templates {
		for _, target := range tmpl.Unlocks {
			if !known(target) {
				errs = append(errs, fmt.Sprintf("template %q unlocks unknown target %q", tmpl.ID, target))
			}
		}
	}

	// Questions must be well-formed: the engine divides by the question
	// count and indexes options by CorrectIndex.
	checkQuestions := func(n Node) {
		if len(n.Questions) == 0 {
			errs = append(errs, fmt.Sprintf("node %q has no questions", n.ID))
		}
		for _, q := range n.Questions {
			if q.ID == "" || q.Prompt == "" {
				errs = append(errs, fmt.Sprintf("node %q has a question with empty id or prompt", n.ID))
			}
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				errs = append(errs, fmt.Sprintf("node %q question %q: correct index %d out of range for %d options",
					n.ID, q.ID, q.CorrectIndex, len(q.Options)))
			}
		}
	}
	for _, n := range nodes {
		checkQuestions(n)
	}
	for _, tmpl := range templates {
		checkQuestions(tmpl)
	}

	// Seed statuses must respect the status/progress invariants.
	for _, n := range nodes {
		switch n.Status {
		case StatusBlocked, StatusAvailable:
			if n.Progress != 0 || n.CurrentQuestionIndex != 0 {
				errs = append(errs, fmt.Sprintf("node %q starts with nonzero progress", n.ID))
			}
		default:
			errs = append(errs, fmt.Sprintf("node %q has seed status %q; seeds must start blocked or available", n.ID, n.Status))
		}
	}

	// Cycle check over the prerequisite relation (Kahn's algorithm),
	// including templates since they join the graph at runtime.
	all := make([]Node, 0, len(nodes)+len(templates))
	all = append(all, nodes...)
	for _, tmpl := range templates {
		all = append(all, tmpl)
	}

	inDegree := make(map[string]int, len(all))
	for _, n := range all {
		if _, ok := inDegree[n.ID]; !ok {
			inDegree[n.ID] = 0
		}
		for _, target := range n.Unlocks {
			inDegree[target]++
		}
	}

	var queue []string
	for _, n := range all {
		if inDegree[n.ID] == 0 {
			queue = append(queue, n.ID)
		}
	}

	adj := make(map[string][]string, len(all))
	for _, n := range all {
		adj[n.ID] = n.Unlocks
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, target := range adj[id] {
			inDegree[target]--
			if inDegree[target] == 0 {
				queue = append(queue, target)
			}
		}
	}

	if visited < len(all) {
		var cycleNodes []string
		for _, n := range all {
			if inDegree[n.ID] > 0 {
				cycleNodes = append(cycleNodes, n.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving nodes: %s", strings.Join(cycleNodes, ", ")))
	}

	// At least one entry point.
	hasRoot := false
	for _, n := range nodes {
		if n.Status == StatusAvailable {
			hasRoot = true
			break
		}
	}
	if !hasRoot {
		errs = append(errs, "no available nodes in seed (at least one entry point required)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("graph seed validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
