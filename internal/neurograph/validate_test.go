package neurograph

import (
	"strings"
	"testing"
)

func TestValidateSeed(t *testing.T) {
	if err := ValidateSeed(); err != nil {
		t.Fatalf("seed validation failed: %v", err)
	}
}

func TestValidateNodes_Failures(t *testing.T) {
	valid := func(id string, status Status, unlocks ...string) Node {
		return Node{
			ID:      id,
			Label:   id,
			Status:  status,
			Unlocks: unlocks,
			Questions: []Question{
				{ID: id + "-1", Prompt: "?", Options: []string{"a", "b"}, CorrectIndex: 0},
			},
		}
	}

	tests := []struct {
		name      string
		nodes     []Node
		templates map[string]Node
		wantErr   string
	}{
		{
			name:    "duplicate ids",
			nodes:   []Node{valid("a", StatusAvailable), valid("a", StatusBlocked)},
			wantErr: "duplicate node ID",
		},
		{
			name:    "dangling unlock target",
			nodes:   []Node{valid("a", StatusAvailable, "ghost")},
			wantErr: "unknown target",
		},
		{
			name: "cycle",
			nodes: []Node{
				valid("a", StatusAvailable, "b"),
				valid("b", StatusBlocked, "c"),
				valid("c", StatusBlocked, "a"),
			},
			wantErr: "cycle detected",
		},
		{
			name: "correct index out of range",
			nodes: []Node{
				{
					ID: "a", Label: "a", Status: StatusAvailable,
					Questions: []Question{
						{ID: "a-1", Prompt: "?", Options: []string{"x"}, CorrectIndex: 3},
					},
				},
			},
			wantErr: "out of range",
		},
		{
			name:    "no questions",
			nodes:   []Node{{ID: "a", Label: "a", Status: StatusAvailable}},
			wantErr: "no questions",
		},
		{
			name:    "no entry point",
			nodes:   []Node{valid("a", StatusBlocked)},
			wantErr: "no available nodes",
		},
		{
			name:      "template colliding with seed node",
			nodes:     []Node{valid("a", StatusAvailable)},
			templates: map[string]Node{"a": valid("a", StatusBlocked)},
			wantErr:   "collides",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateNodes(tt.nodes, tt.templates)
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestSeedGraph_IndependentCopies(t *testing.T) {
	a := SeedGraph()
	b := SeedGraph()

	a.Node("variables").Progress = 50
	a.Node("variables").Questions[0].Prompt = "mutated"

	if b.Node("variables").Progress != 0 {
		t.Fatal("seed copies share node state")
	}
	if b.Node("variables").Questions[0].Prompt == "mutated" {
		t.Fatal("seed copies share question slices")
	}
}

func TestTemplate_ReturnsCopy(t *testing.T) {
	a, ok := Template("closures")
	if !ok {
		t.Fatal("closures template missing")
	}
	a.Questions[0].Prompt = "mutated"

	b, _ := Template("closures")
	if b.Questions[0].Prompt == "mutated" {
		t.Fatal("templates share question slices")
	}
}
