package tutor

import "github.com/axon-labs/axon/internal/llm"

// hintSchema constrains hint responses to a single short string.
var hintSchema = &llm.Schema{
	Name:        "tutor-hint",
	Description: "A short Socratic hint that does not reveal the answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"description": "One short guiding question or hint",
			},
		},
		"required":             []any{"hint"},
		"additionalProperties": false,
	},
}

// explainSchema constrains explanations to a single answer string.
var explainSchema = &llm.Schema{
	Name:        "tutor-explain",
	Description: "A concise beginner-level explanation scoped to the topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{
				"type":        "string",
				"description": "The explanation, or a polite refusal if off topic",
			},
		},
		"required":             []any{"answer"},
		"additionalProperties": false,
	},
}
