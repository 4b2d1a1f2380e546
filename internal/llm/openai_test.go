package llm

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestBuildOpenAIMessages_SystemAndUser(t *testing.T) {
	msgs := buildOpenAIMessages(Request{
		System: "You are Axon, a Socratic tutor.",
		User:   "Hint: Variables",
	})

	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("first role = %q, want system", msgs[0].Role)
	}
	if msgs[1].Role != openai.ChatMessageRoleUser {
		t.Errorf("second role = %q, want user", msgs[1].Role)
	}
	if msgs[1].Content != "Hint: Variables" {
		t.Errorf("user content = %q", msgs[1].Content)
	}
}

func TestBuildOpenAIMessages_NoSystem(t *testing.T) {
	msgs := buildOpenAIMessages(Request{User: "hello"})

	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleUser {
		t.Errorf("role = %q, want user", msgs[0].Role)
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"gpt-4o-mini", "gpt-4o-mini"},
		{"llama-3.1-8b-instant", "llama-3.1-8b-instant"}, // pass-through for direct IDs
	}
	for _, tt := range tests {
		if got := resolveModel(tt.name, openaiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing API key")
	}

	cfg.OpenAI.APIKey = "test-key"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mock should not need a key: %v", err)
	}

	cfg.Provider = "groq"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
