package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	p, err := NewProvider(context.Background(), cfg, nil)
	require.NoError(t, err)

	// The mock is returned bare, without retry or logging wrappers, so
	// tests can inspect its call log directly.
	mock, ok := p.(*MockProvider)
	require.True(t, ok, "expected *MockProvider, got %T", p)
	require.Equal(t, "mock", mock.ModelID())
}

func TestNewProvider_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "cohere"

	_, err := NewProvider(context.Background(), cfg, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown model provider")
}

func TestNewProvider_MissingKey(t *testing.T) {
	for _, provider := range []string{"anthropic", "openai"} {
		t.Run(provider, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Provider = provider

			_, err := NewProvider(context.Background(), cfg, nil)
			require.Error(t, err)
			require.Contains(t, err.Error(), "API key is required")
		})
	}
}

func TestNewProvider_WrapsRealProviders(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	cfg.OpenAI.APIKey = "test-key"

	p, err := NewProvider(context.Background(), cfg, nil)
	require.NoError(t, err)

	// Outermost layer is retry so rate limits are backed off before the
	// attempt is logged.
	_, ok := p.(*RetryProvider)
	require.True(t, ok, "expected *RetryProvider, got %T", p)
}

func TestMockProvider_FIFOAndRecording(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"hint":"first"}`)},
		MockResponse{Content: json.RawMessage(`{"hint":"second"}`)},
	)

	resp, err := mock.Generate(context.Background(), Request{User: "one"})
	require.NoError(t, err)
	require.JSONEq(t, `{"hint":"first"}`, string(resp.Content))

	resp, err = mock.Generate(context.Background(), Request{User: "two"})
	require.NoError(t, err)
	require.JSONEq(t, `{"hint":"second"}`, string(resp.Content))

	// Queue exhausted.
	_, err = mock.Generate(context.Background(), Request{User: "three"})
	var up *ErrUpstream
	require.ErrorAs(t, err, &up)

	require.Equal(t, 3, mock.CallCount())
	require.Equal(t, "one", mock.Calls[0].User)
}
