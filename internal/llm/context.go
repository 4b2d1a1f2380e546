package llm

import "context"

// The purpose label rides the context instead of Request so the logging
// decorator can tag recorded events with the feature that triggered the
// call ("hint", "explain") without widening the provider API.

type purposeKey struct{}

// WithPurpose returns a context carrying the purpose label.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the context's purpose label, or "unknown" for
// callers that never set one.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok {
		return v
	}
	return "unknown"
}
