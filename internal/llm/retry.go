package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider retries transient provider failures with jittered
// exponential backoff. Rate limits wait out the server-supplied
// RetryAfter when one is given; a schema-invalid response earns a
// single regeneration attempt since model output varies between calls.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps p in retry behavior configured by cfg.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	schemaRetryUsed := false

	for attempt := range r.config.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !r.retryable(err, &schemaRetryUsed) {
			return nil, err
		}
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// retryable classifies err. Cancelled contexts and truncated responses
// are terminal; an invalid response may be regenerated once; everything
// else, including unclassified transport errors, is treated as
// transient.
func (r *RetryProvider) retryable(err error, schemaRetryUsed *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return false
	}

	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		if *schemaRetryUsed {
			return false
		}
		*schemaRetryUsed = true
		return true
	}

	return true
}

// wait computes the backoff before the next attempt.
func (r *RetryProvider) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	d := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	d = min(d, float64(r.config.MaxWait))

	// ±20% jitter.
	d += d * 0.2 * (2*rand.Float64() - 1)

	return time.Duration(max(d, 0))
}
