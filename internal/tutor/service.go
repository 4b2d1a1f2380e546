// Package tutor serves model-generated hints and explanations, shielded
// by a response cache and a single-flight deduplicator so repeated or
// concurrent identical requests cost one upstream call.
package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/axon-labs/axon/internal/guard"
	"github.com/axon-labs/axon/internal/llm"
	"github.com/axon-labs/axon/internal/store"
)

// ErrInvalidRequest indicates a required request field is empty.
var ErrInvalidRequest = errors.New("invalid tutor request")

// Config tunes the guard layer and generation parameters.
type Config struct {
	HintTTL          time.Duration
	ExplainTTL       time.Duration
	CacheSize        int
	FlightTimeout    time.Duration
	SweepInterval    time.Duration
	HintMaxTokens    int
	ExplainMaxTokens int
	Temperature      float64
}

// DefaultConfig returns the standard tutoring configuration. Hints are
// cached shorter than explanations: questions repeat within a session
// while concept explanations stay valid longer.
func DefaultConfig() Config {
	return Config{
		HintTTL:          30 * time.Minute,
		ExplainTTL:       60 * time.Minute,
		CacheSize:        1000,
		FlightTimeout:    30 * time.Second,
		SweepInterval:    5 * time.Minute,
		HintMaxTokens:    100,
		ExplainMaxTokens: 150,
		Temperature:      0.7,
	}
}

// HintRequest asks for a Socratic nudge after a wrong answer.
type HintRequest struct {
	Topic         string
	Question      string
	UserAnswer    string
	CorrectAnswer string
}

// ExplainRequest asks for a scoped concept explanation.
type ExplainRequest struct {
	Topic    string
	Question string
}

// Reply is a served tutoring response.
type Reply struct {
	Text   string
	Cached bool
}

// Service generates hints and explanations through a Provider.
type Service struct {
	provider llm.Provider
	cache    *guard.Cache
	flights  *guard.Deduplicator
	events   store.EventRepo // optional; nil disables event recording
	cfg      Config
}

// NewService creates a tutoring service. events may be nil.
func NewService(provider llm.Provider, events store.EventRepo, cfg Config) *Service {
	return &Service{
		provider: provider,
		cache:    guard.NewCache(cfg.HintTTL, cfg.CacheSize),
		flights:  guard.NewDeduplicator(cfg.FlightTimeout),
		events:   events,
		cfg:      cfg,
	}
}

// StartSweep launches the periodic cache cleanup until ctx is cancelled.
func (s *Service) StartSweep(ctx context.Context) {
	s.cache.StartSweep(ctx, s.cfg.SweepInterval)
}

// CacheStats reports current cache occupancy.
func (s *Service) CacheStats() guard.Stats {
	return s.cache.Stats()
}

// Hint returns a short guiding question for a wrong answer. The hint
// never reveals the correct answer; it nudges the learner to reconsider.
func (s *Service) Hint(ctx context.Context, req HintRequest) (Reply, error) {
	if req.Topic == "" || req.Question == "" || req.UserAnswer == "" || req.CorrectAnswer == "" {
		return Reply{}, fmt.Errorf("%w: all hint fields are required", ErrInvalidRequest)
	}

	key := fmt.Sprintf("hint:%s:%s:%s", req.Topic, req.Question, req.UserAnswer)
	if cached, ok := s.cache.Get(key); ok {
		s.recordTutor(ctx, "hint", req.Topic, req.Question, true)
		return Reply{Text: cached, Cached: true}, nil
	}

	text, err := s.flights.Do(key, func() (string, error) {
		text, err := s.generate(llm.WithPurpose(ctx, "hint"), llm.Request{
			System:      hintSystemPrompt(req),
			User:        hintUserMessage,
			Schema:      hintSchema,
			MaxTokens:   s.cfg.HintMaxTokens,
			Temperature: s.cfg.Temperature,
		}, "hint")
		if err != nil {
			return "", err
		}
		// The cache write belongs to the winning flight: it happens once
		// per coalesced group and lands before the in-flight registration
		// clears, so a trailing identical request hits the cache. Failures
		// are never cached and stay retryable.
		s.cache.Set(key, text, s.cfg.HintTTL)
		return text, nil
	})
	if err != nil {
		return Reply{}, err
	}

	s.recordTutor(ctx, "hint", req.Topic, req.Question, false)
	return Reply{Text: text}, nil
}

// Explain answers a learner's free-form question about a topic. The
// model stays scoped to programming and politely refuses anything else.
func (s *Service) Explain(ctx context.Context, req ExplainRequest) (Reply, error) {
	if req.Topic == "" || req.Question == "" {
		return Reply{}, fmt.Errorf("%w: topic and question are required", ErrInvalidRequest)
	}

	key := fmt.Sprintf("explain:%s:%s", req.Topic, req.Question)
	if cached, ok := s.cache.Get(key); ok {
		s.recordTutor(ctx, "explain", req.Topic, req.Question, true)
		return Reply{Text: cached, Cached: true}, nil
	}

	text, err := s.flights.Do(key, func() (string, error) {
		text, err := s.generate(llm.WithPurpose(ctx, "explain"), llm.Request{
			System:      explainSystemPrompt(req.Topic),
			User:        req.Question,
			Schema:      explainSchema,
			MaxTokens:   s.cfg.ExplainMaxTokens,
			Temperature: s.cfg.Temperature,
		}, "answer")
		if err != nil {
			return "", err
		}
		// One cache write per coalesced group, before the flight settles.
		s.cache.Set(key, text, s.cfg.ExplainTTL)
		return text, nil
	})
	if err != nil {
		return Reply{}, err
	}

	s.recordTutor(ctx, "explain", req.Topic, req.Question, false)
	return Reply{Text: text}, nil
}

// generate calls the provider and extracts the named string field from
// the structured response.
func (s *Service) generate(ctx context.Context, req llm.Request, field string) (string, error) {
	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", err
	}

	var parsed map[string]string
	if err := json.Unmarshal(resp.Content, &parsed); err != nil {
		return "", &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	text := parsed[field]
	if text == "" {
		return "", &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("missing %q field", field),
		}
	}
	return text, nil
}

// recordTutor appends a tutor event, best effort. A failed append is
// reported on stderr and never fails the served response.
func (s *Service) recordTutor(ctx context.Context, kind, topic, question string, cacheHit bool) {
	if s.events == nil {
		return
	}
	err := s.events.AppendTutor(ctx, store.TutorEventData{
		Kind:         kind,
		Topic:        topic,
		QuestionText: question,
		CacheHit:     cacheHit,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: tutor event not recorded: %v\n", err)
	}
}
