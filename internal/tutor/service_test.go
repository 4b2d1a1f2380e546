package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/axon-labs/axon/internal/llm"
	"github.com/axon-labs/axon/internal/store"
)

// gatedProvider blocks Generate until released, so a test can hold a
// flight open while more callers attach to it.
type gatedProvider struct {
	entered chan struct{}
	release chan struct{}

	mu    sync.Mutex
	calls int
}

func newGatedProvider() *gatedProvider {
	return &gatedProvider{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (p *gatedProvider) Generate(context.Context, llm.Request) (*llm.Response, error) {
	p.mu.Lock()
	p.calls++
	if p.calls == 1 {
		close(p.entered)
	}
	p.mu.Unlock()

	<-p.release
	return &llm.Response{Content: json.RawMessage(`{"hint":"shared"}`)}, nil
}

func (p *gatedProvider) ModelID() string { return "gated" }

func (p *gatedProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// fakeEvents records appended tutor events in memory.
type fakeEvents struct {
	tutor     []store.TutorEventData
	appendErr error
}

func (f *fakeEvents) AppendAnswer(context.Context, store.AnswerEventData) error { return nil }
func (f *fakeEvents) AppendTutor(_ context.Context, d store.TutorEventData) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.tutor = append(f.tutor, d)
	return nil
}
func (f *fakeEvents) AppendLLMRequest(context.Context, store.LLMRequestEventData) error { return nil }
func (f *fakeEvents) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}
func (f *fakeEvents) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) { return nil, nil }
func (f *fakeEvents) Counts(context.Context) (store.EventCounts, error) {
	return store.EventCounts{}, nil
}

func hintReq() HintRequest {
	return HintRequest{
		Topic:         "Variables",
		Question:      "Which keyword declares a variable?",
		UserAnswer:    "if",
		CorrectAnswer: "let",
	}
}

func TestHint_GeneratesAndCaches(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"hint":"What does 'if' usually introduce?"}`)},
	)
	events := &fakeEvents{}
	svc := NewService(mock, events, DefaultConfig())
	ctx := context.Background()

	reply, err := svc.Hint(ctx, hintReq())
	if err != nil {
		t.Fatalf("hint: %v", err)
	}
	if reply.Cached {
		t.Error("first reply should not be cached")
	}
	if reply.Text != "What does 'if' usually introduce?" {
		t.Errorf("text = %q", reply.Text)
	}

	// Identical request is served from cache without a second call.
	reply, err = svc.Hint(ctx, hintReq())
	if err != nil {
		t.Fatalf("cached hint: %v", err)
	}
	if !reply.Cached {
		t.Error("second reply should be cached")
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}

	if len(events.tutor) != 2 {
		t.Fatalf("recorded %d tutor events, want 2", len(events.tutor))
	}
	if events.tutor[0].CacheHit || !events.tutor[1].CacheHit {
		t.Errorf("cache_hit flags = %v, %v; want false, true",
			events.tutor[0].CacheHit, events.tutor[1].CacheHit)
	}
}

func TestHint_PromptCarriesContext(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"hint":"ok"}`)},
	)
	svc := NewService(mock, nil, DefaultConfig())

	if _, err := svc.Hint(context.Background(), hintReq()); err != nil {
		t.Fatalf("hint: %v", err)
	}

	req := mock.Calls[0]
	for _, want := range []string{"Variables", "Which keyword declares a variable?", "if", "let"} {
		if !strings.Contains(req.System, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
	if req.MaxTokens != 100 {
		t.Errorf("max tokens = %d, want 100", req.MaxTokens)
	}
	if req.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", req.Temperature)
	}
}

func TestHint_DistinctAnswersNotShared(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"hint":"first"}`)},
		llm.MockResponse{Content: json.RawMessage(`{"hint":"second"}`)},
	)
	svc := NewService(mock, nil, DefaultConfig())
	ctx := context.Background()

	if _, err := svc.Hint(ctx, hintReq()); err != nil {
		t.Fatalf("hint 1: %v", err)
	}

	other := hintReq()
	other.UserAnswer = "for"
	reply, err := svc.Hint(ctx, other)
	if err != nil {
		t.Fatalf("hint 2: %v", err)
	}
	if reply.Cached {
		t.Error("different answer must not hit the cache")
	}
	if mock.CallCount() != 2 {
		t.Errorf("provider called %d times, want 2", mock.CallCount())
	}
}

func TestHint_ValidatesFields(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), nil, DefaultConfig())

	req := hintReq()
	req.CorrectAnswer = ""
	_, err := svc.Hint(context.Background(), req)
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("got %v, want ErrInvalidRequest", err)
	}
}

func TestHint_FailureNotCached(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrUpstream{Err: errors.New("down")}},
		llm.MockResponse{Content: json.RawMessage(`{"hint":"recovered"}`)},
	)
	svc := NewService(mock, nil, DefaultConfig())
	ctx := context.Background()

	if _, err := svc.Hint(ctx, hintReq()); err == nil {
		t.Fatal("expected upstream error")
	}

	// The failed call must not poison the cache or the in-flight map.
	reply, err := svc.Hint(ctx, hintReq())
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if reply.Cached {
		t.Error("retry should not be a cache hit")
	}
	if reply.Text != "recovered" {
		t.Errorf("text = %q, want recovered", reply.Text)
	}
}

func TestHint_CoalescedCallersWriteCacheOnce(t *testing.T) {
	provider := newGatedProvider()
	svc := NewService(provider, nil, DefaultConfig())
	ctx := context.Background()

	const callers = 5
	var wg sync.WaitGroup
	replies := make([]Reply, callers)
	errs := make([]error, callers)

	wg.Add(1)
	go func() {
		defer wg.Done()
		replies[0], errs[0] = svc.Hint(ctx, hintReq())
	}()
	<-provider.entered

	// Identical requests arriving while the first is in flight attach to
	// it instead of calling the provider.
	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			replies[i], errs[i] = svc.Hint(ctx, hintReq())
		}()
	}

	close(provider.release)
	wg.Wait()

	for i := range callers {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if replies[i].Text != "shared" {
			t.Errorf("caller %d text = %q, want shared", i, replies[i].Text)
		}
	}
	if got := provider.callCount(); got != 1 {
		t.Errorf("provider called %d times, want 1", got)
	}

	// The winning flight wrote the cache before settling, so the next
	// identical request is a hit and the provider stays at one call.
	reply, err := svc.Hint(ctx, hintReq())
	if err != nil {
		t.Fatalf("follow-up hint: %v", err)
	}
	if !reply.Cached {
		t.Error("follow-up should be served from cache")
	}
	if got := provider.callCount(); got != 1 {
		t.Errorf("provider called %d times after follow-up, want 1", got)
	}
}

func TestHint_EventAppendFailureDoesNotFailRequest(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"hint":"still served"}`)},
	)
	events := &fakeEvents{appendErr: errors.New("events table locked")}
	svc := NewService(mock, events, DefaultConfig())

	reply, err := svc.Hint(context.Background(), hintReq())
	if err != nil {
		t.Fatalf("hint: %v", err)
	}
	if reply.Text != "still served" {
		t.Errorf("text = %q, want still served", reply.Text)
	}
}

func TestHint_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"unexpected":"shape"}`)},
	)
	svc := NewService(mock, nil, DefaultConfig())

	_, err := svc.Hint(context.Background(), hintReq())
	if err == nil {
		t.Fatal("expected error for missing hint field")
	}
	var invErr *llm.ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestExplain_GeneratesAndCaches(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"answer":"A loop repeats a block of code."}`)},
	)
	events := &fakeEvents{}
	svc := NewService(mock, events, DefaultConfig())
	ctx := context.Background()

	req := ExplainRequest{Topic: "Loops", Question: "What is a loop?"}
	reply, err := svc.Explain(ctx, req)
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if reply.Text != "A loop repeats a block of code." {
		t.Errorf("text = %q", reply.Text)
	}

	reply, err = svc.Explain(ctx, req)
	if err != nil {
		t.Fatalf("cached explain: %v", err)
	}
	if !reply.Cached {
		t.Error("second reply should be cached")
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}

	call := mock.Calls[0]
	if call.User != "What is a loop?" {
		t.Errorf("user message = %q", call.User)
	}
	if !strings.Contains(call.System, "Loops") {
		t.Error("system prompt missing topic")
	}
	if call.MaxTokens != 150 {
		t.Errorf("max tokens = %d, want 150", call.MaxTokens)
	}
}

func TestExplain_ValidatesFields(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), nil, DefaultConfig())

	_, err := svc.Explain(context.Background(), ExplainRequest{Topic: "Loops"})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("got %v, want ErrInvalidRequest", err)
	}
}

func TestHintAndExplainCachesAreDisjoint(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"hint":"a hint"}`)},
		llm.MockResponse{Content: json.RawMessage(`{"answer":"an answer"}`)},
	)
	svc := NewService(mock, nil, DefaultConfig())
	ctx := context.Background()

	if _, err := svc.Hint(ctx, hintReq()); err != nil {
		t.Fatalf("hint: %v", err)
	}

	// Same topic and question via Explain must not see the hint entry.
	reply, err := svc.Explain(ctx, ExplainRequest{
		Topic:    "Variables",
		Question: "Which keyword declares a variable?",
	})
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if reply.Cached {
		t.Error("explain must not reuse hint cache entries")
	}
	if reply.Text != "an answer" {
		t.Errorf("text = %q, want an answer", reply.Text)
	}
}
