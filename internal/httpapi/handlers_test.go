package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/axon-labs/axon/internal/llm"
	"github.com/axon-labs/axon/internal/network"
	"github.com/axon-labs/axon/internal/neurograph"
	"github.com/axon-labs/axon/internal/store"
	"github.com/axon-labs/axon/internal/tutor"
)

// memSnapshots is a minimal in-memory SnapshotRepo for handler tests.
type memSnapshots struct {
	mu   sync.Mutex
	rows map[string]map[int64]neurograph.Graph
}

func (m *memSnapshots) Load(_ context.Context, key string) (*store.GraphSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var best int64
	for seq := range m.rows[key] {
		if seq > best {
			best = seq
		}
	}
	if best == 0 {
		return nil, nil
	}
	return &store.GraphSnapshot{SessionKey: key, Sequence: best, Graph: m.rows[key][best].Clone()}, nil
}

func (m *memSnapshots) Save(_ context.Context, key string, seq int64, g neurograph.Graph) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[key][seq]; ok {
		return store.ErrSequenceConflict
	}
	if m.rows[key] == nil {
		m.rows[key] = make(map[int64]neurograph.Graph)
	}
	m.rows[key][seq] = g.Clone()
	return nil
}

func (m *memSnapshots) Prune(context.Context, string, int) error { return nil }

func newTestServer(t *testing.T, responses ...llm.MockResponse) (*httptest.Server, *llm.MockProvider) {
	t.Helper()

	snaps := &memSnapshots{rows: make(map[string]map[int64]neurograph.Graph)}
	netSvc := network.NewService(snaps, nil, nil, 20)

	mock := llm.NewMockProvider(responses...)
	tutSvc := tutor.NewService(mock, nil, tutor.DefaultConfig())

	srv := httptest.NewServer(NewServer(netSvc, tutSvc, nil).Router())
	t.Cleanup(srv.Close)
	return srv, mock
}

func doJSON(t *testing.T, method, url string, body any, headers map[string]string) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	var parsed map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, parsed
}

func TestGetNetwork_SeedsAndReturnsNeurons(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/network", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}

	neurons := body["data"].(map[string]any)["neurons"].([]any)
	if len(neurons) != 15 {
		t.Errorf("neurons = %d, want 15", len(neurons))
	}

	first := neurons[0].(map[string]any)
	for _, field := range []string{"id", "label", "status", "progress", "questions", "currentQuestionIndex"} {
		if _, ok := first[field]; !ok {
			t.Errorf("neuron missing field %q", field)
		}
	}
}

func TestSubmitAnswer_Correct(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/network",
		map[string]any{"id": "variables", "answerIndex": 1}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body["isCorrect"] != true || body["isCompleted"] != false {
		t.Errorf("isCorrect=%v isCompleted=%v", body["isCorrect"], body["isCompleted"])
	}
	if body["saved"] != true {
		t.Errorf("saved = %v", body["saved"])
	}
	if body["message"] != "Correct answer!" {
		t.Errorf("message = %v", body["message"])
	}

	neuron := body["neuron"].(map[string]any)
	if neuron["progress"].(float64) != 20 {
		t.Errorf("progress = %v, want 20", neuron["progress"])
	}
}

func TestSubmitAnswer_Wrong(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/network",
		map[string]any{"id": "variables", "answerIndex": 0}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body["isCorrect"] != false {
		t.Errorf("isCorrect = %v", body["isCorrect"])
	}
	if body["message"] != "Incorrect answer, try again" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestSubmitAnswer_Validation(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{"missing id", map[string]any{"answerIndex": 1}, http.StatusBadRequest},
		{"missing index", map[string]any{"id": "variables"}, http.StatusBadRequest},
		{"unknown node", map[string]any{"id": "quantum", "answerIndex": 0}, http.StatusNotFound},
		{"blocked node", map[string]any{"id": "data-types", "answerIndex": 1}, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/network", tt.body, nil)
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
			if body["success"] != false {
				t.Errorf("success = %v, want false", body["success"])
			}
		})
	}
}

func TestReset(t *testing.T) {
	srv, _ := newTestServer(t)

	doJSON(t, http.MethodPost, srv.URL+"/api/network",
		map[string]any{"id": "variables", "answerIndex": 1}, nil)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/network/reset", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	neurons := body["data"].(map[string]any)["neurons"].([]any)
	variables := neurons[0].(map[string]any)
	if variables["progress"].(float64) != 0 {
		t.Errorf("progress after reset = %v, want 0", variables["progress"])
	}
}

func TestSessionIsolation(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/session", nil, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	key := body["data"].(map[string]any)["sessionKey"].(string)
	if key == "" {
		t.Fatal("empty session key")
	}

	// Progress in the new session.
	headers := map[string]string{sessionHeader: key}
	doJSON(t, http.MethodPost, srv.URL+"/api/network",
		map[string]any{"id": "variables", "answerIndex": 1}, headers)

	// The default session is untouched.
	_, defBody := doJSON(t, http.MethodGet, srv.URL+"/api/network", nil, nil)
	neurons := defBody["data"].(map[string]any)["neurons"].([]any)
	if got := neurons[0].(map[string]any)["progress"].(float64); got != 0 {
		t.Errorf("default session progress = %v, want 0", got)
	}

	// The new session kept its progress.
	_, sesBody := doJSON(t, http.MethodGet, srv.URL+"/api/network", nil, headers)
	neurons = sesBody["data"].(map[string]any)["neurons"].([]any)
	if got := neurons[0].(map[string]any)["progress"].(float64); got != 20 {
		t.Errorf("session progress = %v, want 20", got)
	}
}

func TestHintEndpoint(t *testing.T) {
	srv, mock := newTestServer(t,
		llm.MockResponse{Content: json.RawMessage(`{"hint":"What does 'if' introduce?"}`)},
	)

	payload := map[string]any{
		"question":      "Which keyword declares a variable?",
		"userAnswer":    "if",
		"correctAnswer": "let",
		"topic":         "Variables",
	}

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/chat/hint", payload, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body["hint"] != "What does 'if' introduce?" {
		t.Errorf("hint = %v", body["hint"])
	}
	if body["cached"] != false {
		t.Errorf("cached = %v", body["cached"])
	}

	// Replay hits the cache without another provider call.
	_, body = doJSON(t, http.MethodPost, srv.URL+"/api/chat/hint", payload, nil)
	if body["cached"] != true {
		t.Errorf("cached = %v, want true", body["cached"])
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestHintEndpoint_MissingFields(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/chat/hint",
		map[string]any{"topic": "Variables"}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestExplainEndpoint(t *testing.T) {
	srv, _ := newTestServer(t,
		llm.MockResponse{Content: json.RawMessage(`{"answer":"A loop repeats code."}`)},
	)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/chat/explain",
		map[string]any{"question": "What is a loop?", "topic": "Loops"}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body["answer"] != "A loop repeats code." {
		t.Errorf("answer = %v", body["answer"])
	}
}

func TestExplainEndpoint_UpstreamFailure(t *testing.T) {
	srv, _ := newTestServer(t,
		llm.MockResponse{Err: &llm.ErrUpstream{Err: errors.New("down")}},
	)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/chat/explain",
		map[string]any{"question": "What is a loop?", "topic": "Loops"}, nil)
	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", resp.StatusCode)
	}
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
}

func TestAgentEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/agent",
		map[string]any{"action": "GET_NETWORK_STATUS"}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if len(body["data"].(map[string]any)["neurons"].([]any)) != 15 {
		t.Error("agent status did not return the full graph")
	}

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/agent", map[string]any{
		"action":  "SUBMIT_ANSWER",
		"payload": map[string]any{"neuronId": "variables", "answerIndex": 1},
	}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit status = %d", resp.StatusCode)
	}
	if body["isCorrect"] != true {
		t.Errorf("isCorrect = %v", body["isCorrect"])
	}

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/agent",
		map[string]any{"action": "SUBMIT_ANSWER", "payload": map[string]any{}}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad payload status = %d, want 400", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/agent",
		map[string]any{"action": "LAUNCH_MISSILES"}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid action status = %d, want 400", resp.StatusCode)
	}

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/agent",
		map[string]any{"action": "RESET_NETWORK"}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("reset status = %d", resp.StatusCode)
	}
	neurons := body["data"].(map[string]any)["neurons"].([]any)
	if got := neurons[0].(map[string]any)["progress"].(float64); got != 0 {
		t.Errorf("progress after reset = %v, want 0", got)
	}
}
