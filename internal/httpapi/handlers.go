package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/axon-labs/axon/internal/network"
	"github.com/axon-labs/axon/internal/tutor"
)

type answerRequest struct {
	ID          string `json:"id"`
	AnswerIndex *int   `json:"answerIndex"`
}

type hintRequest struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	Topic         string `json:"topic"`
}

type explainRequest struct {
	Question string `json:"question"`
	Topic    string `json:"topic"`
}

func (s *Server) handleNetworkState(w http.ResponseWriter, r *http.Request) {
	g, err := s.network.State(r.Context(), sessionKey(r))
	if err != nil {
		s.log.Error("fetch network state", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to fetch network state")
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"data": map[string]any{"neurons": g.Nodes},
	})
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ID == "" {
		respondError(w, http.StatusBadRequest, "invalid request: neuron id is required")
		return
	}
	if req.AnswerIndex == nil {
		respondError(w, http.StatusBadRequest, "invalid request: answerIndex is required")
		return
	}

	s.writeAnswerResult(w, r, req.ID, *req.AnswerIndex)
}

// writeAnswerResult submits the answer and writes the envelope shared by
// the REST and agent endpoints. A persistence failure still reports the
// computed outcome, flagged saved=false.
func (s *Server) writeAnswerResult(w http.ResponseWriter, r *http.Request, nodeID string, answerIndex int) {
	res, err := s.network.SubmitAnswer(r.Context(), sessionKey(r), nodeID, answerIndex)

	var saveErr *network.SaveError
	if err != nil && !errors.As(err, &saveErr) {
		respondDomainError(w, err)
		return
	}
	if saveErr != nil {
		s.log.Error("answer not persisted", zap.String("node", nodeID), zap.Error(saveErr))
	}

	respond(w, http.StatusOK, map[string]any{
		"isCorrect":       res.Correct,
		"isCompleted":     res.Completed,
		"neuron":          res.Node,
		"newState":        map[string]any{"nodes": res.Graph.Nodes},
		"unlockedNeurons": res.Unlocked,
		"saved":           res.Saved,
		"message":         answerMessage(res),
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	g, err := s.network.Reset(r.Context(), sessionKey(r))
	if err != nil {
		s.log.Error("reset network", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to reset network")
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"message": "Network reset successfully",
		"data":    map[string]any{"neurons": g.Nodes},
	})
}

func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	key := uuid.NewString()

	// Seed eagerly so the first GET sees a graph, not a race.
	if _, err := s.network.State(r.Context(), key); err != nil {
		s.log.Error("seed session", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	respond(w, http.StatusCreated, map[string]any{
		"data": map[string]any{"sessionKey": key},
	})
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	reply, err := s.tutor.Hint(r.Context(), tutor.HintRequest{
		Topic:         req.Topic,
		Question:      req.Question,
		UserAnswer:    req.UserAnswer,
		CorrectAnswer: req.CorrectAnswer,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"hint":   reply.Text,
		"cached": reply.Cached,
	})
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	var req explainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	reply, err := s.tutor.Explain(r.Context(), tutor.ExplainRequest{
		Topic:    req.Topic,
		Question: req.Question,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"answer": reply.Text,
		"cached": reply.Cached,
	})
}
