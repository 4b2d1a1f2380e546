package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/axon-labs/axon/internal/llm"
	"github.com/axon-labs/axon/internal/network"
	"github.com/axon-labs/axon/internal/neurograph"
	"github.com/axon-labs/axon/internal/tutor"
)

// respond writes fields as a JSON envelope with success derived from
// the status code.
func respond(w http.ResponseWriter, status int, fields map[string]any) {
	body := map[string]any{"success": status >= 200 && status < 300}
	for k, v := range fields {
		body[k] = v
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, map[string]any{"error": message})
}

// respondDomainError maps service errors onto HTTP statuses.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, neurograph.ErrNodeNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, neurograph.ErrNodeLocked),
		errors.Is(err, neurograph.ErrNoActiveQuestion):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, tutor.ErrInvalidRequest):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		var rl *llm.ErrRateLimit
		if errors.As(err, &rl) {
			respondError(w, http.StatusTooManyRequests, "model provider rate limited")
			return
		}
		var up *llm.ErrUpstream
		var inv *llm.ErrInvalidResponse
		if errors.As(err, &up) || errors.As(err, &inv) {
			respondError(w, http.StatusBadGateway, "model provider failed")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// answerMessage mirrors the learner-facing feedback for an answer.
func answerMessage(res *network.AnswerResult) string {
	switch {
	case res.Completed:
		return "Congratulations! You have dominated " + res.Node.Label + "!"
	case res.Correct:
		return "Correct answer!"
	default:
		return "Incorrect answer, try again"
	}
}
