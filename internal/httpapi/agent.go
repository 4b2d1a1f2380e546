package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// agentRequest is the action-routed envelope used by external agents
// (automation services, workflow engines) as a single entry point.
type agentRequest struct {
	Action  string `json:"action"`
	Payload struct {
		NeuronID    string `json:"neuronId"`
		AnswerIndex *int   `json:"answerIndex"`
	} `json:"payload"`
}

func (s *Server) handleAgent(w http.ResponseWriter, r *http.Request) {
	var req agentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	switch req.Action {
	case "GET_NETWORK_STATUS":
		g, err := s.network.State(r.Context(), sessionKey(r))
		if err != nil {
			s.log.Error("agent network state", zap.Error(err))
			respondError(w, http.StatusInternalServerError, "failed to fetch network state")
			return
		}
		respond(w, http.StatusOK, map[string]any{
			"data": map[string]any{"neurons": g.Nodes},
		})

	case "SUBMIT_ANSWER":
		if req.Payload.NeuronID == "" || req.Payload.AnswerIndex == nil {
			respondError(w, http.StatusBadRequest, "invalid payload for SUBMIT_ANSWER")
			return
		}
		s.writeAnswerResult(w, r, req.Payload.NeuronID, *req.Payload.AnswerIndex)

	case "RESET_NETWORK":
		g, err := s.network.Reset(r.Context(), sessionKey(r))
		if err != nil {
			s.log.Error("agent reset", zap.Error(err))
			respondError(w, http.StatusInternalServerError, "failed to reset network")
			return
		}
		respond(w, http.StatusOK, map[string]any{
			"message": "Network reset successfully",
			"data":    map[string]any{"neurons": g.Nodes},
		})

	default:
		respondError(w, http.StatusBadRequest, "invalid action")
	}
}
