// Package httpapi exposes the progression network and tutor over REST,
// plus an action-routed gateway endpoint for external agents.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/axon-labs/axon/internal/network"
	"github.com/axon-labs/axon/internal/tutor"
)

// defaultSessionKey serves clients that never minted a session. All
// anonymous traffic shares one graph, which matches single-learner use.
const defaultSessionKey = "global"

// sessionHeader carries the caller's session key.
const sessionHeader = "X-Session-Key"

// Server wires the domain services into HTTP handlers.
type Server struct {
	network *network.Service
	tutor   *tutor.Service
	log     *zap.Logger
}

// NewServer creates the API server. log may be nil.
func NewServer(net *network.Service, tut *tutor.Service, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{network: net, tutor: tut, log: log}
}

// Router builds the route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(s.log))

	r.Route("/api", func(r chi.Router) {
		r.Get("/network", s.handleNetworkState)
		r.Post("/network", s.handleSubmitAnswer)
		r.Post("/network/reset", s.handleReset)
		r.Post("/session", s.handleNewSession)
		r.Post("/chat/hint", s.handleHint)
		r.Post("/chat/explain", s.handleExplain)
		r.Post("/agent", s.handleAgent)
	})

	return r
}

// sessionKey resolves the caller's session from the request header.
func sessionKey(r *http.Request) string {
	if k := r.Header.Get(sessionHeader); k != "" {
		return k
	}
	return defaultSessionKey
}
