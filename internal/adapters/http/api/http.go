// Package api declares HTTP contracts and route registration helpers. The
// layer is deliberately thin: request decoding, dependency calls, error
// translation. Authentication happens upstream; the requesting user arrives
// as a trusted header.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	service "github.com/kibisports/matchdesk/internal/app"
)

// Dependencies required by HTTP handlers. An interface bundle keeps the
// handler layer loosely coupled to the service implementation.
type Dependencies interface {
	RunMatchmaking(ctx context.Context, briefID, userID int64, limits *service.Limits) (*service.TeaserResponse, error)
	LatestResults(ctx context.Context, briefID, userID int64) (*service.LatestResponse, error)
}

// Server wires HTTP routes for the matchmaking API.
type Server struct {
	matchHandler   *MatchHandler
	resultsHandler *ResultsHandler
	healthHandler  *HealthHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		matchHandler:   NewMatchHandler(deps),
		resultsHandler: NewResultsHandler(deps),
		healthHandler:  NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/v1/matchmaking/run", MetricsMiddleware(s.matchHandler.HandleRunMatchmaking, "matchmaking_run"))
	mux.HandleFunc("/v1/matchmaking/results", MetricsMiddleware(s.resultsHandler.HandleLatestResults, "matchmaking_results"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
