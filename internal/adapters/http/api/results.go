package api

import (
	"net/http"
	"strconv"
)

// ResultsHandler serves the latest persisted run for a brief.
type ResultsHandler struct {
	deps Dependencies
}

// NewResultsHandler creates a new results handler.
func NewResultsHandler(deps Dependencies) *ResultsHandler {
	return &ResultsHandler{deps: deps}
}

// HandleLatestResults handles GET /v1/matchmaking/results?brief_id=N requests.
func (h *ResultsHandler) HandleLatestResults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	userID, err := requesterID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthenticated", err)
		return
	}
	briefID, err := strconv.ParseInt(r.URL.Query().Get("brief_id"), 10, 64)
	if err != nil || briefID <= 0 {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	resp, err := h.deps.LatestResults(r.Context(), briefID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
