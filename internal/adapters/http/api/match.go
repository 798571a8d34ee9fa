package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	service "github.com/kibisports/matchdesk/internal/app"
)

// userIDHeader carries the authenticated requester, set by the auth layer in
// front of this service.
const userIDHeader = "X-User-ID"

// MatchHandler handles matchmaking invocations.
type MatchHandler struct {
	deps Dependencies
}

// NewMatchHandler creates a new matchmaking handler.
func NewMatchHandler(deps Dependencies) *MatchHandler {
	return &MatchHandler{deps: deps}
}

// matchRequest mirrors the POST /v1/matchmaking/run body.
type matchRequest struct {
	BriefID int64 `json:"brief_id"`
	Limits  *struct {
		Athletes int `json:"athletes"`
		Leagues  int `json:"leagues"`
		Venues   int `json:"venues"`
	} `json:"limits"`
}

// HandleRunMatchmaking handles POST /v1/matchmaking/run requests.
func (h *MatchHandler) HandleRunMatchmaking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	userID, err := requesterID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthenticated", err)
		return
	}

	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if req.BriefID <= 0 {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("valid brief_id required"))
		return
	}

	var limits *service.Limits
	if req.Limits != nil {
		limits = &service.Limits{
			Athletes: req.Limits.Athletes,
			Leagues:  req.Limits.Leagues,
			Venues:   req.Limits.Venues,
		}
	}

	resp, err := h.deps.RunMatchmaking(r.Context(), req.BriefID, userID, limits)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func requesterID(r *http.Request) (int64, error) {
	raw := r.Header.Get(userIDHeader)
	if raw == "" {
		return 0, errors.New("missing " + userIDHeader + " header")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid " + userIDHeader + " header")
	}
	return id, nil
}

// writeServiceError translates matchmaking errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrBriefNotFound):
		writeError(w, http.StatusNotFound, "brief_not_found", err)
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", err)
	case errors.Is(err, service.ErrInvalidCategory):
		writeError(w, http.StatusBadRequest, "invalid_category", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
