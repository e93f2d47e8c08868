package handlers

import (
	"encoding/json"
	"net/http"

	"neuronova/internal/contextutil"
	"neuronova/internal/store"
)

// SleepHandler serves the sleep log endpoints.
type SleepHandler struct {
	store    *store.Store
	appender *store.Appender
}

// NewSleepHandler creates a new SleepHandler.
func NewSleepHandler(s *store.Store, a *store.Appender) *SleepHandler {
	return &SleepHandler{store: s, appender: a}
}

// SleepRequest represents the HTTP request payload for logging sleep.
type SleepRequest struct {
	Hours   float64 `json:"hours"`
	Quality string  `json:"quality"`
	Time    string  `json:"time"`
}

// List handles GET /sleep.
func (h *SleepHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	doc, err := h.store.Load()
	if err != nil {
		logger.ErrorContext(ctx, "failed to load sleep log", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load sleep log")
		return
	}

	writeJSON(w, http.StatusOK, doc.Sleep)
}

// Create handles POST /sleep.
func (h *SleepHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req SleepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.appender.Append(ctx, store.CollectionSleep, store.Fields{
		"hours":   req.Hours,
		"quality": req.Quality,
		"time":    req.Time,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to save sleep record", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save sleep record")
		return
	}

	writeJSON(w, http.StatusOK, SaveResponse{Message: "Sleep saved", Record: rec})
}
