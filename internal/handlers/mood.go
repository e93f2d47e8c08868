package handlers

import (
	"encoding/json"
	"net/http"

	"neuronova/internal/contextutil"
	"neuronova/internal/store"
)

// MoodHandler serves the mood log endpoints.
type MoodHandler struct {
	store    *store.Store
	appender *store.Appender
}

// NewMoodHandler creates a new MoodHandler.
func NewMoodHandler(s *store.Store, a *store.Appender) *MoodHandler {
	return &MoodHandler{store: s, appender: a}
}

// MoodRequest represents the HTTP request payload for logging a mood.
type MoodRequest struct {
	Mood string `json:"mood"`
	Note string `json:"note"`
	Time string `json:"time"`
}

// List handles GET /mood.
func (h *MoodHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	doc, err := h.store.Load()
	if err != nil {
		logger.ErrorContext(ctx, "failed to load moods", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load moods")
		return
	}

	writeJSON(w, http.StatusOK, doc.Moods)
}

// Create handles POST /mood.
func (h *MoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req MoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.appender.Append(ctx, store.CollectionMoods, store.Fields{
		"mood": req.Mood,
		"note": req.Note,
		"time": req.Time,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to save mood", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save mood")
		return
	}

	writeJSON(w, http.StatusOK, SaveResponse{Message: "Mood saved", Record: rec})
}
