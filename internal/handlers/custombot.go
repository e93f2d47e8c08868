package handlers

import (
	"encoding/json"
	"net/http"

	"neuronova/internal/contextutil"
	"neuronova/internal/store"
)

// CustomBotHandler serves the companion profile endpoints.
type CustomBotHandler struct {
	bots *store.BotRepo
}

// NewCustomBotHandler creates a new CustomBotHandler.
func NewCustomBotHandler(bots *store.BotRepo) *CustomBotHandler {
	return &CustomBotHandler{bots: bots}
}

// CustomBotRequest represents the HTTP request payload for saving the
// companion profile.
type CustomBotRequest struct {
	Personality  string `json:"personality"`
	Tone         string `json:"tone"`
	Instructions string `json:"instructions"`
}

// CustomBotResponse is the envelope returned after saving the profile.
type CustomBotResponse struct {
	Message   string           `json:"message"`
	CustomBot store.BotProfile `json:"customBot"`
}

// Get handles GET /custom-bot.
func (h *CustomBotHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	profile, err := h.bots.Get()
	if err != nil {
		logger.ErrorContext(ctx, "failed to load custom bot", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load custom bot")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Save handles POST /custom-bot.
func (h *CustomBotHandler) Save(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req CustomBotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.bots.Set(ctx, store.BotProfile{
		Personality:  req.Personality,
		Tone:         req.Tone,
		Instructions: req.Instructions,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to save custom bot", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save custom bot")
		return
	}

	writeJSON(w, http.StatusOK, CustomBotResponse{Message: "Custom bot saved!", CustomBot: saved})
}
