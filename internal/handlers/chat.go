package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"neuronova/internal/contextutil"
	"neuronova/internal/service"
)

// ChatHandler handles HTTP requests for companion chat.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest represents the HTTP request payload for chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse represents the HTTP response payload for chat.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// Reply handles POST /chat.
func (h *ChatHandler) Reply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.chatService.Reply(ctx, service.ChatRequest{Message: req.Message})
	if err != nil {
		h.handleServiceError(w, ctx, err)
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{Reply: resp.Reply})
}

// handleServiceError maps service errors to HTTP status codes.
func (h *ChatHandler) handleServiceError(w http.ResponseWriter, ctx context.Context, err error) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "chat service error", "error", err)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	if errors.Is(err, service.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	writeError(w, http.StatusInternalServerError, "Chat failed. Check server logs.")
}
