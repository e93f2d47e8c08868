package handlers

import (
	"encoding/json"
	"net/http"

	"neuronova/internal/contextutil"
	"neuronova/internal/store"
)

// JournalHandler serves the free-form journal endpoints. Entries keep
// whatever shape the client sent.
type JournalHandler struct {
	store    *store.Store
	appender *store.Appender
}

// NewJournalHandler creates a new JournalHandler.
func NewJournalHandler(s *store.Store, a *store.Appender) *JournalHandler {
	return &JournalHandler{store: s, appender: a}
}

// List handles GET /journal.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	doc, err := h.store.Load()
	if err != nil {
		logger.ErrorContext(ctx, "failed to load journals", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load journals")
		return
	}

	writeJSON(w, http.StatusOK, doc.Journals)
}

// Create handles POST /journal.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var entry map[string]any
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.appender.Append(ctx, store.CollectionJournals, store.Fields(entry)); err != nil {
		logger.ErrorContext(ctx, "failed to save journal entry", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save journal entry")
		return
	}

	writeJSON(w, http.StatusOK, SaveResponse{Message: "Journal saved"})
}
