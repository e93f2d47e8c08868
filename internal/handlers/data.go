package handlers

import (
	"net/http"

	"neuronova/internal/contextutil"
	"neuronova/internal/store"
)

// DataHandler exposes the whole document for client-side hydration.
type DataHandler struct {
	store *store.Store
}

// NewDataHandler creates a new DataHandler.
func NewDataHandler(s *store.Store) *DataHandler {
	return &DataHandler{store: s}
}

// Get handles GET /data.json.
func (h *DataHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	doc, err := h.store.Load()
	if err != nil {
		logger.ErrorContext(ctx, "failed to load document", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load data")
		return
	}

	writeJSON(w, http.StatusOK, doc)
}
