package handlers

import (
	"net/http"
	"time"

	"neuronova/internal/contextutil"
	"neuronova/internal/store"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	store *store.Store
	model string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(s *store.Store, model string) *HealthHandler {
	return &HealthHandler{store: s, model: model}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy" or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`
}

// Check handles GET /api/health. It verifies the document store is
// readable; the companion model is not probed to avoid request latency
// and quota burn.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	checks := map[string]string{
		"model": h.model,
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if _, err := h.store.Load(); err != nil {
		logger.WarnContext(ctx, "store health check failed", "error", err)
		checks["store"] = "error"
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["store"] = "ok"
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	})
}
