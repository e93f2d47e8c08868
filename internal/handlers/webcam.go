package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"neuronova/internal/contextutil"
	"neuronova/internal/store"
)

// maxSnapshotBytes caps in-memory parsing of the multipart form.
const maxSnapshotBytes = 10 << 20

// WebcamHandler accepts webcam snapshot uploads. Images are written to
// a directory beside the data file; the document only stores the
// filename.
type WebcamHandler struct {
	appender *store.Appender
	dir      string
	now      func() time.Time
}

// NewWebcamHandler creates a new WebcamHandler storing images in dir.
func NewWebcamHandler(a *store.Appender, dir string) *WebcamHandler {
	return &WebcamHandler{appender: a, dir: dir, now: time.Now}
}

// Create handles POST /webcam.
func (h *WebcamHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if err := r.ParseMultipartForm(maxSnapshotBytes); err != nil {
		logger.WarnContext(ctx, "invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, _, err := r.FormFile("snapshot")
	if err != nil {
		logger.WarnContext(ctx, "missing snapshot file", "error", err)
		writeError(w, http.StatusBadRequest, "Snapshot file is required")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	name := fmt.Sprintf("snap_%d.jpg", h.now().UnixMilli())
	path := filepath.Join(h.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		logger.ErrorContext(ctx, "failed to create snapshot file", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save snapshot")
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		_ = dst.Close()
		_ = os.Remove(path)
		logger.ErrorContext(ctx, "failed to write snapshot file", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save snapshot")
		return
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		logger.ErrorContext(ctx, "failed to close snapshot file", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save snapshot")
		return
	}

	rec, err := h.appender.Append(ctx, store.CollectionWebcam, store.Fields{
		"filename":      name,
		"estimatedMood": r.FormValue("estimatedMood"),
		"notes":         r.FormValue("notes"),
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to save snapshot record", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save snapshot")
		return
	}

	writeJSON(w, http.StatusOK, SaveResponse{Message: "Snapshot saved", Record: rec})
}
