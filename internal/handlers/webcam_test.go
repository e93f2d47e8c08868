package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"neuronova/internal/store"
)

func snapshotRequest(t *testing.T, fields map[string]string, withFile bool) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if withFile {
		part, err := mw.CreateFormFile("snapshot", "capture.jpg")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write([]byte("jpegbytes")); err != nil {
			t.Fatal(err)
		}
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/webcam", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestWebcamHandler_Create(t *testing.T) {
	s, a := newTestStore(t)
	dir := t.TempDir()
	h := NewWebcamHandler(a, dir)

	w := httptest.NewRecorder()
	h.Create(w, snapshotRequest(t, map[string]string{"estimatedMood": "happy", "notes": "smiling"}, true))

	if w.Code != http.StatusOK {
		t.Fatalf("Create() status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message string             `json:"message"`
		Record  store.WebcamRecord `json:"record"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Snapshot saved" {
		t.Errorf("Create() message = %q, want %q", resp.Message, "Snapshot saved")
	}
	if !strings.HasPrefix(resp.Record.Filename, "snap_") || !strings.HasSuffix(resp.Record.Filename, ".jpg") {
		t.Errorf("Create() filename = %q, want snap_<millis>.jpg", resp.Record.Filename)
	}
	if resp.Record.EstimatedMood != "happy" || resp.Record.Notes != "smiling" {
		t.Errorf("Create() record = %+v", resp.Record)
	}

	// The image must exist on disk under the stored filename.
	saved, err := os.ReadFile(filepath.Join(dir, resp.Record.Filename))
	if err != nil {
		t.Fatalf("stored image missing: %v", err)
	}
	if string(saved) != "jpegbytes" {
		t.Errorf("stored image content = %q, want uploaded bytes", saved)
	}

	// And the record must be in the document.
	doc, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Webcam) != 1 || doc.Webcam[0].Filename != resp.Record.Filename {
		t.Errorf("document webcam = %+v, want the stored record", doc.Webcam)
	}
}

func TestWebcamHandler_MissingSnapshot(t *testing.T) {
	_, a := newTestStore(t)
	h := NewWebcamHandler(a, t.TempDir())

	w := httptest.NewRecorder()
	h.Create(w, snapshotRequest(t, map[string]string{"notes": "no file"}, false))

	if w.Code != http.StatusBadRequest {
		t.Errorf("Create() without snapshot status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestWebcamHandler_DefaultMood(t *testing.T) {
	_, a := newTestStore(t)
	h := NewWebcamHandler(a, t.TempDir())

	w := httptest.NewRecorder()
	h.Create(w, snapshotRequest(t, nil, true))

	var resp struct {
		Record store.WebcamRecord `json:"record"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Record.EstimatedMood != "unlabeled" {
		t.Errorf("Create() estimatedMood = %q, want %q", resp.Record.EstimatedMood, "unlabeled")
	}
}
