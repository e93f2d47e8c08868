// Package handlers contains the HTTP endpoints for the wellness
// journal: mood, sleep, journal, webcam and companion-bot routes.
package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SaveResponse is the envelope returned by record-creating endpoints.
type SaveResponse struct {
	Message string `json:"message"`
	Record  any    `json:"record,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Error: message})
}
