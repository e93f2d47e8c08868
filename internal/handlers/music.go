package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// playlists maps mood names to curated playlist links.
var playlists = map[string]string{
	"happy":    "https://open.spotify.com/playlist/37i9dQZF1DX3rxVfibe1L0",
	"calm":     "https://open.spotify.com/playlist/37i9dQZF1DWXLeA8Omikj7",
	"sad":      "https://open.spotify.com/playlist/37i9dQZF1DWSqBruwoIXkA",
	"stressed": "https://open.spotify.com/playlist/37i9dQZF1DX3YSRoSdA634",
}

// MusicHandler serves mood-keyed playlist lookups.
type MusicHandler struct{}

// NewMusicHandler creates a new MusicHandler.
func NewMusicHandler() *MusicHandler {
	return &MusicHandler{}
}

// MusicResponse represents the playlist lookup result. Playlist is null
// for moods without a playlist.
type MusicResponse struct {
	Playlist *string `json:"playlist"`
}

// Lookup handles GET /music/{mood}.
func (h *MusicHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	mood := chi.URLParam(r, "mood")

	if url, ok := playlists[mood]; ok {
		writeJSON(w, http.StatusOK, MusicResponse{Playlist: &url})
		return
	}

	writeJSON(w, http.StatusOK, MusicResponse{Playlist: nil})
}
