package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"neuronova/internal/store"
)

func TestCustomBotHandler_GetDefault(t *testing.T) {
	s, _ := newTestStore(t)
	h := NewCustomBotHandler(store.NewBotRepo(s))

	w := httptest.NewRecorder()
	h.Get(w, httptest.NewRequest(http.MethodGet, "/custom-bot", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Get() status = %d, want %d", w.Code, http.StatusOK)
	}

	var profile store.BotProfile
	if err := json.NewDecoder(w.Body).Decode(&profile); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if profile != (store.BotProfile{}) {
		t.Errorf("Get() = %+v, want all-empty default", profile)
	}
}

func TestCustomBotHandler_SaveThenGet(t *testing.T) {
	s, _ := newTestStore(t)
	h := NewCustomBotHandler(store.NewBotRepo(s))

	body := `{"personality": "playful", "tone": "upbeat", "instructions": "Celebrate small wins."}`
	w := httptest.NewRecorder()
	h.Save(w, httptest.NewRequest(http.MethodPost, "/custom-bot", strings.NewReader(body)))

	if w.Code != http.StatusOK {
		t.Fatalf("Save() status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp CustomBotResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Custom bot saved!" {
		t.Errorf("Save() message = %q, want %q", resp.Message, "Custom bot saved!")
	}
	if resp.CustomBot.Personality != "playful" {
		t.Errorf("Save() customBot = %+v", resp.CustomBot)
	}

	w = httptest.NewRecorder()
	h.Get(w, httptest.NewRequest(http.MethodGet, "/custom-bot", nil))

	var profile store.BotProfile
	if err := json.NewDecoder(w.Body).Decode(&profile); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := store.BotProfile{Personality: "playful", Tone: "upbeat", Instructions: "Celebrate small wins."}
	if profile != want {
		t.Errorf("Get() after save = %+v, want %+v", profile, want)
	}
}

func TestCustomBotHandler_SaveInvalidBody(t *testing.T) {
	s, _ := newTestStore(t)
	h := NewCustomBotHandler(store.NewBotRepo(s))

	w := httptest.NewRecorder()
	h.Save(w, httptest.NewRequest(http.MethodPost, "/custom-bot", strings.NewReader("{")))

	if w.Code != http.StatusBadRequest {
		t.Errorf("Save() status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
