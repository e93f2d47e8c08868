package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"neuronova/internal/handlers"
	"neuronova/internal/service"
	"neuronova/internal/store"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Store       *store.Store
	Appender    *store.Appender
	BotRepo     *store.BotRepo
	ChatService service.ChatService
	WebcamDir   string
	ModelName   string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(CORS)
	r.Use(LoggerMiddleware)

	mood := handlers.NewMoodHandler(deps.Store, deps.Appender)
	sleep := handlers.NewSleepHandler(deps.Store, deps.Appender)
	journal := handlers.NewJournalHandler(deps.Store, deps.Appender)
	journalView := handlers.NewJournalViewHandler(deps.Store)
	bot := handlers.NewCustomBotHandler(deps.BotRepo)
	music := handlers.NewMusicHandler()
	webcam := handlers.NewWebcamHandler(deps.Appender, deps.WebcamDir)
	chat := handlers.NewChatHandler(deps.ChatService)
	data := handlers.NewDataHandler(deps.Store)
	health := handlers.NewHealthHandler(deps.Store, deps.ModelName)

	r.Get("/mood", mood.List)
	r.Post("/mood", mood.Create)

	r.Get("/sleep", sleep.List)
	r.Post("/sleep", sleep.Create)

	r.Get("/journal", journal.List)
	r.Post("/journal", journal.Create)
	r.Get("/journal/view", journalView.Page)

	r.Get("/custom-bot", bot.Get)
	r.Post("/custom-bot", bot.Save)

	r.Get("/music/{mood}", music.Lookup)

	r.Post("/webcam", webcam.Create)

	r.Post("/chat", chat.Reply)

	r.Get("/data.json", data.Get)
	r.Get("/api/health", health.Check)

	// Stored snapshot images referenced by webcam records.
	images := http.StripPrefix("/webcam_images/", http.FileServer(http.Dir(deps.WebcamDir)))
	r.Get("/webcam_images/*", images.ServeHTTP)

	return r
}
