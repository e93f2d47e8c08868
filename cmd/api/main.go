package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"neuronova/internal/config"
	"neuronova/internal/http"
	"neuronova/internal/llm"
	"neuronova/internal/service"
	"neuronova/internal/store"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Open the document store
	docStore, err := store.Open(cfg.DataPath)
	if err != nil {
		log.Fatalf("Failed to open document store: %v", err)
	}
	defer docStore.Close()
	slog.Info("Document store ready", "path", cfg.DataPath)

	appender := store.NewAppender(docStore)
	botRepo := store.NewBotRepo(docStore)

	// Create the companion model client (external service layer)
	ctx := context.Background()
	llmClient, err := llm.NewClient(ctx, llm.Config{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		Timeout: cfg.ChatTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	slog.Info("Gemini client ready", "model", llmClient.Model())

	chatService := service.NewChatService(llmClient, botRepo, cfg.ChatTimeout)

	// Create router with dependencies
	deps := &http.Deps{
		Store:       docStore,
		Appender:    appender,
		BotRepo:     botRepo,
		ChatService: chatService,
		WebcamDir:   cfg.WebcamDir,
		ModelName:   llmClient.Model(),
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
