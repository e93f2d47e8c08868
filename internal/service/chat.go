package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_llm_client.go -package=mocks neuronova/internal/service LLMClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_service.go -package=mocks -mock_names=ChatService=MockChatService neuronova/internal/service ChatService

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"neuronova/internal/store"
)

// FallbackReply is returned whenever the companion model fails. Chat is
// best-effort: the failure is logged, never surfaced as an error or
// retried.
const FallbackReply = "I'm having trouble gathering my thoughts right now. Please try again in a moment."

// LLMClient is an interface for the companion model, defined from the
// service layer's perspective (consumer-first).
type LLMClient interface {
	// Generate sends a prompt to the model and returns the reply text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProfileSource yields the stored companion profile.
type ProfileSource interface {
	Get() (store.BotProfile, error)
}

// ChatRequest represents a chat request in the domain layer.
type ChatRequest struct {
	Message string `validate:"required"`
}

// ChatResponse represents a chat response in the domain layer.
type ChatResponse struct {
	Reply string
}

// ChatService provides companion chat functionality.
type ChatService interface {
	// Reply processes one chat turn and returns the companion's reply.
	Reply(ctx context.Context, req ChatRequest) (ChatResponse, error)
}

// chatService implements ChatService.
type chatService struct {
	llm      LLMClient
	profiles ProfileSource
	timeout  time.Duration
	logger   *slog.Logger
}

// NewChatService creates a new ChatService. timeout bounds each model
// call; a timed-out call yields the fallback reply.
func NewChatService(llm LLMClient, profiles ProfileSource, timeout time.Duration) ChatService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &chatService{
		llm:      llm,
		profiles: profiles,
		timeout:  timeout,
		logger:   slog.Default(),
	}
}

// Reply processes one chat turn: load the profile, assemble the prompt,
// call the model once. Profile/store failures propagate; model failures
// are converted to the fallback reply.
func (s *chatService) Reply(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		s.logger.WarnContext(ctx, "empty message in chat request")
		return ChatResponse{}, &ValidationError{
			Field:   "message",
			Message: "cannot be empty",
		}
	}

	profile, err := s.profiles.Get()
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load companion profile", "error", err)
		return ChatResponse{}, WrapError(err, "failed to load companion profile")
	}

	prompt := AssemblePrompt(profile, message)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.llm.Generate(callCtx, prompt)
	if err != nil {
		s.logger.ErrorContext(ctx, "companion model call failed", "error", err)
		return ChatResponse{Reply: FallbackReply}, nil
	}

	s.logger.InfoContext(ctx, "chat turn processed", "message_length", len(message), "reply_length", len(reply))
	return ChatResponse{Reply: reply}, nil
}
