package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

// Config holds settings for the Gemini client.
type Config struct {
	APIKey string
	Model  string
	// Timeout bounds a single generate call. Zero means no bound.
	Timeout time.Duration
}

// Client calls the Gemini generate-content API.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewClient creates a new Gemini client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{client: client, model: model, timeout: cfg.Timeout}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

// Generate sends the prompt to the model and returns its reply text.
// A response without any text is reported as an error so the caller can
// apply its fallback.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text := replyText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini returned no text")
	}
	return text, nil
}

// replyText normalizes the candidate/part response structure into one
// string: first candidate, its text parts concatenated in order.
func replyText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range cand.Content.Parts {
		if part == nil {
			continue
		}
		b.WriteString(part.Text)
	}
	return strings.TrimSpace(b.String())
}
