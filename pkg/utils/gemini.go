package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// PlannerClientInterface is the boundary to the hosted text-generation
// endpoint. Exactly one call per user-initiated generation; no retries.
type PlannerClientInterface interface {
	Generate(ctx context.Context, prompt string, apiKey string) (string, error)
}

// GeminiPlannerClient implements PlannerClientInterface using Google's
// Gemini models.
type GeminiPlannerClient struct {
	model   string
	timeout time.Duration
}

// NewGeminiPlannerClient creates a Gemini-backed planner client.
func NewGeminiPlannerClient(model string) *GeminiPlannerClient {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}
	return &GeminiPlannerClient{
		model:   model,
		timeout: 60 * time.Second,
	}
}

// Generate sends the prompt and returns the raw reply text. A fresh SDK
// client is created per call because the API key can change between calls
// when the user saves a new one mid-session.
func (c *GeminiPlannerClient) Generate(ctx context.Context, prompt string, apiKey string) (string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return "", ErrMissingAPIKey
	}
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: empty prompt", ErrModelProvider)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("%w: create client: %v", ErrModelTransport, err)
	}
	defer client.Close()

	model := client.GenerativeModel(c.model)
	// Force JSON-only output so fence stripping is usually a no-op.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.4)
	model.SetTopP(0.5)
	model.SetTopK(20)
	model.SetMaxOutputTokens(8192)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", fmt.Errorf("%w: %v", ErrModelTransport, err)
		}
		return "", fmt.Errorf("%w: %v", ErrModelProvider, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: no response candidates", ErrModelProvider)
	}

	var textParts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		txt, ok := part.(genai.Text)
		if !ok || strings.TrimSpace(string(txt)) == "" {
			continue
		}
		textParts = append(textParts, string(txt))
	}
	if len(textParts) == 0 {
		return "", fmt.Errorf("%w: empty text parts", ErrModelProvider)
	}

	return strings.Join(textParts, "\n"), nil
}
