package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"
)

const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/"
	DefaultGeminiModel   = "gemini-3-flash-preview"

	generateTimeout = 30 * time.Second
)

// Generator turns a prompt into model text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiClient generates text through the Gemini API. The SDK client is
// created on first use so a missing key only fails the call, not startup.
type GeminiClient struct {
	baseURL string
	model   string
	apiKey  string

	mu     sync.Mutex
	client *genai.Client
}

func NewGeminiClient(baseURL, model, apiKey string) *GeminiClient {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultGeminiBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiClient{
		baseURL: baseURL,
		model:   model,
		apiKey:  strings.TrimSpace(apiKey),
	}
}

func (c *GeminiClient) sdk(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		return c.client, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      c.apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: c.baseURL},
	})
	if err != nil {
		return nil, err
	}
	c.client = client
	return client, nil
}

// Generate returns the text of the first candidate. A response without
// candidates yields an empty string and no error.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", &ServiceError{Op: "generate", Err: errors.New("api key not configured")}
	}
	client, err := c.sdk(ctx)
	if err != nil {
		return "", &ServiceError{Op: "client", Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", &ServiceError{Op: "generate", Err: err}
	}
	return resp.Text(), nil
}
