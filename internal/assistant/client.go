package assistant

import (
	"context"
	"os"
	"time"

	"google.golang.org/genai"

	"github.com/zhubert/facade/internal/errors"
	"github.com/zhubert/facade/internal/logger"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

// DefaultTimeout bounds a single request.
const DefaultTimeout = 60 * time.Second

// Client answers assistant requests.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// GeminiClient calls the Gemini API through google.golang.org/genai.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient reads the API key from the environment variable
// apiKeyEnv and creates a client for model.
func NewGeminiClient(ctx context.Context, apiKeyEnv, model string) (*GeminiClient, error) {
	key := os.Getenv(apiKeyEnv)
	if key == "" {
		return nil, errors.AssistantNotConfigured(apiKeyEnv)
	}
	if model == "" {
		model = DefaultModel
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.E(errors.Op("assistant.NewClient"), errors.KindConfig, err)
	}
	return &GeminiClient{client: c, model: model}, nil
}

// Model returns the model id requests are sent to.
func (g *GeminiClient) Model() string { return g.model }

// Generate sends one request. There is no retry.
func (g *GeminiClient) Generate(ctx context.Context, req Request) (string, error) {
	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", errors.AssistantRequestFailed(g.model, err)
	}
	logger.Debug("Assistant: generation %d answered in %v", req.Generation, time.Since(start))
	return resp.Text(), nil
}

// Unconfigured is used when no API key is available. Every request fails
// with the configuration error, which the session turns into its fixed
// error text.
type Unconfigured struct {
	Err error
}

// Generate always returns u.Err.
func (u Unconfigured) Generate(context.Context, Request) (string, error) {
	return "", u.Err
}

// Run executes req against client with timeout and packages the outcome
// as a Response. It blocks; callers run it inside a tea.Cmd.
func Run(ctx context.Context, client Client, req Request, timeout time.Duration) Response {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text, err := client.Generate(ctx, req)
	if err != nil && ctx.Err() == context.DeadlineExceeded {
		err = errors.E(errors.Op("assistant.Generate"), errors.KindTimeout, err)
	}
	return Response{Generation: req.Generation, Text: text, Err: err}
}
