package gemini

import (
	"context"
	"strings"

	"google.golang.org/genai"
)

// GeminiClient defines the interface for interacting with the Gemini API.
// This abstraction allows for easier testing and potential future implementations.
type GeminiClient interface {
	// GenerateContent sends a request to the Gemini API and returns the response
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

	// ListModels returns the available gemini model names
	ListModels(ctx context.Context) ([]string, error)
}

// RealGeminiClient wraps the official SDK client to satisfy GeminiClient.
type RealGeminiClient struct {
	client *genai.Client
}

// NewRealGeminiClient creates a client backed by the Gemini API.
func NewRealGeminiClient(ctx context.Context, apiKey string) (*RealGeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &RealGeminiClient{client: client}, nil
}

// GenerateContent calls the SDK's GenerateContent method.
func (c *RealGeminiClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return c.client.Models.GenerateContent(ctx, model, contents, config)
}

// ListModels returns available model names, filtered to the gemini text
// models.
func (c *RealGeminiClient) ListModels(ctx context.Context) ([]string, error) {
	var names []string
	for model, err := range c.client.Models.All(ctx) {
		if err != nil {
			return nil, err
		}
		if strings.HasPrefix(model.Name, "models/gemini-") &&
			!strings.Contains(model.Name, "embedding") &&
			!strings.Contains(model.Name, "image") &&
			!strings.Contains(model.Name, "audio") {
			names = append(names, strings.TrimPrefix(model.Name, "models/"))
		}
	}
	return names, nil
}
