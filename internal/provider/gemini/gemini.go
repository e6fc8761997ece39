package gemini

import (
	"context"

	orchestrator "github.com/hollandm/funcall/internal/orchestrator/models"
	"github.com/hollandm/funcall/internal/provider/models"
	"google.golang.org/genai"
)

const providerName = "gemini"

// Provider implements models.Provider for Google Gemini. Function calling
// stays text-based: the system instruction teaches the model the JSON
// wire format, and native tool declarations are not used.
type Provider struct {
	client GeminiClient
}

func New(client GeminiClient) *Provider {
	return &Provider{client: client}
}

// Name implements models.Provider.
func (p *Provider) Name() string {
	return providerName
}

// Send implements models.Provider.
func (p *Provider) Send(ctx context.Context, req *models.ChatRequest) (string, error) {
	contents, system := toContents(req.History)

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Config.Temperature)),
		TopP:            genai.Ptr(float32(req.Config.TopP)),
		TopK:            genai.Ptr(float32(req.Config.TopK)),
		MaxOutputTokens: int32(req.Config.NumPredict),
	}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := p.client.GenerateContent(ctx, req.Model, contents, config)
	if err != nil {
		return "", &models.TransportError{Provider: providerName, Message: "generate content", Cause: err}
	}

	text := resp.Text()
	if text == "" && len(resp.Candidates) == 0 {
		return "", &models.TransportError{Provider: providerName, Message: "empty response envelope"}
	}
	return text, nil
}

// ListModels implements models.Provider.
func (p *Provider) ListModels(ctx context.Context) ([]string, error) {
	names, err := p.client.ListModels(ctx)
	if err != nil {
		return nil, &models.TransportError{Provider: providerName, Message: "list models", Cause: err}
	}
	return names, nil
}

// toContents maps conversation turns onto Gemini contents. The system
// turn becomes the system instruction; assistant turns use the "model"
// role; function results ride as user text with a marker prefix.
func toContents(history []orchestrator.Turn) ([]*genai.Content, string) {
	var system string
	contents := make([]*genai.Content, 0, len(history))

	for _, turn := range history {
		switch turn.Role {
		case orchestrator.RoleSystem:
			system = turn.Content
		case orchestrator.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(turn.Content, genai.RoleModel))
		case orchestrator.RoleFunctionResult:
			contents = append(contents, genai.NewContentFromText("Function result: "+turn.Content, genai.RoleUser))
		default:
			contents = append(contents, genai.NewContentFromText(turn.Content, genai.RoleUser))
		}
	}

	return contents, system
}
