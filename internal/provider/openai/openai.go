package openai

import (
	"context"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	orchestrator "github.com/hollandm/funcall/internal/orchestrator/models"
	"github.com/hollandm/funcall/internal/provider/models"
)

const providerName = "openai"

// Client implements models.Provider over any OpenAI-compatible chat
// completions endpoint, which includes Ollama's /v1 surface. Sampling
// parameters the protocol does not know (top_k, repeat_penalty) are
// silently dropped.
type Client struct {
	client openai.Client
}

// New creates a client for the given base URL, e.g.
// "http://localhost:11434/v1". The API key may be any non-empty string
// for local servers.
func New(baseURL string, apiKey string, opts ...option.RequestOption) *Client {
	if apiKey == "" {
		apiKey = "unused"
	}
	opts = append([]option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	}, opts...)
	return &Client{client: openai.NewClient(opts...)}
}

// Name implements models.Provider.
func (c *Client) Name() string {
	return providerName
}

// Send implements models.Provider.
func (c *Client) Send(ctx context.Context, req *models.ChatRequest) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(req.Model),
		Messages:    wireMessages(req.History),
		Temperature: openai.Float(req.Config.Temperature),
		TopP:        openai.Float(req.Config.TopP),
	}
	if req.Config.NumPredict > 0 {
		params.MaxTokens = openai.Int(int64(req.Config.NumPredict))
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", &models.TransportError{Provider: providerName, Message: "chat completion", Cause: err}
	}

	if len(completion.Choices) == 0 {
		return "", &models.TransportError{Provider: providerName, Message: "empty response envelope"}
	}
	return completion.Choices[0].Message.Content, nil
}

// ListModels implements models.Provider.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	page, err := c.client.Models.List(ctx)
	if err != nil {
		return nil, &models.TransportError{Provider: providerName, Message: "list models", Cause: err}
	}

	names := make([]string, 0, len(page.Data))
	for _, model := range page.Data {
		names = append(names, model.ID)
	}
	return names, nil
}

func wireMessages(history []orchestrator.Turn) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history))
	for _, turn := range history {
		switch turn.Role {
		case orchestrator.RoleSystem:
			messages = append(messages, openai.SystemMessage(turn.Content))
		case orchestrator.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(turn.Content))
		case orchestrator.RoleFunctionResult:
			messages = append(messages, openai.UserMessage("Function result: "+turn.Content))
		default:
			messages = append(messages, openai.UserMessage(turn.Content))
		}
	}
	return messages
}
