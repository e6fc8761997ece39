package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	orchestrator "github.com/hollandm/funcall/internal/orchestrator/models"
	"github.com/hollandm/funcall/internal/provider/models"
)

const providerName = "ollama"

// defaultTimeout bounds one model round trip. Local models can be slow on
// long contexts, so it is generous.
const defaultTimeout = 300 * time.Second

// Client talks to an Ollama server over its native REST API. Function
// calling is text-based: requests carry plain chat messages and the
// model is expected to answer with the JSON wire format when it wants a
// function executed.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Name implements models.Provider.
func (c *Client) Name() string {
	return providerName
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatOptions struct {
	Temperature   float64 `json:"temperature"`
	TopP          float64 `json:"top_p"`
	TopK          int     `json:"top_k"`
	NumPredict    int     `json:"num_predict"`
	RepeatPenalty float64 `json:"repeat_penalty"`
}

type chatPayload struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  chatOptions   `json:"options"`
}

type chatEnvelope struct {
	Message chatMessage `json:"message"`
	Done    bool        `json:"done"`
}

// Send implements models.Provider.
func (c *Client) Send(ctx context.Context, req *models.ChatRequest) (string, error) {
	payload := chatPayload{
		Model:    req.Model,
		Messages: wireMessages(req.History),
		Stream:   false,
		Options: chatOptions{
			Temperature:   req.Config.Temperature,
			TopP:          req.Config.TopP,
			TopK:          req.Config.TopK,
			NumPredict:    req.Config.NumPredict,
			RepeatPenalty: req.Config.RepeatPenalty,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &models.TransportError{Provider: providerName, Message: "encode request", Cause: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", &models.TransportError{Provider: providerName, Message: "build request", Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &models.TransportError{Provider: providerName, Message: "server unreachable", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &models.TransportError{
			Provider:   providerName,
			Message:    "chat request failed: " + string(detail),
			StatusCode: resp.StatusCode,
		}
	}

	var envelope chatEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", &models.TransportError{Provider: providerName, Message: "malformed response envelope", Cause: err}
	}

	return envelope.Message.Content, nil
}

type tagsEnvelope struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// ListModels implements models.Provider.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, &models.TransportError{Provider: providerName, Message: "build request", Cause: err}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &models.TransportError{Provider: providerName, Message: "server unreachable", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &models.TransportError{Provider: providerName, Message: "tags request failed", StatusCode: resp.StatusCode}
	}

	var envelope tagsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &models.TransportError{Provider: providerName, Message: "malformed tags envelope", Cause: err}
	}

	names := make([]string, 0, len(envelope.Models))
	for _, model := range envelope.Models {
		names = append(names, model.Name)
	}
	return names, nil
}

// wireMessages maps conversation turns onto Ollama chat roles. Function
// results ride as user messages with a marker prefix, since the chat API
// has no role for text-based function output.
func wireMessages(history []orchestrator.Turn) []chatMessage {
	messages := make([]chatMessage, 0, len(history))
	for _, turn := range history {
		if turn.Role == orchestrator.RoleFunctionResult {
			messages = append(messages, chatMessage{
				Role:    string(orchestrator.RoleUser),
				Content: "Function result: " + turn.Content,
			})
			continue
		}
		messages = append(messages, chatMessage{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}
	return messages
}
