package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hollandm/funcall/internal/config"
	orchestrator "github.com/hollandm/funcall/internal/orchestrator/models"
	"github.com/hollandm/funcall/internal/provider/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChatRequest(history ...orchestrator.Turn) *models.ChatRequest {
	return &models.ChatRequest{
		Model:   "qwen2.5-coder:7b",
		History: history,
		Config:  config.DefaultConfig().Generation,
	}
}

func TestSend_ReturnsAssistantText(t *testing.T) {
	var captured chatPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(chatEnvelope{
			Message: chatMessage{Role: "assistant", Content: "hello back"},
			Done:    true,
		})
	}))
	defer server.Close()

	client := New(server.URL, nil)
	text, err := client.Send(context.Background(), testChatRequest(
		orchestrator.Turn{Role: orchestrator.RoleSystem, Content: "be helpful"},
		orchestrator.Turn{Role: orchestrator.RoleUser, Content: "hi"},
	))

	require.NoError(t, err)
	assert.Equal(t, "hello back", text)
	assert.Equal(t, "qwen2.5-coder:7b", captured.Model)
	assert.False(t, captured.Stream)
	assert.InDelta(t, 0.1, captured.Options.Temperature, 0.0001)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
}

func TestSend_FunctionResultsRideAsUserMessages(t *testing.T) {
	var captured chatPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(chatEnvelope{Message: chatMessage{Content: "ok"}})
	}))
	defer server.Close()

	client := New(server.URL, nil)
	_, err := client.Send(context.Background(), testChatRequest(
		orchestrator.Turn{Role: orchestrator.RoleFunctionResult, Content: "file written", FunctionName: "write_file"},
	))

	require.NoError(t, err)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
	assert.Equal(t, "Function result: file written", captured.Messages[0].Content)
}

func TestSend_NonSuccessStatusIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := New(server.URL, nil)
	_, err := client.Send(context.Background(), testChatRequest())

	require.Error(t, err)
	var transportErr *models.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusNotFound, transportErr.StatusCode)
}

func TestSend_UnreachableServerIsTransportError(t *testing.T) {
	client := New("http://127.0.0.1:1", nil)

	_, err := client.Send(context.Background(), testChatRequest())

	assert.True(t, models.IsTransport(err))
}

func TestSend_MalformedEnvelopeIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := New(server.URL, nil)
	_, err := client.Send(context.Background(), testChatRequest())

	assert.True(t, models.IsTransport(err))
}

func TestListModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
		w.Write([]byte(`{"models": [{"name": "qwen2.5-coder:7b"}, {"name": "llama3.2:3b"}]}`))
	}))
	defer server.Close()

	client := New(server.URL, nil)
	names, err := client.ListModels(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"qwen2.5-coder:7b", "llama3.2:3b"}, names)
}
