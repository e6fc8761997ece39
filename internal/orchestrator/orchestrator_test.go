package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hollandm/funcall/internal/config"
	"github.com/hollandm/funcall/internal/orchestrator/adapter"
	"github.com/hollandm/funcall/internal/orchestrator/models"
	provider "github.com/hollandm/funcall/internal/provider/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	SendFunc  func(ctx context.Context, req *provider.ChatRequest) (string, error)
	sendCalls int
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Send(ctx context.Context, req *provider.ChatRequest) (string, error) {
	m.sendCalls++
	return m.SendFunc(ctx, req)
}

func (m *mockProvider) ListModels(ctx context.Context) ([]string, error) {
	return nil, nil
}

// scriptedProvider returns each response in order, then repeats the last.
func scriptedProvider(responses ...string) *mockProvider {
	i := 0
	return &mockProvider{
		SendFunc: func(ctx context.Context, req *provider.ChatRequest) (string, error) {
			if i >= len(responses) {
				return responses[len(responses)-1], nil
			}
			response := responses[i]
			i++
			return response, nil
		},
	}
}

type mockPolicy struct {
	CheckCallFunc func(req models.FunctionCallRequest) models.Decision
}

func (m *mockPolicy) CheckCall(req models.FunctionCallRequest) models.Decision {
	if m.CheckCallFunc == nil {
		return models.Allow()
	}
	return m.CheckCallFunc(req)
}

type mockUI struct {
	messages []string
	traces   []string
}

func (m *mockUI) ReadInput(ctx context.Context, prompt string) (string, error) { return "", nil }
func (m *mockUI) WriteStatus(phase string, message string)                     {}
func (m *mockUI) WriteMessage(content string)                                  { m.messages = append(m.messages, content) }
func (m *mockUI) WriteTrace(functionName string, summary string) {
	m.traces = append(m.traces, functionName+": "+summary)
}

type mockTool struct {
	name        string
	ExecuteFunc func(ctx context.Context, args map[string]any) (string, error)
	executions  int
}

func (m *mockTool) Name() string        { return m.name }
func (m *mockTool) Description() string { return "mock tool" }
func (m *mockTool) Definition() adapter.Definition {
	return adapter.Definition{Name: m.name, Description: "mock tool"}
}
func (m *mockTool) Policy() models.FunctionPolicy { return models.FunctionPolicy{} }

func (m *mockTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	m.executions++
	if m.ExecuteFunc == nil {
		return "ok", nil
	}
	return m.ExecuteFunc(ctx, args)
}

func newTestOrchestrator(p provider.Provider, pol models.PolicyService, tools ...adapter.Tool) *Orchestrator {
	o := New(p, pol, &mockUI{}, tools, config.DefaultConfig())
	o.StartConversation("you are a test agent")
	return o
}

const writeCall = `{"function_call": {"name": "write_file", "arguments": {"file_path": "a.txt", "content": "hi"}}}`

func TestHandleRequest_PlainAnswerEndsFirstCycle(t *testing.T) {
	p := scriptedProvider("I think you should refactor this function.")
	o := newTestOrchestrator(p, &mockPolicy{})

	answer, err := o.HandleRequest(context.Background(), "any advice?")

	require.NoError(t, err)
	assert.Equal(t, "I think you should refactor this function.", answer)
	assert.Equal(t, 1, p.sendCalls)

	history := o.History()
	require.Len(t, history, 3)
	assert.Equal(t, models.RoleSystem, history[0].Role)
	assert.Equal(t, models.RoleUser, history[1].Role)
	assert.Equal(t, models.RoleAssistant, history[2].Role)
}

func TestHandleRequest_FunctionCallDispatchedThenAnswer(t *testing.T) {
	tool := &mockTool{name: "write_file", ExecuteFunc: func(ctx context.Context, args map[string]any) (string, error) {
		assert.Equal(t, "a.txt", args["file_path"])
		return `{"file_path": "a.txt", "bytes_written": 2}`, nil
	}}
	p := scriptedProvider(writeCall, "done, the file is written")
	o := newTestOrchestrator(p, &mockPolicy{}, tool)

	answer, err := o.HandleRequest(context.Background(), "write hi to a.txt")

	require.NoError(t, err)
	assert.Equal(t, "done, the file is written", answer)
	assert.Equal(t, 1, tool.executions)

	history := o.History()
	require.Len(t, history, 5)
	assert.Equal(t, models.RoleAssistant, history[2].Role)
	assert.Equal(t, writeCall, history[2].Content)
	assert.Equal(t, models.RoleFunctionResult, history[3].Role)
	assert.Equal(t, "write_file", history[3].FunctionName)
	assert.Contains(t, history[3].Content, "bytes_written")
}

func TestHandleRequest_DeniedCallNeverExecutes(t *testing.T) {
	tool := &mockTool{name: "write_file"}
	policy := &mockPolicy{CheckCallFunc: func(req models.FunctionCallRequest) models.Decision {
		return models.Deny(DenyPathTraversal)
	}}
	p := scriptedProvider(writeCall, "understood, I will not do that")
	o := newTestOrchestrator(p, policy, tool)

	answer, err := o.HandleRequest(context.Background(), "write to ../../etc/passwd")

	require.NoError(t, err)
	assert.Equal(t, "understood, I will not do that", answer)
	assert.Zero(t, tool.executions)

	history := o.History()
	result := history[3]
	assert.Equal(t, models.RoleFunctionResult, result.Role)
	assert.Equal(t, "Error: path traversal", result.Content)
}

func TestHandleRequest_UnknownFunctionFoldedBack(t *testing.T) {
	policy := &mockPolicy{CheckCallFunc: func(req models.FunctionCallRequest) models.Decision {
		return models.Deny(DenyUnknownFunction)
	}}
	p := scriptedProvider(
		`{"function_call": {"name": "delete_everything", "arguments": {}}}`,
		"that function does not exist",
	)
	o := newTestOrchestrator(p, policy)

	answer, err := o.HandleRequest(context.Background(), "clean up")

	require.NoError(t, err)
	assert.Equal(t, "that function does not exist", answer)
	assert.Contains(t, o.History()[3].Content, "unknown function")
}

func TestHandleRequest_ExecutionFailureIsRecoverable(t *testing.T) {
	tool := &mockTool{name: "write_file", ExecuteFunc: func(ctx context.Context, args map[string]any) (string, error) {
		return "", errors.New("disk full")
	}}
	p := scriptedProvider(writeCall, "the disk seems to be full")
	o := newTestOrchestrator(p, &mockPolicy{}, tool)

	answer, err := o.HandleRequest(context.Background(), "write it")

	require.NoError(t, err)
	assert.Equal(t, "the disk seems to be full", answer)
	assert.Equal(t, "Error: disk full", o.History()[3].Content)
}

func TestHandleRequest_TransportErrorIsFatal(t *testing.T) {
	p := &mockProvider{SendFunc: func(ctx context.Context, req *provider.ChatRequest) (string, error) {
		return "", &provider.TransportError{Provider: "mock", Message: "server unreachable"}
	}}
	o := newTestOrchestrator(p, &mockPolicy{})

	_, err := o.HandleRequest(context.Background(), "hello")

	require.Error(t, err)
	assert.True(t, provider.IsTransport(err))
}

func TestHandleRequest_TurnLimitForcesAnswer(t *testing.T) {
	tool := &mockTool{name: "write_file"}
	p := scriptedProvider(writeCall)
	o := New(p, &mockPolicy{}, &mockUI{}, []adapter.Tool{tool}, config.DefaultConfig())
	o.StartConversation("system")

	answer, err := o.HandleRequest(context.Background(), "loop forever")

	require.NoError(t, err)
	assert.Equal(t, TurnLimitMessage, answer)
	limit := config.DefaultConfig().Agent.MaxFunctionCalls
	assert.Equal(t, limit, p.sendCalls)
	assert.Equal(t, limit, tool.executions)
}

func TestHandleRequest_HistoryIsAppendOnly(t *testing.T) {
	p := scriptedProvider(writeCall, "done")
	tool := &mockTool{name: "write_file"}
	o := newTestOrchestrator(p, &mockPolicy{}, tool)

	_, err := o.HandleRequest(context.Background(), "first")
	require.NoError(t, err)
	before := o.History()

	_, err = o.HandleRequest(context.Background(), "second")
	require.NoError(t, err)
	after := o.History()

	require.Greater(t, len(after), len(before))
	assert.Equal(t, before, after[:len(before)])
}

func TestHandleRequest_RequiresStartedConversation(t *testing.T) {
	o := New(scriptedProvider("hi"), &mockPolicy{}, &mockUI{}, nil, config.DefaultConfig())

	_, err := o.HandleRequest(context.Background(), "hello")

	assert.Error(t, err)
}

func TestTruncateResult(t *testing.T) {
	t.Run("short content untouched", func(t *testing.T) {
		assert.Equal(t, "short", truncateResult("short", 100))
	})

	t.Run("long content cut at delimiter", func(t *testing.T) {
		content := strings.Repeat("line of output\n", 100)
		truncated := truncateResult(content, 200)

		assert.Less(t, len(truncated), len(content))
		assert.Contains(t, truncated, "[truncated from")
		assert.NotContains(t, truncated, "line of output\n... [")
	})

	t.Run("zero limit disables truncation", func(t *testing.T) {
		long := strings.Repeat("x", 10000)
		assert.Equal(t, long, truncateResult(long, 0))
	})
}
