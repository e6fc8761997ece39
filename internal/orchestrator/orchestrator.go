package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/hollandm/funcall/internal/config"
	"github.com/hollandm/funcall/internal/orchestrator/adapter"
	"github.com/hollandm/funcall/internal/orchestrator/models"
	provider "github.com/hollandm/funcall/internal/provider/models"
	"github.com/hollandm/funcall/internal/ui"
)

// TurnLimitMessage is the synthesized answer when a request burns through
// its function-call budget without the model producing a final answer.
const TurnLimitMessage = "turn limit exceeded: stopped after the configured maximum number of function calls"

// Orchestrator runs the agent loop: it owns the conversation history,
// sends it to the model transport, classifies each response, and
// dispatches approved function calls. History is append-only; each user
// request runs strictly sequentially with at most one function call in
// flight.
type Orchestrator struct {
	provider provider.Provider
	policy   models.PolicyService
	ui       ui.UserInterface
	tools    map[string]adapter.Tool
	config   *config.Config
	history  []models.Turn
}

// New creates an Orchestrator. The history starts empty; callers must
// seed it with StartConversation before the first request.
func New(p provider.Provider, pol models.PolicyService, userInterface ui.UserInterface, tools []adapter.Tool, cfg *config.Config) *Orchestrator {
	toolMap := make(map[string]adapter.Tool, len(tools))
	for _, t := range tools {
		toolMap[t.Name()] = t
	}

	return &Orchestrator{
		provider: p,
		policy:   pol,
		ui:       userInterface,
		tools:    toolMap,
		config:   cfg,
		history:  make([]models.Turn, 0),
	}
}

// StartConversation resets the history to a single system turn carrying
// the active prompt.
func (o *Orchestrator) StartConversation(systemPrompt string) {
	o.history = []models.Turn{
		{Role: models.RoleSystem, Content: systemPrompt},
	}
}

// History returns a copy of the conversation so far.
func (o *Orchestrator) History() []models.Turn {
	snapshot := make([]models.Turn, len(o.history))
	copy(snapshot, o.history)
	return snapshot
}

// HandleRequest runs the agent loop for one user request and returns the
// final answer text. Function failures and policy denials are folded back
// into the conversation so the model can react; only transport failures
// escape as errors.
func (o *Orchestrator) HandleRequest(ctx context.Context, userInput string) (string, error) {
	if len(o.history) == 0 {
		return "", fmt.Errorf("conversation not started")
	}

	o.history = append(o.history, models.Turn{Role: models.RoleUser, Content: userInput})

	functionCalls := 0
	for {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		o.ui.WriteStatus("thinking", "Waiting for the model...")

		raw, err := o.provider.Send(ctx, &provider.ChatRequest{
			Model:   o.config.Model,
			History: o.history,
			Config:  o.config.Generation,
		})
		if err != nil {
			return "", fmt.Errorf("model transport: %w", err)
		}

		call, isCall := ParseFunctionCall(raw)
		if !isCall {
			o.history = append(o.history, models.Turn{Role: models.RoleAssistant, Content: raw})
			return raw, nil
		}

		o.history = append(o.history, models.Turn{Role: models.RoleAssistant, Content: raw})

		result := o.dispatch(ctx, call)
		o.ui.WriteTrace(call.Name, traceSummary(result))

		o.history = append(o.history, models.Turn{
			Role:         models.RoleFunctionResult,
			Content:      truncateResult(result.Text(), o.config.Agent.ResultMaxChars),
			FunctionName: call.Name,
		})

		functionCalls++
		if functionCalls >= o.config.Agent.MaxFunctionCalls {
			o.history = append(o.history, models.Turn{Role: models.RoleAssistant, Content: TurnLimitMessage})
			return TurnLimitMessage, nil
		}
	}
}

// dispatch checks one parsed call against the policy and, only when
// approved, executes it. Every outcome lands in an ExecutionResult; no
// error from this path is fatal.
func (o *Orchestrator) dispatch(ctx context.Context, call models.FunctionCallRequest) models.ExecutionResult {
	decision := o.policy.CheckCall(call)
	if !decision.Allowed {
		return models.ExecutionResult{Success: false, Error: decision.Reason}
	}

	tool, exists := o.tools[call.Name]
	if !exists {
		// The policy snapshot and the tool map are built from the same
		// registry, so this branch only fires on a wiring bug.
		return models.ExecutionResult{Success: false, Error: DenyUnknownFunction}
	}

	o.ui.WriteStatus("executing", fmt.Sprintf("Running %s...", call.Name))

	output, err := tool.Execute(ctx, call.Arguments)
	if err != nil {
		return models.ExecutionResult{Success: false, Error: err.Error()}
	}

	return models.ExecutionResult{Success: true, Output: output}
}

// truncateResult bounds a function result before it enters the
// conversation, preferring to cut at a delimiter near the limit so the
// model sees a clean tail.
func truncateResult(content string, maxChars int) string {
	if maxChars <= 0 || len(content) <= maxChars {
		return content
	}

	truncated := content[:maxChars]
	for _, delimiter := range []string{"\n", ". ", ", ", " "} {
		if idx := strings.LastIndex(truncated, delimiter); idx > maxChars*8/10 {
			truncated = truncated[:idx]
			break
		}
	}

	return fmt.Sprintf("%s... [truncated from %d chars]", truncated, len(content))
}

func traceSummary(result models.ExecutionResult) string {
	if !result.Success {
		return "error: " + result.Error
	}
	summary := result.Output
	if len(summary) > 120 {
		summary = summary[:120] + "..."
	}
	return summary
}
