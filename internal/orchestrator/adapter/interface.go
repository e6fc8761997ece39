package adapter

import (
	"context"

	"github.com/hollandm/funcall/internal/orchestrator/models"
	"github.com/invopop/jsonschema"
)

// Definition is the structured description of one callable function. It is
// rendered into the system prompt so the model knows the function's name
// and parameter shapes.
type Definition struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
}

// Tool represents a capability the agent can use.
// Each tool must be stateless and safe for concurrent use.
type Tool interface {
	// Name returns the unique identifier for this tool
	Name() string

	// Description returns a human-readable description
	Description() string

	// Definition returns the structured definition for the prompt catalog
	Definition() Definition

	// Policy returns the safety metadata the validator needs for this tool
	Policy() models.FunctionPolicy

	// Execute runs the tool with the given arguments
	// Args is a map of argument names to values, as decoded from the model
	Execute(ctx context.Context, args map[string]any) (string, error)
}
