package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hollandm/funcall/internal/orchestrator/models"
	"github.com/invopop/jsonschema"
	"github.com/mitchellh/mapstructure"
)

// Validator is an interface for request types that support validation
type Validator interface {
	Validate() error
}

// ToolExecutor is a function that executes a tool with typed
// request/response, usually a Run method value on a tool struct.
type ToolExecutor[Req, Resp any] func(context.Context, *Req) (*Resp, error)

// BaseAdapter provides common adapter functionality using generics.
// It centralizes argument decoding (mapstructure), request validation,
// execution and response marshaling, so each tool only supplies a typed
// Run function and its metadata. The parameter schema is reflected from
// the request struct's tags rather than written by hand.
type BaseAdapter[Req, Resp any] struct {
	name        string
	description string
	definition  Definition
	policy      models.FunctionPolicy
	executor    ToolExecutor[Req, Resp]
}

func NewBaseAdapter[Req, Resp any](
	name string,
	description string,
	policy models.FunctionPolicy,
	executor ToolExecutor[Req, Resp],
) *BaseAdapter[Req, Resp] {
	reflector := jsonschema.Reflector{DoNotReference: true}
	parameters := reflector.Reflect(new(Req))

	return &BaseAdapter[Req, Resp]{
		name:        name,
		description: description,
		definition: Definition{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
		policy:   policy,
		executor: executor,
	}
}

// Name implements adapter.Tool
func (b *BaseAdapter[Req, Resp]) Name() string {
	return b.name
}

// Description implements adapter.Tool
func (b *BaseAdapter[Req, Resp]) Description() string {
	return b.description
}

// Definition implements adapter.Tool
func (b *BaseAdapter[Req, Resp]) Definition() Definition {
	return b.definition
}

// Policy implements adapter.Tool
func (b *BaseAdapter[Req, Resp]) Policy() models.FunctionPolicy {
	return b.policy
}

// Execute implements adapter.Tool
//
// This method:
// 1. Decodes the args map into a typed request using mapstructure
// 2. Validates the request if it implements Validator interface
// 3. Calls the tool executor function with the typed request
// 4. Marshals the response back to JSON
func (b *BaseAdapter[Req, Resp]) Execute(ctx context.Context, args map[string]any) (string, error) {
	req := new(Req)

	if err := mapstructure.Decode(args, req); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return "", fmt.Errorf("%s validation failed: %w", b.name, err)
		}
	}

	resp, err := b.executor(ctx, req)
	if err != nil {
		return "", err
	}

	bytes, err := json.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}

	return string(bytes), nil
}
