package orchestrator

import (
	"fmt"
	"sort"

	"github.com/hollandm/funcall/internal/orchestrator/adapter"
	"github.com/hollandm/funcall/internal/orchestrator/models"
)

// Registry is the closed set of callable functions, resolved once at
// startup. Unknown-name handling everywhere else is a single lookup miss
// against this set.
type Registry struct {
	tools  []adapter.Tool
	byName map[string]adapter.Tool
}

// NewRegistry builds a registry from the given tools. Duplicate names are
// a wiring bug and rejected outright.
func NewRegistry(tools ...adapter.Tool) (*Registry, error) {
	byName := make(map[string]adapter.Tool, len(tools))
	for _, tool := range tools {
		if _, exists := byName[tool.Name()]; exists {
			return nil, fmt.Errorf("duplicate function name %q", tool.Name())
		}
		byName[tool.Name()] = tool
	}
	return &Registry{tools: tools, byName: byName}, nil
}

// Lookup resolves a function name to its tool.
func (r *Registry) Lookup(name string) (adapter.Tool, bool) {
	tool, ok := r.byName[name]
	return tool, ok
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []adapter.Tool {
	return r.tools
}

// Names returns the sorted function names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns the prompt catalog entries in registration order.
func (r *Registry) Definitions() []adapter.Definition {
	definitions := make([]adapter.Definition, 0, len(r.tools))
	for _, tool := range r.tools {
		definitions = append(definitions, tool.Definition())
	}
	return definitions
}

// Policies returns the per-function safety metadata snapshot the
// validator is constructed from.
func (r *Registry) Policies() map[string]models.FunctionPolicy {
	policies := make(map[string]models.FunctionPolicy, len(r.tools))
	for _, tool := range r.tools {
		policies[tool.Name()] = tool.Policy()
	}
	return policies
}
