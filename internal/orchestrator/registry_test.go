package orchestrator

import (
	"testing"

	"github.com/hollandm/funcall/internal/orchestrator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_LookupAndNames(t *testing.T) {
	registry, err := NewRegistry(
		&mockTool{name: "write_file"},
		&mockTool{name: "get_file_content"},
	)
	require.NoError(t, err)

	_, found := registry.Lookup("write_file")
	assert.True(t, found)

	_, found = registry.Lookup("delete_everything")
	assert.False(t, found)

	assert.Equal(t, []string{"get_file_content", "write_file"}, registry.Names())
}

func TestRegistry_RejectsDuplicateNames(t *testing.T) {
	_, err := NewRegistry(
		&mockTool{name: "write_file"},
		&mockTool{name: "write_file"},
	)

	assert.Error(t, err)
}

func TestRegistry_PoliciesSnapshot(t *testing.T) {
	registry, err := NewRegistry(&mockTool{name: "write_file"})
	require.NoError(t, err)

	policies := registry.Policies()

	require.Len(t, policies, 1)
	assert.Equal(t, models.FunctionPolicy{}, policies["write_file"])
}
