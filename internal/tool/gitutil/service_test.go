package gitutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_NoGitignore(t *testing.T) {
	svc, err := NewService(t.TempDir())
	require.NoError(t, err)

	assert.False(t, svc.ShouldIgnore("main.go"))
	assert.True(t, svc.ShouldIgnore(".git/config"))
}

func TestService_MatchesPatterns(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("*.log\nnode_modules/\n"), 0o644))

	svc, err := NewService(root)
	require.NoError(t, err)

	assert.True(t, svc.ShouldIgnore("debug.log"))
	assert.True(t, svc.ShouldIgnore("sub/dir/trace.log"))
	assert.True(t, svc.ShouldIgnore("node_modules/pkg/index.js"))
	assert.True(t, svc.ShouldIgnore(".git/HEAD"))
	assert.False(t, svc.ShouldIgnore("main.go"))
}

func TestNoOpService(t *testing.T) {
	assert.False(t, NoOpService{}.ShouldIgnore("anything"))
}
