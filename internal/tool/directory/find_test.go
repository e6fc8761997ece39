package directory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hollandm/funcall/internal/config"
	"github.com/hollandm/funcall/internal/tool/gitutil"
	"github.com/hollandm/funcall/internal/tool/pathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFindTool(t *testing.T, cfg *config.Config) (*FindTool, string) {
	t.Helper()
	resolver := newTestResolver(t)
	svc, err := gitutil.NewService(resolver.Root())
	require.NoError(t, err)
	return NewFindTool(resolver, svc, cfg), resolver.Root()
}

func TestFind_DoublestarPattern(t *testing.T) {
	tool, root := newFindTool(t, config.DefaultConfig())
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.go"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "b", "util.go"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "readme.md"), []byte("x"), 0o644))

	resp, err := tool.Run(context.Background(), &FindRequest{Pattern: "**/*.go"})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"main.go", "a/b/util.go"}, resp.Matches)
}

func TestFind_SkipsGitignoredDirectories(t *testing.T) {
	tool, root := newFindTool(t, config.DefaultConfig())
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("vendor/\n"), 0o644))
	// Rebuild the tool so the matcher sees the .gitignore written above.
	resolver := pathutil.NewResolver(root)
	svc, err := gitutil.NewService(root)
	require.NoError(t, err)
	tool = NewFindTool(resolver, svc, config.DefaultConfig())

	require.NoError(t, os.MkdirAll(filepath.Join(root, "vendor", "dep"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "vendor", "dep", "dep.go"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "app.go"), []byte("x"), 0o644))

	resp, err := tool.Run(context.Background(), &FindRequest{Pattern: "**/*.go"})

	require.NoError(t, err)
	assert.Equal(t, []string{"app.go"}, resp.Matches)
}

func TestFind_BoundsResults(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Tools.MaxFindResults = 2
	tool, root := newFindTool(t, cfg)
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644))
	}

	resp, err := tool.Run(context.Background(), &FindRequest{Pattern: "*.txt"})

	require.NoError(t, err)
	assert.Len(t, resp.Matches, 2)
	assert.True(t, resp.Truncated)
}

func TestFind_InvalidPattern(t *testing.T) {
	tool, _ := newFindTool(t, config.DefaultConfig())

	_, err := tool.Run(context.Background(), &FindRequest{Pattern: "[unclosed"})

	var badPattern *BadPatternError
	assert.ErrorAs(t, err, &badPattern)
}

func TestFindRequest_Validate(t *testing.T) {
	assert.ErrorIs(t, (&FindRequest{}).Validate(), ErrMissingPattern)
	assert.NoError(t, (&FindRequest{Pattern: "*.go"}).Validate())
}
