package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicaliseRoot(t *testing.T) {
	t.Run("existing directory", func(t *testing.T) {
		dir := t.TempDir()
		root, err := CanonicaliseRoot(dir)
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(root))
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := CanonicaliseRoot(filepath.Join(t.TempDir(), "missing"))
		require.Error(t, err)
		var rootErr *WorkspaceRootError
		assert.ErrorAs(t, err, &rootErr)
	})

	t.Run("file instead of directory", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "f.txt")
		writeTestFile(t, file, "x")
		_, err := CanonicaliseRoot(file)
		assert.ErrorIs(t, err, ErrNotADirectory)
	})
}

func TestResolverAbs(t *testing.T) {
	root, err := CanonicaliseRoot(t.TempDir())
	require.NoError(t, err)
	r := NewResolver(root)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr error
	}{
		{name: "relative child", path: "sub/file.txt", want: filepath.Join(root, "sub", "file.txt")},
		{name: "dot", path: ".", want: root},
		{name: "empty", path: "", want: root},
		{name: "absolute inside root", path: filepath.Join(root, "a.txt"), want: filepath.Join(root, "a.txt")},
		{name: "single parent segment", path: "../etc/passwd", wantErr: ErrParentTraversal},
		{name: "deeply nested parent segments", path: "a/b/c/../../../../../etc/passwd", wantErr: ErrParentTraversal},
		{name: "parent segment that stays inside", path: "sub/../file.txt", wantErr: ErrParentTraversal},
		{name: "absolute outside root", path: "/etc/passwd", wantErr: ErrOutsideWorkspace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Abs(tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolverRel(t *testing.T) {
	root, err := CanonicaliseRoot(t.TempDir())
	require.NoError(t, err)
	r := NewResolver(root)

	rel, err := r.Rel(filepath.Join(root, "sub", "file.txt"))
	require.NoError(t, err)
	assert.Equal(t, "sub/file.txt", rel)

	rel, err = r.Rel(root)
	require.NoError(t, err)
	assert.Equal(t, "", rel)
}

func TestResolverWithoutRoot(t *testing.T) {
	r := NewResolver("")
	_, err := r.Abs("anything")
	assert.ErrorIs(t, err, ErrWorkspaceRootNotSet)
}
