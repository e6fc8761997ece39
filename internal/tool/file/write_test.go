package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hollandm/funcall/internal/config"
	"github.com/hollandm/funcall/internal/tool/pathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_CreatesFile(t *testing.T) {
	resolver := newTestResolver(t)
	tool := NewWriteFileTool(resolver, config.DefaultConfig())

	resp, err := tool.Run(context.Background(), &WriteFileRequest{
		FilePath: "out.txt",
		Content:  "written by test",
	})

	require.NoError(t, err)
	assert.Equal(t, 15, resp.BytesWritten)

	data, err := os.ReadFile(filepath.Join(resolver.Root(), "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "written by test", string(data))
}

func TestWriteFile_CreatesParentDirectories(t *testing.T) {
	resolver := newTestResolver(t)
	tool := NewWriteFileTool(resolver, config.DefaultConfig())

	_, err := tool.Run(context.Background(), &WriteFileRequest{
		FilePath: "deep/nested/dir/file.txt",
		Content:  "x",
	})

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(resolver.Root(), "deep", "nested", "dir", "file.txt"))
}

func TestWriteFile_OverwritesExisting(t *testing.T) {
	resolver := newTestResolver(t)
	tool := NewWriteFileTool(resolver, config.DefaultConfig())

	path := filepath.Join(resolver.Root(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	_, err := tool.Run(context.Background(), &WriteFileRequest{FilePath: "f.txt", Content: "new"})

	require.NoError(t, err)
	data, _ := os.ReadFile(path)
	assert.Equal(t, "new", string(data))
}

func TestWriteFile_RejectsDirectoryTarget(t *testing.T) {
	resolver := newTestResolver(t)
	tool := NewWriteFileTool(resolver, config.DefaultConfig())

	require.NoError(t, os.Mkdir(filepath.Join(resolver.Root(), "sub"), 0o755))

	_, err := tool.Run(context.Background(), &WriteFileRequest{FilePath: "sub", Content: "x"})

	var dirErr *IsDirectoryError
	assert.ErrorAs(t, err, &dirErr)
}

func TestWriteFile_RejectsEscapingPath(t *testing.T) {
	resolver := newTestResolver(t)
	tool := NewWriteFileTool(resolver, config.DefaultConfig())

	_, err := tool.Run(context.Background(), &WriteFileRequest{FilePath: "../../etc/passwd", Content: "x"})

	assert.ErrorIs(t, err, pathutil.ErrParentTraversal)
}
