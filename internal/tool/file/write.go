package file

import (
	"context"
	"os"
	"path/filepath"

	"github.com/hollandm/funcall/internal/config"
	"github.com/hollandm/funcall/internal/tool/pathutil"
)

// WriteFileTool handles file creation and overwriting.
type WriteFileTool struct {
	resolver *pathutil.Resolver
	config   *config.Config
}

// NewWriteFileTool creates a new WriteFileTool.
func NewWriteFileTool(resolver *pathutil.Resolver, cfg *config.Config) *WriteFileTool {
	return &WriteFileTool{resolver: resolver, config: cfg}
}

// Run writes content to a file inside the workspace, creating parent
// directories as needed. Existing files are overwritten.
func (t *WriteFileTool) Run(ctx context.Context, req *WriteFileRequest) (*WriteFileResponse, error) {
	abs, err := t.resolver.Abs(req.FilePath)
	if err != nil {
		return nil, err
	}

	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		return nil, &IsDirectoryError{Path: req.FilePath}
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, &WriteError{Path: req.FilePath, Cause: err}
	}

	if err := os.WriteFile(abs, []byte(req.Content), 0o644); err != nil {
		return nil, &WriteError{Path: req.FilePath, Cause: err}
	}

	return &WriteFileResponse{
		FilePath:     req.FilePath,
		BytesWritten: len(req.Content),
	}, nil
}
