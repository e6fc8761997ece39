package file

import (
	"context"
	"os"

	"github.com/hollandm/funcall/internal/config"
	"github.com/hollandm/funcall/internal/tool/contentutil"
	"github.com/hollandm/funcall/internal/tool/pathutil"
)

// ReadFileTool handles file reading operations.
type ReadFileTool struct {
	resolver *pathutil.Resolver
	config   *config.Config
}

// NewReadFileTool creates a new ReadFileTool.
func NewReadFileTool(resolver *pathutil.Resolver, cfg *config.Config) *ReadFileTool {
	return &ReadFileTool{resolver: resolver, config: cfg}
}

// Run reads a text file from the workspace. It validates the path is within
// the workspace boundary, rejects binary content, enforces the size limit,
// and bounds the returned content to the configured excerpt size so the
// model's context budget is respected.
//
// Note: ctx is accepted for API consistency but not used - file I/O is synchronous.
func (t *ReadFileTool) Run(ctx context.Context, req *ReadFileRequest) (*ReadFileResponse, error) {
	abs, err := t.resolver.Abs(req.FilePath)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, &StatError{Path: req.FilePath, Cause: err}
	}
	if info.IsDir() {
		return nil, &IsDirectoryError{Path: req.FilePath}
	}
	if info.Size() > t.config.Tools.MaxFileSize {
		return nil, &TooLargeError{Path: req.FilePath, Size: info.Size(), Limit: t.config.Tools.MaxFileSize}
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, &ReadError{Path: req.FilePath, Cause: err}
	}
	if contentutil.IsBinaryContent(data) {
		return nil, &BinaryFileError{Path: req.FilePath}
	}

	content := string(data)
	total := len(content)
	truncated := false
	if max := t.config.Tools.ContentExcerptChars; total > max {
		content = content[:max]
		truncated = true
	}

	return &ReadFileResponse{
		FilePath:   req.FilePath,
		Content:    content,
		TotalChars: total,
		Truncated:  truncated,
	}, nil
}
