package gitutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// GitignoreReadError is returned when .gitignore cannot be read.
type GitignoreReadError struct {
	Path  string
	Cause error
}

func (e *GitignoreReadError) Error() string {
	return fmt.Sprintf("failed to read .gitignore at %s: %v", e.Path, e.Cause)
}
func (e *GitignoreReadError) Unwrap() error { return e.Cause }

// Service implements gitignore pattern matching using go-git's gitignore matcher.
type Service struct {
	matcher gitignore.Matcher
}

// NewService creates a gitignore matcher by loading .gitignore from the
// workspace root. Returns a matcher that never ignores if .gitignore
// doesn't exist (no error).
func NewService(workspaceRoot string) (*Service, error) {
	gitignorePath := filepath.Join(workspaceRoot, ".gitignore")

	if _, err := os.Stat(gitignorePath); err != nil {
		return &Service{matcher: nil}, nil
	}

	data, err := os.ReadFile(gitignorePath)
	if err != nil {
		return nil, &GitignoreReadError{Path: gitignorePath, Cause: err}
	}

	var patterns []gitignore.Pattern
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}

	// The .git directory itself is never interesting to the model.
	patterns = append(patterns, gitignore.ParsePattern(".git/", nil))

	return &Service{matcher: gitignore.NewMatcher(patterns)}, nil
}

// ShouldIgnore checks if a relative path matches any gitignore patterns.
// Returns false if no .gitignore was loaded.
func (s *Service) ShouldIgnore(relativePath string) bool {
	if s.matcher == nil {
		return relativePath == ".git" || strings.HasPrefix(relativePath, ".git/")
	}
	return s.matcher.Match(splitPath(relativePath), false)
}

// splitPath splits a path into segments for gitignore matching, normalizing
// separators and dropping empty and "." segments.
func splitPath(path string) []string {
	var segments []string
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}
	return segments
}

// NoOpService is a gitignore matcher that never ignores any files.
// Used when gitignore initialization fails.
type NoOpService struct{}

// ShouldIgnore always returns false for NoOpService.
func (NoOpService) ShouldIgnore(relativePath string) bool {
	return false
}
