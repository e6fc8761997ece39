package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolver provides path resolution within a workspace boundary.
type Resolver struct {
	workspaceRoot string
}

// NewResolver creates a new path resolver for the given canonical workspace root.
func NewResolver(workspaceRoot string) *Resolver {
	return &Resolver{workspaceRoot: workspaceRoot}
}

// Root returns the canonical workspace root.
func (r *Resolver) Root() string {
	return r.workspaceRoot
}

// CanonicaliseRoot canonicalises a workspace root path by making it absolute
// and resolving symlinks. Returns an error if the path doesn't exist or
// isn't a directory.
func CanonicaliseRoot(root string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", &WorkspaceRootError{Root: root, Cause: err}
	}

	resolved, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return "", &WorkspaceRootError{Root: absRoot, Cause: err}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", &WorkspaceRootError{Root: resolved, Cause: err}
	}
	if !info.IsDir() {
		return "", &WorkspaceRootError{Root: resolved, Cause: fmt.Errorf("%w: %s", ErrNotADirectory, resolved)}
	}
	return resolved, nil
}

// HasParentSegment reports whether the raw, uncleaned path contains a ".."
// segment. Checked before any cleaning so "a/../../b" is caught even when
// it would clean to something harmless-looking.
func HasParentSegment(path string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(path), "/") {
		if seg == ".." {
			return true
		}
	}
	return false
}

// Abs resolves a path to absolute and validates it is within the workspace
// boundary. Paths with parent-directory segments are rejected outright.
func (r *Resolver) Abs(path string) (string, error) {
	if r.workspaceRoot == "" {
		return "", ErrWorkspaceRootNotSet
	}

	if HasParentSegment(path) {
		return "", ErrParentTraversal
	}

	var abs string
	if filepath.IsAbs(path) {
		abs = filepath.Clean(path)
	} else {
		abs = filepath.Clean(filepath.Join(r.workspaceRoot, path))
	}

	// Boundary check: must be the root itself or a child of the root
	if abs != r.workspaceRoot && !strings.HasPrefix(abs, r.workspaceRoot+string(filepath.Separator)) {
		return "", ErrOutsideWorkspace
	}

	return abs, nil
}

// Rel resolves a path to relative to the workspace root, validating the
// boundary on the way.
func (r *Resolver) Rel(path string) (string, error) {
	abs, err := r.Abs(path)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(r.workspaceRoot, abs)
	if err != nil {
		return "", ErrOutsideWorkspace
	}

	if rel == "." {
		return "", nil
	}

	return filepath.ToSlash(rel), nil
}
