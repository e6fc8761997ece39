package pathutil

import (
	"errors"
	"fmt"
)

var (
	// ErrOutsideWorkspace is returned when a path resolves outside the
	// workspace root.
	ErrOutsideWorkspace = errors.New("path resolves outside the workspace root")

	// ErrParentTraversal is returned when a path contains a parent-directory
	// segment before resolution.
	ErrParentTraversal = errors.New("path contains a parent-directory segment")

	// ErrWorkspaceRootNotSet indicates a Resolver was constructed without a root.
	ErrWorkspaceRootNotSet = errors.New("workspace root not set")

	// ErrNotADirectory indicates the workspace root is not a directory.
	ErrNotADirectory = errors.New("workspace root is not a directory")
)

// WorkspaceRootError wraps failures while canonicalising the workspace root.
type WorkspaceRootError struct {
	Root  string
	Cause error
}

func (e *WorkspaceRootError) Error() string {
	return fmt.Sprintf("invalid workspace root %q: %v", e.Root, e.Cause)
}

func (e *WorkspaceRootError) Unwrap() error {
	return e.Cause
}
