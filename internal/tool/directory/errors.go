package directory

import (
	"errors"
	"fmt"
)

// ErrMissingPattern indicates a find request without a pattern.
var ErrMissingPattern = errors.New("pattern parameter required")

// NotFoundError indicates the requested directory does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("directory %q not found", e.Path)
}

// NotADirectoryError indicates the path exists but is not a directory.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("%q is not a directory", e.Path)
}

// BadPatternError wraps an invalid glob pattern.
type BadPatternError struct {
	Pattern string
	Cause   error
}

func (e *BadPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Cause)
}

func (e *BadPatternError) Unwrap() error { return e.Cause }
