package file

import (
	"errors"
	"fmt"
)

// ErrMissingFilePath indicates a request without the required file_path argument.
var ErrMissingFilePath = errors.New("file_path parameter required")

// StatError wraps a failed stat call.
type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("cannot stat %q: %v", e.Path, e.Cause)
}

func (e *StatError) Unwrap() error { return e.Cause }

// IsDirectoryError indicates a file operation was pointed at a directory.
type IsDirectoryError struct {
	Path string
}

func (e *IsDirectoryError) Error() string {
	return fmt.Sprintf("%q is a directory, not a file", e.Path)
}

// TooLargeError indicates the file exceeds the configured size limit.
type TooLargeError struct {
	Path  string
	Size  int64
	Limit int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("file %q is %d bytes, exceeding the %d byte limit", e.Path, e.Size, e.Limit)
}

// BinaryFileError indicates the file does not look like text.
type BinaryFileError struct {
	Path string
}

func (e *BinaryFileError) Error() string {
	return fmt.Sprintf("cannot read %q: binary file or encoding issue", e.Path)
}

// ReadError wraps a failed read.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read %q: %v", e.Path, e.Cause)
}

func (e *ReadError) Unwrap() error { return e.Cause }

// WriteError wraps a failed write.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %q: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error { return e.Cause }
