package shell

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCommand indicates a request without the command argument.
	ErrMissingCommand = errors.New("command parameter required")

	// ErrMissingScriptPath indicates a script request without file_path.
	ErrMissingScriptPath = errors.New("file_path parameter required")

	// ErrCommandNotWhitelisted indicates the executor was handed a command
	// outside the whitelist. The policy check upstream should have denied
	// it; the executor refuses rather than widening the policy.
	ErrCommandNotWhitelisted = errors.New("command not in whitelist")
)

// TimeoutError indicates the process exceeded its time budget.
type TimeoutError struct {
	Name    string
	Seconds int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%q timed out after %d seconds", e.Name, e.Seconds)
}

// ScriptStatError wraps a failure to stat a script path.
type ScriptStatError struct {
	FilePath string
	Cause    error
}

func (e *ScriptStatError) Error() string {
	return fmt.Sprintf("cannot access script %q: %v", e.FilePath, e.Cause)
}

func (e *ScriptStatError) Unwrap() error { return e.Cause }

// NotAScriptError indicates the target is not a runnable Python script.
type NotAScriptError struct {
	FilePath string
	Reason   string
}

func (e *NotAScriptError) Error() string {
	return fmt.Sprintf("%q is not a Python script: %s", e.FilePath, e.Reason)
}

// StartError wraps a failure to start the process at all.
type StartError struct {
	Name  string
	Cause error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("cannot start %q: %v", e.Name, e.Cause)
}

func (e *StartError) Unwrap() error { return e.Cause }
