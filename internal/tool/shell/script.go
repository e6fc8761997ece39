package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/hollandm/funcall/internal/config"
	"github.com/hollandm/funcall/internal/tool/pathutil"
)

// pythonInterpreter is resolved from PATH at execution time.
const pythonInterpreter = "python3"

// ScriptTool runs a Python script that lives inside the workspace. The
// script path goes through the workspace resolver first, so scripts
// outside the root cannot be executed.
type ScriptTool struct {
	resolver *pathutil.Resolver
	config   config.ToolsConfig
}

func NewScriptTool(resolver *pathutil.Resolver, cfg *config.Config) *ScriptTool {
	return &ScriptTool{
		resolver: resolver,
		config:   cfg.Tools,
	}
}

func (t *ScriptTool) Run(ctx context.Context, req *ScriptRequest) (*ScriptResponse, error) {
	absolutePath, err := t.resolver.Abs(req.FilePath)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absolutePath)
	if err != nil {
		return nil, &ScriptStatError{FilePath: req.FilePath, Cause: err}
	}
	if info.IsDir() {
		return nil, &NotAScriptError{FilePath: req.FilePath, Reason: "is a directory"}
	}
	if !strings.HasSuffix(absolutePath, ".py") {
		return nil, &NotAScriptError{FilePath: req.FilePath, Reason: "not a .py file"}
	}

	timeout := time.Duration(t.config.ScriptTimeoutSeconds) * time.Second
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	stdout := newCollector(t.config.MaxCommandOutputBytes, binarySampleSize)
	stderr := newCollector(t.config.MaxCommandOutputBytes, binarySampleSize)

	argv := append([]string{absolutePath}, req.Args...)
	cmd := exec.CommandContext(runCtx, pythonInterpreter, argv...)
	cmd.Dir = t.resolver.Root()
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	runErr := cmd.Run()
	if runErr != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return nil, &TimeoutError{Name: req.FilePath, Seconds: t.config.ScriptTimeoutSeconds}
		}

		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return nil, &StartError{Name: req.FilePath, Cause: runErr}
		}
	}

	relativePath, err := t.resolver.Rel(absolutePath)
	if err != nil {
		relativePath = req.FilePath
	}

	return &ScriptResponse{
		FilePath:  relativePath,
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		ExitCode:  cmd.ProcessState.ExitCode(),
		Truncated: stdout.Truncated() || stderr.Truncated(),
	}, nil
}
