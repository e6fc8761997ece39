package shell

import (
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/hollandm/funcall/internal/config"
	"github.com/hollandm/funcall/internal/tool/pathutil"
)

const binarySampleSize = 8000

// CommandTool executes one whitelisted command inside the workspace.
// Arguments are passed as an argv slice to the operating system with no
// shell interpreter in between. The whitelist here is a second line of
// defence: requests reach this tool only after the safety check, but the
// tool still refuses anything outside its own list.
type CommandTool struct {
	resolver  *pathutil.Resolver
	config    config.ToolsConfig
	whitelist map[string]struct{}
}

func NewCommandTool(resolver *pathutil.Resolver, cfg *config.Config, whitelist []string) *CommandTool {
	set := make(map[string]struct{}, len(whitelist))
	for _, name := range whitelist {
		set[name] = struct{}{}
	}
	return &CommandTool{
		resolver:  resolver,
		config:    cfg.Tools,
		whitelist: set,
	}
}

func (t *CommandTool) Run(ctx context.Context, req *CommandRequest) (*CommandResponse, error) {
	if _, ok := t.whitelist[req.Command]; !ok {
		return nil, ErrCommandNotWhitelisted
	}

	timeout := time.Duration(t.config.ShellTimeoutSeconds) * time.Second
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	stdout := newCollector(t.config.MaxCommandOutputBytes, binarySampleSize)
	stderr := newCollector(t.config.MaxCommandOutputBytes, binarySampleSize)

	cmd := exec.CommandContext(runCtx, req.Command, req.Args...)
	cmd.Dir = t.resolver.Root()
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return nil, &TimeoutError{Name: req.Command, Seconds: t.config.ShellTimeoutSeconds}
		}

		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, &StartError{Name: req.Command, Cause: err}
		}
	}

	return &CommandResponse{
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		ExitCode:  cmd.ProcessState.ExitCode(),
		Truncated: stdout.Truncated() || stderr.Truncated(),
	}, nil
}
