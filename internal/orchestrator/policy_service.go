package orchestrator

import (
	"path/filepath"
	"strings"

	"github.com/hollandm/funcall/internal/orchestrator/models"
	"github.com/hollandm/funcall/internal/tool/pathutil"
)

const (
	DenyUnknownFunction   = "unknown function"
	DenyPathTraversal     = "path traversal"
	DenyCommandNotAllowed = "command not permitted"
)

// DefaultCommandWhitelist is the closed set of shell commands offered to
// the model. Anything else is denied before execution.
var DefaultCommandWhitelist = []string{"mkdir", "touch", "ls", "pwd", "echo"}

// commandArgBudget caps how many arguments each whitelisted command may
// take. pwd takes none; echo is generous because it is harmless.
var commandArgBudget = map[string]int{
	"mkdir": 2,
	"touch": 1,
	"ls":    2,
	"pwd":   0,
	"echo":  10,
}

// pathCommands take workspace paths as arguments, so every non-flag
// argument gets the same containment check as file-function path
// arguments. Absolute paths are rejected outright.
var pathCommands = map[string]struct{}{
	"mkdir": {},
	"touch": {},
	"ls":    {},
}

// dangerousPatterns are shell metacharacters and traversal markers that
// never belong in a plain argument value. Commands run without a shell
// interpreter, so most of these could not take effect anyway; they are
// rejected rather than passed through.
var dangerousPatterns = []string{
	";", "&&", "||", "|", ">", "<", "`", "$(", "${", "~/", "\\",
}

// SafetyService is the gate between a parsed function call and execution.
// It is constructed once from the immutable policy and a snapshot of the
// registered functions, holds no mutable state, and performs no I/O:
// the same request always yields the same decision.
type SafetyService struct {
	functions map[string]models.FunctionPolicy
	whitelist map[string]struct{}
	resolver  *pathutil.Resolver
}

func NewSafetyService(policy models.SafetyPolicy, functions map[string]models.FunctionPolicy) *SafetyService {
	whitelist := make(map[string]struct{}, len(policy.CommandWhitelist))
	for _, name := range policy.CommandWhitelist {
		whitelist[name] = struct{}{}
	}
	return &SafetyService{
		functions: functions,
		whitelist: whitelist,
		resolver:  pathutil.NewResolver(policy.WorkspaceRoot),
	}
}

// CheckCall implements models.PolicyService.
func (s *SafetyService) CheckCall(req models.FunctionCallRequest) models.Decision {
	fn, known := s.functions[req.Name]
	if !known {
		return models.Deny(DenyUnknownFunction)
	}

	for _, key := range fn.PathArguments {
		value, present := req.Arguments[key]
		if !present {
			continue
		}
		path, isString := value.(string)
		if !isString {
			continue
		}
		if decision := s.checkPath(path); !decision.Allowed {
			return decision
		}
	}

	if fn.ShellCommand {
		return s.checkCommand(req.Arguments)
	}

	return models.Allow()
}

func (s *SafetyService) checkPath(path string) models.Decision {
	if pathutil.HasParentSegment(path) {
		return models.Deny(DenyPathTraversal)
	}
	if _, err := s.resolver.Abs(path); err != nil {
		return models.Deny(DenyPathTraversal)
	}
	return models.Allow()
}

func (s *SafetyService) checkCommand(arguments map[string]any) models.Decision {
	command, _ := arguments["command"].(string)
	if _, allowed := s.whitelist[command]; !allowed {
		return models.Deny(DenyCommandNotAllowed)
	}

	args := argumentList(arguments["args"])
	if len(args) > commandArgBudget[command] {
		return models.Deny(DenyCommandNotAllowed)
	}

	_, takesPaths := pathCommands[command]
	for _, arg := range args {
		if pathutil.HasParentSegment(arg) {
			return models.Deny(DenyPathTraversal)
		}
		for _, pattern := range dangerousPatterns {
			if strings.Contains(arg, pattern) {
				return models.Deny(DenyCommandNotAllowed)
			}
		}
		if takesPaths && !strings.HasPrefix(arg, "-") {
			if filepath.IsAbs(arg) {
				return models.Deny(DenyPathTraversal)
			}
			if decision := s.checkPath(arg); !decision.Allowed {
				return decision
			}
		}
	}

	return models.Allow()
}

// argumentList normalizes the "args" value, which arrives from the parser
// as either a string list or a single string.
func argumentList(value any) []string {
	switch typed := value.(type) {
	case []string:
		return typed
	case string:
		if typed == "" {
			return nil
		}
		return []string{typed}
	default:
		return nil
	}
}
