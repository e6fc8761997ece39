package models

// Role tags a single entry in the conversation timeline.
type Role string

const (
	RoleSystem         Role = "system"
	RoleUser           Role = "user"
	RoleAssistant      Role = "assistant"
	RoleFunctionResult Role = "function"
)

// Turn is one entry in the conversation history. Function-result turns
// additionally carry the name of the function that produced them.
type Turn struct {
	Role    Role
	Content string

	// FunctionName is set only for RoleFunctionResult turns.
	FunctionName string
}

// FunctionCallRequest is a structured function invocation decoded from the
// model's raw text output. Argument values are strings or lists of strings,
// matching the wire format.
type FunctionCallRequest struct {
	Name      string
	Arguments map[string]any
}

// ExecutionResult is the outcome of running one approved function call.
// It is folded into the conversation as a function-result turn and then
// discarded.
type ExecutionResult struct {
	Success bool
	Output  string
	Error   string
}

// Text returns the result as a single string suitable for a
// function-result turn.
func (r ExecutionResult) Text() string {
	if r.Error != "" {
		return "Error: " + r.Error
	}
	return r.Output
}

// SafetyPolicy is the immutable process-wide policy every validator check
// reads. It is constructed once at startup and never mutated.
type SafetyPolicy struct {
	// WorkspaceRoot is the canonical directory boundary outside of which no
	// file or shell operation may act.
	WorkspaceRoot string

	// CommandWhitelist is the closed set of shell command names the
	// validator will ever allow.
	CommandWhitelist []string
}

// FunctionPolicy describes how the safety check treats one registered
// function: which argument keys hold workspace paths, and whether the
// function is a shell-command request subject to the whitelist rules.
type FunctionPolicy struct {
	PathArguments []string
	ShellCommand  bool
}

// Decision is the validator's verdict on a FunctionCallRequest.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow is the approving decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny rejects a request with a reason the model can read and react to.
func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}
