package shell

// CommandRequest runs one whitelisted command with plain argument values.
// The command never goes through a shell interpreter, so chaining,
// redirection and substitution are structurally impossible.
type CommandRequest struct {
	Command string   `mapstructure:"command" json:"command" jsonschema:"title=command,description=Whitelisted command name (mkdir touch ls pwd echo)"`
	Args    []string `mapstructure:"args" json:"args,omitempty" jsonschema:"title=args,description=Plain argument values passed to the command"`
}

// Validate implements adapter.Validator
func (r *CommandRequest) Validate() error {
	if r.Command == "" {
		return ErrMissingCommand
	}
	return nil
}

// CommandResponse reports the outcome of a command execution.
type CommandResponse struct {
	Stdout    string `json:"stdout,omitempty"`
	Stderr    string `json:"stderr,omitempty"`
	ExitCode  int    `json:"exit_code"`
	Truncated bool   `json:"truncated,omitempty"`
}

// ScriptRequest runs a Python script from inside the workspace.
type ScriptRequest struct {
	FilePath string   `mapstructure:"file_path" json:"file_path" jsonschema:"title=file_path,description=Path to the Python script relative to the workspace root"`
	Args     []string `mapstructure:"args" json:"args,omitempty" jsonschema:"title=args,description=Arguments passed to the script"`
}

// Validate implements adapter.Validator
func (r *ScriptRequest) Validate() error {
	if r.FilePath == "" {
		return ErrMissingScriptPath
	}
	return nil
}

// ScriptResponse reports the outcome of a script execution.
type ScriptResponse struct {
	FilePath  string `json:"file_path"`
	Stdout    string `json:"stdout,omitempty"`
	Stderr    string `json:"stderr,omitempty"`
	ExitCode  int    `json:"exit_code"`
	Truncated bool   `json:"truncated,omitempty"`
}
