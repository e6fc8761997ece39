package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	// Provider selects the model transport: "ollama", "openai" or "gemini".
	Provider string `json:"provider"`

	// Model is the model name passed to the provider.
	Model string `json:"model"`

	// APIBase is the base URL of the model server.
	APIBase string `json:"api_base"`

	// Prompt is the name of the active system prompt.
	Prompt string `json:"prompt"`

	Generation GenerationConfig `json:"generation"`
	Agent      AgentConfig      `json:"agent"`
	Tools      ToolsConfig      `json:"tools"`
}

// GenerationConfig is the opaque bag of sampling parameters handed to the
// provider. The agent loop never interprets these.
type GenerationConfig struct {
	Temperature   float64 `json:"temperature" toml:"temperature"`
	TopP          float64 `json:"top_p" toml:"top_p"`
	TopK          int     `json:"top_k" toml:"top_k"`
	NumPredict    int     `json:"num_predict" toml:"num_predict"`
	RepeatPenalty float64 `json:"repeat_penalty" toml:"repeat_penalty"`
}

// AgentConfig bounds the agent loop itself.
type AgentConfig struct {
	// MaxFunctionCalls is the turn limit: the maximum number of
	// function-dispatch cycles within one user request.
	MaxFunctionCalls int `json:"max_function_calls"`

	// ResultMaxChars truncates function results before they enter the
	// conversation, keeping history within the model's context budget.
	ResultMaxChars int `json:"result_max_chars"`

	// ShellCommandsEnabled is the kill switch for the shell_command
	// function. When off, the function is not offered to the model.
	ShellCommandsEnabled bool `json:"shell_commands_enabled"`
}

// ToolsConfig bounds individual function executions.
type ToolsConfig struct {
	// File operations
	MaxFileSize         int64 `json:"max_file_size"`         // Default: 20MB
	ContentExcerptChars int   `json:"content_excerpt_chars"` // Default: 2000

	// Command execution
	MaxCommandOutputBytes int `json:"max_command_output_bytes"` // Default: 1MB
	ShellTimeoutSeconds   int `json:"shell_timeout_seconds"`    // Default: 10
	ScriptTimeoutSeconds  int `json:"script_timeout_seconds"`   // Default: 30

	// Directory listing / find
	MaxListResults int `json:"max_list_results"` // Default: 1000
	MaxFindResults int `json:"max_find_results"` // Default: 500
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: "ollama",
		Model:    "qwen2.5-coder:7b",
		APIBase:  "http://localhost:11434",
		Prompt:   "default",
		Generation: GenerationConfig{
			Temperature:   0.1,
			TopP:          0.9,
			TopK:          40,
			NumPredict:    4096,
			RepeatPenalty: 1.1,
		},
		Agent: AgentConfig{
			MaxFunctionCalls:     10,
			ResultMaxChars:       4000,
			ShellCommandsEnabled: true,
		},
		Tools: ToolsConfig{
			MaxFileSize:           20 * 1024 * 1024,
			ContentExcerptChars:   2000,
			MaxCommandOutputBytes: 1024 * 1024,
			ShellTimeoutSeconds:   10,
			ScriptTimeoutSeconds:  30,
			MaxListResults:        1000,
			MaxFindResults:        500,
		},
	}
}
