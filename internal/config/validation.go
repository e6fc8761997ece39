package config

import (
	"fmt"
	"strings"
)

var validProviders = []string{"ollama", "openai", "gemini"}

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	providerOK := false
	for _, p := range validProviders {
		if c.Provider == p {
			providerOK = true
			break
		}
	}
	if !providerOK {
		errs = append(errs, fmt.Sprintf("provider must be one of %s", strings.Join(validProviders, ", ")))
	}

	if c.Model == "" {
		errs = append(errs, "model must not be empty")
	}
	if !strings.HasPrefix(c.APIBase, "http://") && !strings.HasPrefix(c.APIBase, "https://") {
		errs = append(errs, "api_base must start with http:// or https://")
	}
	if c.Prompt == "" {
		errs = append(errs, "prompt must not be empty")
	}

	if err := c.Generation.Validate(); err != nil {
		errs = append(errs, err.Error())
	}

	// Agent validation
	if c.Agent.MaxFunctionCalls < 1 {
		errs = append(errs, "agent.max_function_calls must be >= 1")
	}
	if c.Agent.ResultMaxChars < 1 {
		errs = append(errs, "agent.result_max_chars must be >= 1")
	}

	// Tools validation
	if c.Tools.MaxFileSize < 1 {
		errs = append(errs, "tools.max_file_size must be >= 1")
	}
	if c.Tools.ContentExcerptChars < 1 {
		errs = append(errs, "tools.content_excerpt_chars must be >= 1")
	}
	if c.Tools.MaxCommandOutputBytes < 1 {
		errs = append(errs, "tools.max_command_output_bytes must be >= 1")
	}
	if c.Tools.ShellTimeoutSeconds < 1 {
		errs = append(errs, "tools.shell_timeout_seconds must be >= 1")
	}
	if c.Tools.ScriptTimeoutSeconds < 1 {
		errs = append(errs, "tools.script_timeout_seconds must be >= 1")
	}
	if c.Tools.MaxListResults < 1 {
		errs = append(errs, "tools.max_list_results must be >= 1")
	}
	if c.Tools.MaxFindResults < 1 {
		errs = append(errs, "tools.max_find_results must be >= 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// Validate checks generation parameter ranges. The agent passes these values
// through opaquely, so range checking happens once, here.
func (g *GenerationConfig) Validate() error {
	var errs []string

	if g.Temperature < 0.0 || g.Temperature > 2.0 {
		errs = append(errs, "generation.temperature must be in [0.0, 2.0]")
	}
	if g.TopP < 0.0 || g.TopP > 1.0 {
		errs = append(errs, "generation.top_p must be in [0.0, 1.0]")
	}
	if g.TopK < 1 || g.TopK > 100 {
		errs = append(errs, "generation.top_k must be in [1, 100]")
	}
	if g.NumPredict < 1 || g.NumPredict > 8192 {
		errs = append(errs, "generation.num_predict must be in [1, 8192]")
	}
	if g.RepeatPenalty < 0.5 || g.RepeatPenalty > 2.0 {
		errs = append(errs, "generation.repeat_penalty must be in [0.5, 2.0]")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
