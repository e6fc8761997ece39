package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidate_Provider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	err := cfg.Validate()
	assert.ErrorContains(t, err, "provider")
}

func TestValidate_APIBase(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIBase = "localhost:11434"
	err := cfg.Validate()
	assert.ErrorContains(t, err, "api_base")
}

func TestValidate_GenerationRanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GenerationConfig)
		field  string
	}{
		{"temperature too high", func(g *GenerationConfig) { g.Temperature = 2.1 }, "temperature"},
		{"temperature negative", func(g *GenerationConfig) { g.Temperature = -0.1 }, "temperature"},
		{"top_p too high", func(g *GenerationConfig) { g.TopP = 1.5 }, "top_p"},
		{"top_k zero", func(g *GenerationConfig) { g.TopK = 0 }, "top_k"},
		{"num_predict too high", func(g *GenerationConfig) { g.NumPredict = 10000 }, "num_predict"},
		{"repeat_penalty too low", func(g *GenerationConfig) { g.RepeatPenalty = 0.4 }, "repeat_penalty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg.Generation)
			err := cfg.Validate()
			assert.ErrorContains(t, err, tt.field)
		})
	}
}

func TestValidate_AgentBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Agent.MaxFunctionCalls = 0
	assert.ErrorContains(t, cfg.Validate(), "max_function_calls")

	cfg = DefaultConfig()
	cfg.Agent.ResultMaxChars = 0
	assert.ErrorContains(t, cfg.Validate(), "result_max_chars")
}
