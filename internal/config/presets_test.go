package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPresets_MissingFile_ReturnsEmpty(t *testing.T) {
	fs := &MockFileSystem{HomeDir: "/home/user", Files: map[string][]byte{}}

	presets, err := LoadPresets(fs)

	require.NoError(t, err)
	assert.Empty(t, presets.Names())
}

func TestLoadPresets_ParsesNamedPresets(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/funcall/presets.toml": []byte(`
[preset.focused]
temperature = 0.0
top_p = 0.9
top_k = 40
num_predict = 4096
repeat_penalty = 1.1

[preset.creative]
temperature = 1.0
top_p = 0.95
top_k = 60
num_predict = 4096
repeat_penalty = 1.0
`),
		},
	}

	presets, err := LoadPresets(fs)

	require.NoError(t, err)
	assert.Equal(t, []string{"creative", "focused"}, presets.Names())

	gen, ok := presets.Get("focused")
	require.True(t, ok)
	assert.Equal(t, 0.0, gen.Temperature)
	assert.Equal(t, 40, gen.TopK)

	_, ok = presets.Get("missing")
	assert.False(t, ok)
}

func TestLoadPresets_InvalidValues_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/funcall/presets.toml": []byte(`
[preset.broken]
temperature = 9.0
top_p = 0.9
top_k = 40
num_predict = 4096
repeat_penalty = 1.1
`),
		},
	}

	_, err := LoadPresets(fs)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}
