package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
)

// PresetsFile is the generation-preset file name under the config directory.
const PresetsFile = "presets.toml"

// presetsDocument is the on-disk shape of presets.toml:
//
//	[preset.focused]
//	temperature = 0.0
//	top_p = 0.9
//	...
type presetsDocument struct {
	Preset map[string]GenerationConfig `toml:"preset"`
}

// Presets holds named generation-parameter bundles selectable per session.
type Presets struct {
	byName map[string]GenerationConfig
}

// LoadPresets reads ~/.config/funcall/presets.toml. A missing file yields an
// empty preset set, not an error.
func LoadPresets(fs FileSystem) (*Presets, error) {
	homeDir, err := fs.UserHomeDir()
	if err != nil {
		return &Presets{byName: map[string]GenerationConfig{}}, nil
	}

	path := filepath.Join(homeDir, ".config", ConfigDir, PresetsFile)
	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Presets{byName: map[string]GenerationConfig{}}, nil
		}
		return nil, err
	}

	var doc presetsDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed %s: %w", PresetsFile, err)
	}

	for name, gen := range doc.Preset {
		if err := gen.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}

	if doc.Preset == nil {
		doc.Preset = map[string]GenerationConfig{}
	}
	return &Presets{byName: doc.Preset}, nil
}

// Get returns the named preset.
func (p *Presets) Get(name string) (GenerationConfig, bool) {
	gen, ok := p.byName[name]
	return gen, ok
}

// Names returns the preset names in sorted order.
func (p *Presets) Names() []string {
	names := make([]string, 0, len(p.byName))
	for name := range p.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
