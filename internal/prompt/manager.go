package prompt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// ManifestFile sits next to the prompt files and carries per-prompt
// metadata for the /prompts listing.
const ManifestFile = "manifest.yaml"

type manifestEntry struct {
	Description string `yaml:"description"`
}

type manifestDocument struct {
	Prompts map[string]manifestEntry `yaml:"prompts"`
}

// Info describes one available prompt for listings.
type Info struct {
	Name        string
	Source      string
	Description string
}

// Manager serves system prompts from a directory of Markdown files with
// built-in fallbacks. File prompts override builtins of the same name.
// Safe for concurrent use; Watch keeps the set fresh while the program
// runs.
type Manager struct {
	dir string

	mu           sync.RWMutex
	filePrompts  map[string]string
	descriptions map[string]string
}

func NewManager(dir string) *Manager {
	return &Manager{
		dir:          dir,
		filePrompts:  make(map[string]string),
		descriptions: make(map[string]string),
	}
}

// EnsureDirectory creates the prompts directory on first run and exports
// the built-in prompts as editable Markdown files.
func (m *Manager) EnsureDirectory() error {
	if _, err := os.Stat(m.dir); err == nil {
		return nil
	}

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("create prompts directory: %w", err)
	}

	for name, content := range builtinPrompts {
		path := filepath.Join(m.dir, name+".md")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("export builtin prompt %s: %w", name, err)
		}
	}

	manifest := manifestDocument{Prompts: make(map[string]manifestEntry, len(builtinDescriptions))}
	for name, description := range builtinDescriptions {
		manifest.Prompts[name] = manifestEntry{Description: description}
	}
	encoded, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(m.dir, ManifestFile), encoded, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// Reload rescans the prompt directory and the manifest. A missing
// directory is not an error; builtins still serve.
func (m *Manager) Reload() error {
	filePrompts := make(map[string]string)
	descriptions := make(map[string]string)

	entries, err := os.ReadDir(m.dir)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read prompts directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") || name == "README.md" {
			continue
		}
		content, err := os.ReadFile(filepath.Join(m.dir, name))
		if err != nil {
			continue
		}
		filePrompts[strings.TrimSuffix(name, ".md")] = stripMarkdown(string(content))
	}

	manifestRaw, err := os.ReadFile(filepath.Join(m.dir, ManifestFile))
	if err == nil {
		var manifest manifestDocument
		if err := yaml.Unmarshal(manifestRaw, &manifest); err != nil {
			return fmt.Errorf("parse %s: %w", ManifestFile, err)
		}
		for name, entry := range manifest.Prompts {
			descriptions[name] = entry.Description
		}
	}

	m.mu.Lock()
	m.filePrompts = filePrompts
	m.descriptions = descriptions
	m.mu.Unlock()
	return nil
}

// Load returns the prompt text for a name, preferring a file prompt over
// the builtin of the same name.
func (m *Manager) Load(name string) (string, bool) {
	m.mu.RLock()
	content, fromFile := m.filePrompts[name]
	m.mu.RUnlock()

	if fromFile {
		return content, true
	}
	content, ok := builtinPrompts[name]
	return content, ok
}

// List returns every available prompt, sorted by name.
func (m *Manager) List() []Info {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[string]Info)
	for name := range builtinPrompts {
		seen[name] = Info{
			Name:        name,
			Source:      "built-in",
			Description: m.describe(name),
		}
	}
	for name := range m.filePrompts {
		source := "file"
		if _, isBuiltin := builtinPrompts[name]; isBuiltin {
			source = "file (overrides built-in)"
		}
		seen[name] = Info{
			Name:        name,
			Source:      source,
			Description: m.describe(name),
		}
	}

	infos := make([]Info, 0, len(seen))
	for _, info := range seen {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

func (m *Manager) describe(name string) string {
	if description, ok := m.descriptions[name]; ok && description != "" {
		return description
	}
	if description, ok := builtinDescriptions[name]; ok {
		return description
	}
	return "Custom system prompt"
}

// Watch reloads the prompt set whenever a file in the directory changes,
// until the context is cancelled. onChange, if non-nil, fires after each
// successful reload.
func (m *Manager) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(m.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", m.dir, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !relevantChange(event) {
					continue
				}
				if err := m.Reload(); err != nil {
					continue
				}
				if onChange != nil {
					onChange()
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return nil
}

func relevantChange(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	base := filepath.Base(event.Name)
	return strings.HasSuffix(base, ".md") || base == ManifestFile
}

var (
	headerPattern     = regexp.MustCompile(`(?m)^#+\s*`)
	boldPattern       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern     = regexp.MustCompile(`\*(.*?)\*`)
	metadataPattern   = regexp.MustCompile(`(?ms)^---.*?^---\s*$`)
	ruledPattern      = regexp.MustCompile(`(?m)^---+\s*$`)
	whitespacePattern = regexp.MustCompile(`\n\s*\n\s*\n`)
)

// stripMarkdown flattens Markdown formatting so the model reads plain
// text. Prompts stay readable on disk without the markup leaking into
// the conversation.
func stripMarkdown(content string) string {
	content = metadataPattern.ReplaceAllString(content, "")
	content = headerPattern.ReplaceAllString(content, "")
	content = boldPattern.ReplaceAllString(content, "$1")
	content = italicPattern.ReplaceAllString(content, "$1")
	content = ruledPattern.ReplaceAllString(content, "")
	content = whitespacePattern.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
