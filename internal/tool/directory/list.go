package directory

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/hollandm/funcall/internal/config"
	"github.com/hollandm/funcall/internal/tool/pathutil"
)

// IgnoreMatcher decides whether a workspace-relative path is hidden from
// listings, typically backed by the workspace .gitignore.
type IgnoreMatcher interface {
	ShouldIgnore(relativePath string) bool
}

// ListTool lists directory entries inside the workspace.
type ListTool struct {
	resolver *pathutil.Resolver
	ignore   IgnoreMatcher
	config   *config.Config
}

// NewListTool creates a new ListTool.
func NewListTool(resolver *pathutil.Resolver, ignore IgnoreMatcher, cfg *config.Config) *ListTool {
	return &ListTool{resolver: resolver, ignore: ignore, config: cfg}
}

// Run lists a directory, sorted by name, skipping gitignored entries and
// bounding the result count.
func (t *ListTool) Run(ctx context.Context, req *ListRequest) (*ListResponse, error) {
	dir := req.Directory
	if dir == "" {
		dir = "."
	}

	abs, err := t.resolver.Abs(dir)
	if err != nil {
		return nil, err
	}
	rel, err := t.resolver.Rel(abs)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, &NotFoundError{Path: dir}
	}
	if !info.IsDir() {
		return nil, &NotADirectoryError{Path: dir}
	}

	dirEntries, err := os.ReadDir(abs)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	truncated := false
	for _, de := range dirEntries {
		relPath := filepath.ToSlash(filepath.Join(rel, de.Name()))
		if t.ignore.ShouldIgnore(relPath) {
			continue
		}
		if len(entries) >= t.config.Tools.MaxListResults {
			truncated = true
			break
		}

		entryType := "file"
		var size int64
		if de.IsDir() {
			entryType = "directory"
		} else if fi, err := de.Info(); err == nil {
			size = fi.Size()
		}
		entries = append(entries, Entry{Name: de.Name(), Type: entryType, Size: size})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	return &ListResponse{Directory: dir, Entries: entries, Truncated: truncated}, nil
}
