package directory

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hollandm/funcall/internal/config"
	"github.com/hollandm/funcall/internal/tool/pathutil"
)

// FindTool matches file names under the workspace root against glob patterns.
type FindTool struct {
	resolver *pathutil.Resolver
	ignore   IgnoreMatcher
	config   *config.Config
}

// NewFindTool creates a new FindTool.
func NewFindTool(resolver *pathutil.Resolver, ignore IgnoreMatcher, cfg *config.Config) *FindTool {
	return &FindTool{resolver: resolver, ignore: ignore, config: cfg}
}

// Run walks the workspace and collects files whose workspace-relative path
// matches the doublestar pattern. Gitignored paths are skipped, directories
// pruned. Matches are returned in walk order, bounded by the configured
// result limit.
func (t *FindTool) Run(ctx context.Context, req *FindRequest) (*FindResponse, error) {
	if !doublestar.ValidatePattern(req.Pattern) {
		return nil, &BadPatternError{Pattern: req.Pattern, Cause: doublestar.ErrBadPattern}
	}

	root := t.resolver.Root()
	var matches []string
	truncated := false

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if t.ignore.ShouldIgnore(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		ok, matchErr := doublestar.Match(req.Pattern, rel)
		if matchErr != nil || !ok {
			return nil
		}

		if len(matches) >= t.config.Tools.MaxFindResults {
			truncated = true
			return filepath.SkipAll
		}
		matches = append(matches, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &FindResponse{Pattern: req.Pattern, Matches: matches, Truncated: truncated}, nil
}
