package directory

// ListRequest asks for the entries of a directory inside the workspace.
type ListRequest struct {
	// Directory is the path to list, relative to the workspace root.
	// Empty means the root itself.
	Directory string `mapstructure:"directory" json:"directory,omitempty" jsonschema:"title=directory,description=Directory to list relative to the workspace root (default: workspace root)"`
}

// Validate implements adapter.Validator
func (r *ListRequest) Validate() error {
	return nil // empty directory defaults to the workspace root
}

// Entry is a single directory entry visible to the model.
type Entry struct {
	Name string `json:"name"`
	Type string `json:"type"` // "file" or "directory"
	Size int64  `json:"size"`
}

// ListResponse carries the directory listing.
type ListResponse struct {
	Directory string  `json:"directory"`
	Entries   []Entry `json:"entries"`
	Truncated bool    `json:"truncated,omitempty"`
}

// FindRequest matches file names under the workspace root against a glob
// pattern. Patterns support doublestar globs, e.g. "**/*.go".
type FindRequest struct {
	Pattern string `mapstructure:"pattern" json:"pattern" jsonschema:"title=pattern,description=Glob pattern matched against workspace-relative paths; ** crosses directories"`
}

// Validate implements adapter.Validator
func (r *FindRequest) Validate() error {
	if r.Pattern == "" {
		return ErrMissingPattern
	}
	return nil
}

// FindResponse lists the matching workspace-relative paths.
type FindResponse struct {
	Pattern   string   `json:"pattern"`
	Matches   []string `json:"matches"`
	Truncated bool     `json:"truncated,omitempty"`
}
