package file

// ReadFileRequest asks for the content of a text file inside the workspace.
type ReadFileRequest struct {
	// FilePath is the path to read, relative to the workspace root.
	FilePath string `mapstructure:"file_path" json:"file_path" jsonschema:"title=file_path,description=Path to the file relative to the workspace root"`
}

// Validate implements adapter.Validator
func (r *ReadFileRequest) Validate() error {
	if r.FilePath == "" {
		return ErrMissingFilePath
	}
	return nil
}

// ReadFileResponse carries the file content. Content is bounded by the
// configured excerpt size; TotalChars reports the real length so the model
// knows when it saw a truncated view.
type ReadFileResponse struct {
	FilePath   string `json:"file_path"`
	Content    string `json:"content"`
	TotalChars int    `json:"total_chars"`
	Truncated  bool   `json:"truncated,omitempty"`
}

// WriteFileRequest creates or overwrites a file inside the workspace.
type WriteFileRequest struct {
	FilePath string `mapstructure:"file_path" json:"file_path" jsonschema:"title=file_path,description=Path to the file relative to the workspace root"`
	Content  string `mapstructure:"content" json:"content" jsonschema:"title=content,description=Full content to write"`
}

// Validate implements adapter.Validator
func (r *WriteFileRequest) Validate() error {
	if r.FilePath == "" {
		return ErrMissingFilePath
	}
	return nil
}

// WriteFileResponse reports a completed write.
type WriteFileResponse struct {
	FilePath     string `json:"file_path"`
	BytesWritten int    `json:"bytes_written"`
}
