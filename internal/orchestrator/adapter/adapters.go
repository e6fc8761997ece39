package adapter

import (
	"github.com/hollandm/funcall/internal/orchestrator/models"
	"github.com/hollandm/funcall/internal/tool/directory"
	"github.com/hollandm/funcall/internal/tool/file"
	"github.com/hollandm/funcall/internal/tool/shell"
)

// This file consolidates all tool adapters using the BaseAdapter pattern.
// Each adapter is a constructor wiring a tool's Run method, its prompt
// description and its safety metadata.

// NewGetFilesInfo creates a get_files_info adapter
func NewGetFilesInfo(tool *directory.ListTool) Tool {
	return NewBaseAdapter(
		"get_files_info",
		"List files in a directory. Parameters: {\"directory\": \"path\"}. Use \".\" for the working root.",
		models.FunctionPolicy{PathArguments: []string{"directory"}},
		tool.Run,
	)
}

// NewGetFileContent creates a get_file_content adapter
func NewGetFileContent(tool *file.ReadFileTool) Tool {
	return NewBaseAdapter(
		"get_file_content",
		"Read file content. Parameters: {\"file_path\": \"path\"}.",
		models.FunctionPolicy{PathArguments: []string{"file_path"}},
		tool.Run,
	)
}

// NewWriteFile creates a write_file adapter
func NewWriteFile(tool *file.WriteFileTool) Tool {
	return NewBaseAdapter(
		"write_file",
		"Write content to a file, creating parent directories as needed. Parameters: {\"file_path\": \"path\", \"content\": \"text\"}.",
		models.FunctionPolicy{PathArguments: []string{"file_path"}},
		tool.Run,
	)
}

// NewRunPythonFile creates a run_python_file adapter
func NewRunPythonFile(tool *shell.ScriptTool) Tool {
	return NewBaseAdapter(
		"run_python_file",
		"Execute a Python script inside the working root. Parameters: {\"file_path\": \"path\", \"args\": [\"arg1\"]}.",
		models.FunctionPolicy{PathArguments: []string{"file_path"}},
		tool.Run,
	)
}

// NewShellCommand creates a shell_command adapter
func NewShellCommand(tool *shell.CommandTool) Tool {
	return NewBaseAdapter(
		"shell_command",
		"Execute a whitelisted shell command (mkdir, touch, ls, pwd, echo). Parameters: {\"command\": \"name\", \"args\": [\"value\"]}.",
		models.FunctionPolicy{ShellCommand: true},
		tool.Run,
	)
}

// NewFindFile creates a find_file adapter
func NewFindFile(tool *directory.FindTool) Tool {
	return NewBaseAdapter(
		"find_file",
		"Find files matching a glob pattern, ** matches nested directories. Parameters: {\"pattern\": \"**/*.go\"}.",
		models.FunctionPolicy{},
		tool.Run,
	)
}
