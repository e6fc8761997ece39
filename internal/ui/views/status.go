package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hollandm/funcall/internal/ui/models"
)

// RenderStatus renders the status bar
func RenderStatus(s models.State) string {
	var icon string
	var style lipgloss.Style

	switch s.StatusPhase {
	case "executing":
		icon = s.Spinner.View()
		style = StatusExecutingStyle
	case "done":
		icon = "✔"
		style = StatusDoneStyle
	case "error":
		icon = "✘"
		style = StatusErrorStyle
	case "thinking":
		icon = s.Spinner.View()
		style = StatusThinkingStyle
		dots := strings.Repeat(".", s.DotCount)
		return style.Render(fmt.Sprintf("%s Generating%s", icon, dots)) + rightSide(s)
	default:
		style = StatusDefaultStyle
	}

	status := "Ready"
	if s.StatusMessage != "" {
		status = fmt.Sprintf("%s %s", icon, s.StatusMessage)
	} else if s.StatusPhase != "ready" && s.StatusPhase != "" {
		status = icon
	}

	return style.Render(status) + rightSide(s)
}

func rightSide(s models.State) string {
	var parts []string
	if s.CurrentModel != "" {
		parts = append(parts, s.CurrentModel)
	}
	if s.CurrentPrompt != "" {
		parts = append(parts, "prompt: "+s.CurrentPrompt)
	}
	if len(parts) == 0 {
		return ""
	}
	return "  " + StatusDefaultStyle.Render(strings.Join(parts, " | "))
}
