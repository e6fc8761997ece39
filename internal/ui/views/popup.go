package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hollandm/funcall/internal/ui/models"
)

// RenderModelPopup renders the model selection popup
func RenderModelPopup(s models.State) string {
	if !s.ShowModelList || len(s.ModelList) == 0 {
		return ""
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render("Select Model:"))
	lines = append(lines, "")

	for i, model := range s.ModelList {
		if i == s.ModelListIndex {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Render(fmt.Sprintf("▸ %s", model)))
		} else {
			lines = append(lines, fmt.Sprintf("  %s", model))
		}
	}

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Faint(true).Render("↑/↓: Navigate  Enter: Select  Esc: Cancel"))

	return PopupBoxStyle.Render(strings.Join(lines, "\n"))
}
