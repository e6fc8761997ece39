package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hollandm/funcall/internal/ui/models"
	"github.com/hollandm/funcall/internal/ui/services"
)

// RenderRoot renders the complete UI layout
func RenderRoot(s models.State, renderer services.MarkdownRenderer) string {
	sections := []string{
		RenderChat(s, renderer),
		RenderInput(s),
		RenderStatus(s),
	}

	if s.ShowModelList {
		popup := RenderModelPopup(s)
		return lipgloss.Place(
			s.Width,
			s.Height,
			lipgloss.Center,
			lipgloss.Center,
			popup,
			lipgloss.WithWhitespaceChars(""),
			lipgloss.WithWhitespaceForeground(lipgloss.Color("0")),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
