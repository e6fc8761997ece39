package views

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("205")
	ColorDim     = lipgloss.Color("241")

	UserMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true)

	AssistantMessageStyle = lipgloss.NewStyle()

	TraceStyle = lipgloss.NewStyle().
			Foreground(ColorDim).
			Italic(true)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	StatusThinkingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("220"))

	StatusExecutingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))

	StatusDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))

	StatusDefaultStyle = lipgloss.NewStyle().
				Foreground(ColorDim)

	PopupBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)
)
