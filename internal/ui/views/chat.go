package views

import (
	"strings"

	"github.com/hollandm/funcall/internal/ui/models"
	"github.com/hollandm/funcall/internal/ui/services"
)

// RenderChat renders the message history
func RenderChat(s models.State, renderer services.MarkdownRenderer) string {
	if len(s.Messages) == 0 {
		return "No messages yet. Type a message to start, /help for commands."
	}
	return s.Viewport.View()
}

// FormatChatContent formats the messages for the viewport
func FormatChatContent(messages []models.Message, width int, renderer services.MarkdownRenderer) string {
	var lines []string
	for _, msg := range messages {
		switch msg.Role {
		case "user":
			lines = append(lines, UserMessageStyle.Render("You: "+msg.Content))
		case "trace":
			lines = append(lines, TraceStyle.Render("⚙ "+msg.Content))
		default:
			rendered, err := services.RenderMarkdown(msg.Content, width, renderer)
			if err != nil {
				lines = append(lines, AssistantMessageStyle.Render("AI: "+msg.Content))
			} else {
				lines = append(lines, AssistantMessageStyle.Render(rendered))
			}
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
