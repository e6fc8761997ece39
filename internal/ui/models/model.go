package models

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// Message is one rendered entry in the chat log. Role is "user",
// "assistant" or "trace"; trace entries show intermediate function calls.
type Message struct {
	Role    string
	Content string
}

// State holds everything the view layer renders.
type State struct {
	Input    textinput.Model
	Viewport viewport.Model
	Spinner  spinner.Model
	Messages []Message

	Width  int
	Height int

	// DotCount animates the thinking indicator
	DotCount  int
	CanSubmit bool

	StatusPhase   string
	StatusMessage string

	CurrentModel  string
	CurrentPrompt string

	ModelList      []string
	ShowModelList  bool
	ModelListIndex int
}
