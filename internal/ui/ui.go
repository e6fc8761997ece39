package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hollandm/funcall/internal/ui/services"
)

// UICommand is a user-initiated request handled outside the agent loop,
// produced by slash commands.
type UICommand struct {
	Type string
	Args map[string]string
}

// UI implements UserInterface using Bubble Tea. The orchestrator runs on
// its own goroutine; everything crosses into the tea program through
// channels.
type UI struct {
	program *tea.Program

	// Orchestrator -> UI channels
	inputReq       chan inputRequest
	inputResp      chan string
	statusChan     chan statusMsg
	messageChan    chan string
	traceChan      chan traceMsg
	modelListChan  chan []string
	statusLineChan chan statusLineMsg

	// UI -> Orchestrator
	commandChan chan UICommand

	// Ready signal
	readyChan chan struct{}
}

type inputRequest struct {
	prompt string
}

type statusMsg struct {
	phase   string
	message string
}

type traceMsg struct {
	functionName string
	summary      string
}

type statusLineMsg struct {
	model  string
	prompt string
}

// UIChannels holds the channels for UI communication
type UIChannels struct {
	InputReq       chan inputRequest
	InputResp      chan string
	StatusChan     chan statusMsg
	MessageChan    chan string
	TraceChan      chan traceMsg
	ModelListChan  chan []string
	StatusLineChan chan statusLineMsg
	CommandChan    chan UICommand
	ReadyChan      chan struct{}
}

// NewUIChannels creates a new UIChannels struct with default buffers
func NewUIChannels() *UIChannels {
	return &UIChannels{
		InputReq:       make(chan inputRequest),
		InputResp:      make(chan string),
		StatusChan:     make(chan statusMsg, 10),
		MessageChan:    make(chan string, 10),
		TraceChan:      make(chan traceMsg, 10),
		ModelListChan:  make(chan []string),
		StatusLineChan: make(chan statusLineMsg, 10),
		CommandChan:    make(chan UICommand, 10),
		ReadyChan:      make(chan struct{}),
	}
}

// NewUI creates a new Bubble Tea UI
func NewUI(channels *UIChannels, renderer services.MarkdownRenderer, spinnerFactory SpinnerFactory) *UI {
	ui := &UI{
		inputReq:       channels.InputReq,
		inputResp:      channels.InputResp,
		statusChan:     channels.StatusChan,
		messageChan:    channels.MessageChan,
		traceChan:      channels.TraceChan,
		modelListChan:  channels.ModelListChan,
		statusLineChan: channels.StatusLineChan,
		commandChan:    channels.CommandChan,
		readyChan:      channels.ReadyChan,
	}

	model := newBubbleTeaModel(channels, renderer, spinnerFactory)
	ui.program = tea.NewProgram(model, tea.WithAltScreen())

	return ui
}

// Start runs the UI program, blocking until the user quits.
func (u *UI) Start() error {
	_, err := u.program.Run()
	return err
}

// ReadInput prompts the user for input
func (u *UI) ReadInput(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case u.inputReq <- inputRequest{prompt: prompt}:
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case response := <-u.inputResp:
			return response, nil
		}
	}
}

// WriteStatus updates the status bar
func (u *UI) WriteStatus(phase string, message string) {
	select {
	case u.statusChan <- statusMsg{phase: phase, message: message}:
	default:
		// Drop if channel is full
	}
}

// WriteMessage sends a message to the UI
func (u *UI) WriteMessage(content string) {
	select {
	case u.messageChan <- content:
	default:
		// Drop if channel is full
	}
}

// WriteTrace surfaces one function-call step in the chat log
func (u *UI) WriteTrace(functionName string, summary string) {
	select {
	case u.traceChan <- traceMsg{functionName: functionName, summary: summary}:
	default:
		// Drop if channel is full
	}
}

// WriteModelList shows the model selection popup
func (u *UI) WriteModelList(models []string) {
	select {
	case u.modelListChan <- models:
	default:
	}
}

// SetStatusLine updates the model/prompt names shown in the status bar
func (u *UI) SetStatusLine(model string, prompt string) {
	select {
	case u.statusLineChan <- statusLineMsg{model: model, prompt: prompt}:
	default:
	}
}

// Commands returns the channel of user-initiated slash commands
func (u *UI) Commands() <-chan UICommand {
	return u.commandChan
}

// Ready returns a channel closed once the UI accepts requests
func (u *UI) Ready() <-chan struct{} {
	return u.readyChan
}
