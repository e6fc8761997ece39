package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hollandm/funcall/internal/ui/models"
	"github.com/hollandm/funcall/internal/ui/services"
	"github.com/hollandm/funcall/internal/ui/views"
)

// BubbleTeaModel implements tea.Model
type BubbleTeaModel struct {
	state models.State

	// Dependencies
	renderer services.MarkdownRenderer

	// Channels for communication with the agent loop
	inputReq       <-chan inputRequest
	inputResp      chan<- string
	statusChan     <-chan statusMsg
	messageChan    <-chan string
	traceChan      <-chan traceMsg
	modelListChan  <-chan []string
	statusLineChan <-chan statusLineMsg

	// UI -> agent loop
	commandChan chan<- UICommand

	// Ready signal
	readyChan chan<- struct{}
}

// View renders the UI
func (m BubbleTeaModel) View() string {
	return views.RenderRoot(m.state, m.renderer)
}

// SpinnerFactory creates a new spinner
type SpinnerFactory func() spinner.Model

// newBubbleTeaModel creates a new Bubble Tea model
func newBubbleTeaModel(channels *UIChannels, renderer services.MarkdownRenderer, spinnerFactory SpinnerFactory) BubbleTeaModel {
	ti := textinput.New()
	ti.Placeholder = "Type a message..."
	ti.Focus()

	vp := viewport.New(80, 20)

	sp := spinnerFactory()

	return BubbleTeaModel{
		state: models.State{
			Input:    ti,
			Viewport: vp,
			Spinner:  sp,
			Messages: []models.Message{},
		},
		renderer:       renderer,
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
}

// Internal messages
type tickMsg time.Time
type inputRequestMsg inputRequest
type statusUpdateMsg statusMsg
type messageReceivedMsg string
type traceReceivedMsg traceMsg
type modelListReceivedMsg []string
type statusLineReceivedMsg statusLineMsg

// Init initializes the model
func (m BubbleTeaModel) Init() tea.Cmd {
	// Signal that UI is ready
	if m.readyChan != nil {
		close(m.readyChan)
	}

	return tea.Batch(
		textinput.Blink,
		m.state.Spinner.Tick,
		tick(),
		listenForInputRequests(m.inputReq),
		listenForStatus(m.statusChan),
		listenForMessages(m.messageChan),
		listenForTraces(m.traceChan),
		listenForModelList(m.modelListChan),
		listenForStatusLine(m.statusLineChan),
	)
}

// Update handles messages
func (m BubbleTeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.state.Viewport.Width = msg.Width
		m.state.Viewport.Height = msg.Height - 6 // Reserve space for input and status

	case tickMsg:
		// Update dot animation
		m.state.DotCount = (m.state.DotCount + 1) % 4
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, tea.Batch(cmd, tick())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, cmd

	case inputRequestMsg:
		m.state.CanSubmit = true
		return m, listenForInputRequests(m.inputReq)

	case statusUpdateMsg:
		m.state.StatusPhase = msg.phase
		m.state.StatusMessage = msg.message
		return m, listenForStatus(m.statusChan)

	case messageReceivedMsg:
		m.state.Messages = append(m.state.Messages, models.Message{
			Role:    "assistant",
			Content: string(msg),
		})
		m.updateViewport()
		return m, listenForMessages(m.messageChan)

	case traceReceivedMsg:
		m.state.Messages = append(m.state.Messages, models.Message{
			Role:    "trace",
			Content: fmt.Sprintf("%s %s", msg.functionName, msg.summary),
		})
		m.updateViewport()
		return m, listenForTraces(m.traceChan)

	case modelListReceivedMsg:
		m.state.ModelList = []string(msg)
		m.state.ShowModelList = true
		m.state.ModelListIndex = 0
		return m, listenForModelList(m.modelListChan)

	case statusLineReceivedMsg:
		if msg.model != "" {
			m.state.CurrentModel = msg.model
		}
		if msg.prompt != "" {
			m.state.CurrentPrompt = msg.prompt
		}
		return m, listenForStatusLine(m.statusLineChan)
	}

	// Update input
	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m BubbleTeaModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle model popup navigation
	if m.state.ShowModelList {
		switch msg.String() {
		case "up", "k":
			if m.state.ModelListIndex > 0 {
				m.state.ModelListIndex--
			}
		case "down", "j":
			if m.state.ModelListIndex < len(m.state.ModelList)-1 {
				m.state.ModelListIndex++
			}
		case "enter":
			// Send switch model command
			if m.state.ModelListIndex < len(m.state.ModelList) {
				m.commandChan <- UICommand{
					Type: "switch_model",
					Args: map[string]string{
						"model": m.state.ModelList[m.state.ModelListIndex],
					},
				}
			}
			m.state.ShowModelList = false
		case "esc":
			m.state.ShowModelList = false
		}
		return m, nil
	}

	// Handle normal input
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		if m.state.CanSubmit && m.state.Input.Value() != "" {
			input := m.state.Input.Value()

			// Check for commands
			if strings.HasPrefix(input, "/") {
				return m.handleCommand(input)
			}

			// Send user message
			m.state.Messages = append(m.state.Messages, models.Message{
				Role:    "user",
				Content: input,
			})
			m.updateViewport()

			// Send to agent loop
			m.inputResp <- input
			m.state.Input.SetValue("")
			m.state.CanSubmit = false
		}
	}

	return m, nil
}

const helpText = `Available commands:
- /models - List and switch models
- /model <name> - Switch to a model by name
- /prompts - List available system prompts
- /prompt <name> - Switch system prompt (resets the conversation)
- /presets - List generation presets
- /preset <name> - Apply a generation preset
- /status - Show the current session settings
- /shellcmds - Show whether shell commands are offered to the model
- /clear - Clear the chat log
- /quit - Exit
- /help - Show this help`

// handleCommand handles slash commands
func (m BubbleTeaModel) handleCommand(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}
	m.state.Input.SetValue("")

	switch parts[0] {
	case "/models":
		m.commandChan <- UICommand{Type: "list_models"}

	case "/model":
		if len(parts) < 2 {
			return m.appendAssistant("Usage: /model <name>"), nil
		}
		m.commandChan <- UICommand{
			Type: "switch_model",
			Args: map[string]string{"model": parts[1]},
		}

	case "/prompts":
		m.commandChan <- UICommand{Type: "list_prompts"}

	case "/prompt":
		if len(parts) < 2 {
			return m.appendAssistant("Usage: /prompt <name>"), nil
		}
		m.commandChan <- UICommand{
			Type: "switch_prompt",
			Args: map[string]string{"prompt": parts[1]},
		}

	case "/status":
		m.commandChan <- UICommand{Type: "show_status"}

	case "/shellcmds":
		m.commandChan <- UICommand{Type: "shell_status"}

	case "/presets":
		m.commandChan <- UICommand{Type: "list_presets"}

	case "/preset":
		if len(parts) < 2 {
			return m.appendAssistant("Usage: /preset <name>"), nil
		}
		m.commandChan <- UICommand{
			Type: "switch_preset",
			Args: map[string]string{"preset": parts[1]},
		}

	case "/clear":
		m.state.Messages = nil
		m.updateViewport()

	case "/quit":
		return m, tea.Quit

	case "/help":
		return m.appendAssistant(helpText), nil

	default:
		return m.appendAssistant(fmt.Sprintf("Unknown command: %s (try /help)", parts[0])), nil
	}

	return m, nil
}

func (m BubbleTeaModel) appendAssistant(content string) BubbleTeaModel {
	m.state.Messages = append(m.state.Messages, models.Message{
		Role:    "assistant",
		Content: content,
	})
	m.updateViewport()
	return m
}

// updateViewport updates the viewport content
func (m *BubbleTeaModel) updateViewport() {
	content := views.FormatChatContent(m.state.Messages, m.state.Width-4, m.renderer)
	m.state.Viewport.SetContent(content)
	m.state.Viewport.GotoBottom()
}

// Helper commands for listening to channels
func listenForInputRequests(ch <-chan inputRequest) tea.Cmd {
	return func() tea.Msg {
		return inputRequestMsg(<-ch)
	}
}

func listenForStatus(ch <-chan statusMsg) tea.Cmd {
	return func() tea.Msg {
		return statusUpdateMsg(<-ch)
	}
}

func listenForMessages(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		return messageReceivedMsg(<-ch)
	}
}

func listenForTraces(ch <-chan traceMsg) tea.Cmd {
	return func() tea.Msg {
		return traceReceivedMsg(<-ch)
	}
}

func listenForModelList(ch <-chan []string) tea.Cmd {
	return func() tea.Msg {
		return modelListReceivedMsg(<-ch)
	}
}

func listenForStatusLine(ch <-chan statusLineMsg) tea.Cmd {
	return func() tea.Msg {
		return statusLineReceivedMsg(<-ch)
	}
}

func tick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
