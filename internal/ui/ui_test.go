package ui

import (
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
)

// Mock dependencies
type MockMarkdownRenderer struct {
	RenderFunc func(string, int) (string, error)
}

func (m *MockMarkdownRenderer) Render(content string, width int) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(content, width)
	}
	return content, nil
}

func mockSpinnerFactory() spinner.Model {
	return spinner.New()
}

func TestReadInput_ReturnsUserInput(t *testing.T) {
	channels := NewUIChannels()
	ui := NewUI(channels, &MockMarkdownRenderer{}, mockSpinnerFactory)
	ctx := context.Background()
	expected := "hello world"
	prompt := "You: "

	go func() {
		// Verify request sent
		select {
		case req := <-channels.InputReq:
			if req.prompt != prompt {
				t.Errorf("Expected prompt '%s', got '%s'", prompt, req.prompt)
			}
			// Send response
			channels.InputResp <- expected
		case <-time.After(100 * time.Millisecond):
			t.Error("Timeout waiting for input request")
		}
	}()

	result, err := ui.ReadInput(ctx, prompt)
	assert.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestReadInput_ContextCancelled(t *testing.T) {
	channels := NewUIChannels()
	ui := NewUI(channels, &MockMarkdownRenderer{}, mockSpinnerFactory)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := ui.ReadInput(ctx, "You: ")
	assert.Error(t, err)
	assert.Equal(t, context.Canceled, err)
	assert.Empty(t, result)
}

func TestWriteStatus(t *testing.T) {
	channels := NewUIChannels()
	ui := NewUI(channels, &MockMarkdownRenderer{}, mockSpinnerFactory)

	ui.WriteStatus("thinking", "waiting on the model")

	select {
	case msg := <-channels.StatusChan:
		assert.Equal(t, "thinking", msg.phase)
		assert.Equal(t, "waiting on the model", msg.message)
	case <-time.After(100 * time.Millisecond):
		t.Error("Timeout waiting for status update")
	}
}

func TestWriteStatus_DropsWhenFull(t *testing.T) {
	channels := NewUIChannels()
	ui := NewUI(channels, &MockMarkdownRenderer{}, mockSpinnerFactory)

	// Fill the buffer; the extra write must not block.
	for i := 0; i < cap(channels.StatusChan)+5; i++ {
		ui.WriteStatus("thinking", "update")
	}
}

func TestWriteMessage(t *testing.T) {
	channels := NewUIChannels()
	ui := NewUI(channels, &MockMarkdownRenderer{}, mockSpinnerFactory)

	ui.WriteMessage("hello")

	select {
	case msg := <-channels.MessageChan:
		assert.Equal(t, "hello", msg)
	case <-time.After(100 * time.Millisecond):
		t.Error("Timeout waiting for message")
	}
}

func TestWriteTrace(t *testing.T) {
	channels := NewUIChannels()
	ui := NewUI(channels, &MockMarkdownRenderer{}, mockSpinnerFactory)

	ui.WriteTrace("get_files_info", "listed 3 entries")

	select {
	case msg := <-channels.TraceChan:
		assert.Equal(t, "get_files_info", msg.functionName)
		assert.Equal(t, "listed 3 entries", msg.summary)
	case <-time.After(100 * time.Millisecond):
		t.Error("Timeout waiting for trace")
	}
}

func TestSetStatusLine(t *testing.T) {
	channels := NewUIChannels()
	ui := NewUI(channels, &MockMarkdownRenderer{}, mockSpinnerFactory)

	ui.SetStatusLine("llama3", "default")

	select {
	case msg := <-channels.StatusLineChan:
		assert.Equal(t, "llama3", msg.model)
		assert.Equal(t, "default", msg.prompt)
	case <-time.After(100 * time.Millisecond):
		t.Error("Timeout waiting for status line")
	}
}
