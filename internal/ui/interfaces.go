package ui

import "context"

// UserInterface defines the contract for all user interactions.
// It follows a Read/Write pattern for clarity.
//
// All methods accept or tolerate cancellation: if the user quits, blocked
// reads return context.Canceled and the caller unwinds.
type UserInterface interface {
	// ReadInput prompts the user for general text input
	ReadInput(ctx context.Context, prompt string) (string, error)

	// WriteStatus displays ephemeral status updates (e.g., "Thinking...")
	WriteStatus(phase string, message string)

	// WriteMessage displays the agent's actual text responses
	WriteMessage(content string)

	// WriteTrace surfaces one intermediate function-call step so the
	// operator can follow what the agent is doing
	WriteTrace(functionName string, summary string)
}
