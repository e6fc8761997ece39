package models

import (
	"github.com/hollandm/funcall/internal/config"
	orchestrator "github.com/hollandm/funcall/internal/orchestrator/models"
)

// ChatRequest carries one full conversation to the model server. The
// generation config is an opaque bag of sampling parameters passed
// through without interpretation.
type ChatRequest struct {
	// Model is the model name understood by the server.
	Model string

	// History is the complete conversation so far, system turn first.
	History []orchestrator.Turn

	// Config holds the sampling parameters for this request.
	Config config.GenerationConfig
}
