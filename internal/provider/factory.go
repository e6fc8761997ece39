package provider

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hollandm/funcall/internal/config"
	"github.com/hollandm/funcall/internal/provider/gemini"
	"github.com/hollandm/funcall/internal/provider/models"
	"github.com/hollandm/funcall/internal/provider/ollama"
	"github.com/hollandm/funcall/internal/provider/openai"
)

// New builds the model transport named by the configuration. API keys for
// the hosted providers come from the environment; local servers need none.
func New(ctx context.Context, cfg *config.Config) (models.Provider, error) {
	switch cfg.Provider {
	case "ollama":
		return ollama.New(cfg.APIBase, nil), nil

	case "openai":
		base := strings.TrimSuffix(cfg.APIBase, "/") + "/v1"
		return openai.New(base, os.Getenv("OPENAI_API_KEY")), nil

	case "gemini":
		client, err := gemini.NewRealGeminiClient(ctx, os.Getenv("GEMINI_API_KEY"))
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		return gemini.New(client), nil

	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
