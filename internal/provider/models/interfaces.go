package models

import "context"

// Provider defines the interface for model backends. One request maps to
// one blocking round trip: the full history goes out, raw assistant text
// comes back. Classification of that text is the caller's job.
type Provider interface {
	// Name returns the provider identifier used in config and errors.
	Name() string

	// Send posts the conversation and blocks until the model responds.
	// Any failure it returns is a transport failure, fatal to the
	// current request.
	Send(ctx context.Context, req *ChatRequest) (string, error)

	// ListModels returns the model names the server currently offers.
	ListModels(ctx context.Context) ([]string, error)
}
