package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// Complete sends a single-turn prompt and returns the raw model text
	Complete(ctx context.Context, prompt string) (string, error)

	// Name returns the provider name (e.g., "gemini", "openai")
	Name() string

	// Model returns the model being used
	Model() string
}
