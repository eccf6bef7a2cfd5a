package llmprovider

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"taskboard/pkg/gemini"
)

// geminiAdapter adapts the Gemini client to the Provider interface.
type geminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter wraps a Gemini client as a Provider.
func NewGeminiAdapter(client gemini.IGemini) Provider {
	return &geminiAdapter{client: client}
}

func (a *geminiAdapter) Complete(ctx context.Context, prompt string) (string, error) {
	out, err := a.client.GenerateText(ctx, prompt)
	if err != nil {
		return "", &ProviderError{Provider: a.Name(), Err: err}
	}
	return out, nil
}

func (a *geminiAdapter) Name() string { return "gemini" }

func (a *geminiAdapter) Model() string { return a.client.Model() }

// openaiAdapter adapts the OpenAI chat completion client to the Provider
// interface. Works against any OpenAI-compatible endpoint via BaseURL.
type openaiAdapter struct {
	client *openai.Client
	model  string
}

// NewOpenAIAdapter wraps an OpenAI client as a Provider.
func NewOpenAIAdapter(client *openai.Client, model string) Provider {
	return &openaiAdapter{client: client, model: model}
}

func (a *openaiAdapter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", &ProviderError{Provider: a.Name(), Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &ProviderError{Provider: a.Name(), Err: errors.New("empty response, no choices")}
	}
	return resp.Choices[0].Message.Content, nil
}

func (a *openaiAdapter) Name() string { return "openai" }

func (a *openaiAdapter) Model() string { return a.model }
