package llm

import (
	"context"
	"fmt"
	"strings"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry of an assembled chat-completion prompt.
type Message struct {
	Role    string
	Content string
}

// ChatClientInterface is the single outbound contract to a hosted
// chat-completion API.
type ChatClientInterface interface {
	Complete(ctx context.Context, messages []Message, maxTokens int, temperature float32) (string, error)
	Provider() string
}

// NewChatClient creates a chat client for the configured provider.
func NewChatClient(provider, apiKey, model string) (ChatClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIChatClient(apiKey, model), nil
	case "openrouter":
		return NewOpenRouterChatClient(apiKey, model), nil
	case "gemini":
		client, err := NewGeminiChatClient(apiKey, model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported chat provider: %s. Use 'openai', 'openrouter' or 'gemini'", provider)
	}
}
