package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenAIChatClient implements ChatClientInterface against the OpenAI
// chat-completions API. The same client serves OpenRouter, which exposes an
// OpenAI-compatible surface under a different base URL.
type OpenAIChatClient struct {
	client   *openai.Client
	model    string
	provider string
}

func NewOpenAIChatClient(apiKey, model string) *OpenAIChatClient {
	return &OpenAIChatClient{
		client:   openai.NewClient(apiKey),
		model:    model,
		provider: "openai",
	}
}

func NewOpenRouterChatClient(apiKey, model string) *OpenAIChatClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = openRouterBaseURL
	return &OpenAIChatClient{
		client:   openai.NewClientWithConfig(cfg),
		model:    model,
		provider: "openrouter",
	}
}

func (c *OpenAIChatClient) Provider() string {
	return c.provider
}

func (c *OpenAIChatClient) Complete(ctx context.Context, messages []Message, maxTokens int, temperature float32) (string, error) {
	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    chatMessages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%s chat completion: %w", c.provider, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s chat completion: empty choices", c.provider)
	}
	return resp.Choices[0].Message.Content, nil
}
