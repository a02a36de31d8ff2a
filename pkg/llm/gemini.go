package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiChatClient implements ChatClientInterface using Google's Gemini models.
// Gemini takes a single text prompt, so the message list is flattened into a
// Human/Assistant transcript with the system message on top.
type GeminiChatClient struct {
	client *genai.Client
	model  string
}

func NewGeminiChatClient(apiKey, model string) (*GeminiChatClient, error) {
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiChatClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiChatClient) Provider() string {
	return "gemini"
}

func (c *GeminiChatClient) Complete(ctx context.Context, messages []Message, maxTokens int, temperature float32) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(temperature)
	m.SetMaxOutputTokens(int32(maxTokens))

	resp, err := m.GenerateContent(ctx, genai.Text(flattenMessages(messages)))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return strings.TrimSpace(content), nil
}

func flattenMessages(messages []Message) string {
	var b strings.Builder
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			b.WriteString(m.Content)
			b.WriteString("\n\n")
		case RoleAssistant:
			fmt.Fprintf(&b, "Assistant: %s\n", m.Content)
		default:
			fmt.Fprintf(&b, "Human: %s\n", m.Content)
		}
	}
	b.WriteString("Assistant:")
	return b.String()
}

func (c *GeminiChatClient) Close() error {
	return c.client.Close()
}
