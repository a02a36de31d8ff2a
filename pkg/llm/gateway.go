package llm

import (
	"context"

	"go.uber.org/zap"
)

const (
	unavailableMessage = "I'm sorry, but AI functionality is currently unavailable. Please configure an API key to enable AI responses."
	apologyPrefix      = "I'm sorry, I'm having trouble connecting right now. Please try again in a moment."

	maxErrorExcerpt = 80
)

// Gateway is the single seam between the chat pipeline and the hosted LLM.
// It never returns an error: transport and API failures are substituted with a
// fixed user-facing apology so callers have nothing provider-specific to catch.
type Gateway struct {
	client      ChatClientInterface
	maxTokens   int
	temperature float32
	logger      *zap.Logger
}

func NewGateway(client ChatClientInterface, maxTokens int, temperature float32, logger *zap.Logger) *Gateway {
	return &Gateway{
		client:      client,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}
}

// Configured reports whether a chat client is available.
func (g *Gateway) Configured() bool {
	return g.client != nil
}

func (g *Gateway) Provider() string {
	if g.client == nil {
		return "none"
	}
	return g.client.Provider()
}

// Complete runs one chat completion and always returns displayable text.
func (g *Gateway) Complete(ctx context.Context, messages []Message) string {
	if g.client == nil {
		return unavailableMessage
	}

	content, err := g.client.Complete(ctx, messages, g.maxTokens, g.temperature)
	if err != nil {
		g.logger.Error("chat completion failed",
			zap.String("provider", g.client.Provider()),
			zap.Error(err))
		return apologyPrefix + " Error: " + truncateError(err)
	}
	return content
}

func truncateError(err error) string {
	msg := err.Error()
	if runes := []rune(msg); len(runes) > maxErrorExcerpt {
		msg = string(runes[:maxErrorExcerpt]) + "..."
	}
	return msg
}
