package llmfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"jetfriend/pkg/config"
	"jetfriend/pkg/llm"
)

var Module = fx.Provide(
	ProvideGateway,
)

// ProvideGateway builds the LLM gateway for the configured provider. A missing
// or unusable API key degrades to an unconfigured gateway instead of failing
// startup.
func ProvideGateway(cfg *config.Config, logger *zap.Logger) *llm.Gateway {
	if !cfg.LLM.Configured() {
		logger.Warn("no LLM API key configured, chat responses will use the fallback message",
			zap.String("provider", cfg.LLM.Provider))
		return llm.NewGateway(nil, cfg.LLM.MaxTokens, cfg.LLM.Temperature, logger)
	}

	client, err := llm.NewChatClient(cfg.LLM.Provider, cfg.LLM.APIKey, cfg.LLM.Model)
	if err != nil {
		logger.Warn("failed to initialize chat client, degrading to fallback message", zap.Error(err))
		return llm.NewGateway(nil, cfg.LLM.MaxTokens, cfg.LLM.Temperature, logger)
	}

	logger.Info("chat client initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model))
	return llm.NewGateway(client, cfg.LLM.MaxTokens, cfg.LLM.Temperature, logger)
}
