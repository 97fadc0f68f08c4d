package llm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tandem-ai/tandem-engine/pkg/config"
)

// NewFromConfig creates the completion client selected by the configuration.
// Call only when cfg.Configured() is true; without a credential the chat
// pipeline uses a placeholder reply and never constructs a client.
func NewFromConfig(cfg *config.LLMConfig, logger *zap.Logger) (CompletionClient, error) {
	switch cfg.Provider {
	case "anthropic":
		return NewAnthropicClient(&AnthropicConfig{
			APIKey: cfg.AnthropicAPIKey,
			Model:  cfg.AnthropicModel,
		}, logger)
	case "openai":
		return NewOpenAIClient(&OpenAIConfig{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
