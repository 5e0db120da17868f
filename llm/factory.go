package llm

import (
	"fmt"
	"strings"
	"time"

	"github.com/promoforge/promoforge/types"
)

// DefaultProvider is the provider name assumed when config names none.
const DefaultProvider = "openrouter"

// NewProvider is a factory function that returns a CompletionProvider based
// on the LLM configuration.
func NewProvider(config *types.LLMConfig) (CompletionProvider, error) {
	if config == nil {
		return nil, fmt.Errorf("LLM configuration cannot be nil")
	}

	provider := strings.ToLower(strings.TrimSpace(config.Provider))

	switch provider {
	case "openrouter":
		if config.APIKey == "" {
			return nil, fmt.Errorf("OpenRouter provider selected but API key is missing")
		}
		opts := []ClientOption{WithDebug(config.Debug)}
		if config.BaseURL != "" {
			opts = append(opts, WithBaseURL(config.BaseURL))
		}
		if config.Referer != "" || config.AppTitle != "" {
			opts = append(opts, WithIdentity(config.Referer, config.AppTitle))
		}
		if config.RequestTimeoutSeconds > 0 {
			opts = append(opts, WithTimeout(time.Duration(config.RequestTimeoutSeconds)*time.Second))
		}
		return NewOpenRouterClient(config.APIKey, opts...), nil
	case "":
		return nil, fmt.Errorf("no LLM provider specified in configuration")
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", config.Provider)
	}
}
