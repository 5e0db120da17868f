package llm

import (
	"strings"
	"testing"

	"github.com/promoforge/promoforge/types"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name    string
		config  *types.LLMConfig
		wantErr string
	}{
		{
			name:   "openrouter with key",
			config: &types.LLMConfig{Provider: "openrouter", APIKey: "sk-test"},
		},
		{
			name:   "provider name is case-insensitive",
			config: &types.LLMConfig{Provider: " OpenRouter ", APIKey: "sk-test"},
		},
		{
			name:    "openrouter without key",
			config:  &types.LLMConfig{Provider: "openrouter"},
			wantErr: "API key is missing",
		},
		{
			name:    "no provider",
			config:  &types.LLMConfig{},
			wantErr: "no LLM provider specified",
		},
		{
			name:    "unsupported provider",
			config:  &types.LLMConfig{Provider: "anthropic", APIKey: "k"},
			wantErr: "unsupported LLM provider: anthropic",
		},
		{
			name:    "nil config",
			config:  nil,
			wantErr: "cannot be nil",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(tt.config)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("NewProvider() error = %v", err)
				}
				if _, ok := provider.(*OpenRouterClient); !ok {
					t.Errorf("NewProvider() = %T, want *OpenRouterClient", provider)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("NewProvider() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
