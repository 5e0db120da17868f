package cmd

import (
	"fmt"

	"github.com/promoforge/promoforge/campaign"
	"github.com/promoforge/promoforge/generation"
	"github.com/promoforge/promoforge/llm"
	"github.com/promoforge/promoforge/prompts"
	"github.com/promoforge/promoforge/types"
)

// newGenerator assembles the generation pipeline from the loaded config:
// the completion provider, the prompt engine with template overrides, and
// the campaign store with any configured dataset file merged in.
func newGenerator(cfg *types.AppConfig, apiKey string) (*generation.Generator, error) {
	llmCfg := cfg.LLM
	llmCfg.APIKey = apiKey

	provider, err := llm.NewProvider(&llmCfg)
	if err != nil {
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}

	engine := prompts.NewEngine(cfg.Project.TemplatesDir)

	store := campaign.NewStore()
	if cfg.Project.CampaignFile != "" {
		loader := campaign.NewOsLoader()
		if err := loader.LoadInto(store, cfg.Project.CampaignFile); err != nil {
			return nil, fmt.Errorf("load campaign file %s: %w", cfg.Project.CampaignFile, err)
		}
	}

	return generation.New(provider, engine, store), nil
}
