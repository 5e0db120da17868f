package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/promoforge/promoforge/llm"
	"github.com/promoforge/promoforge/prompts"
	"github.com/promoforge/promoforge/types"
)

const (
	enhanceTemperature = 0.7
	enhanceMaxTokens   = 200
	seedMaxTokens      = 150

	seedSystemInstruction = "You are an AI assistant that crafts initial user prompts for marketing copy generation."
)

// EnhancePrompt asks the model to rewrite a rough user prompt into a
// sharper one using the enhancement templates. Returns the rewritten prompt
// text with surrounding whitespace stripped.
func (g *Generator) EnhancePrompt(ctx context.Context, apiKey string, mode types.Mode, prompt string, settings types.GenerationSettings) (string, error) {
	if apiKey == "" {
		return "", errors.New("OpenRouter API key is required")
	}
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("Prompt is required")
	}

	systemTemplate, err := g.engine.Template(prompts.KeyEnhanceSystem)
	if err != nil {
		return "", err
	}
	userTemplate, err := g.engine.Template(prompts.KeyEnhanceUser)
	if err != nil {
		return "", err
	}
	system := prompts.Interpolate(systemTemplate, map[string]string{"mode": string(mode)})
	user := prompts.Interpolate(userTemplate, map[string]string{"promptText": prompt})

	content, err := g.provider.Complete(ctx, llm.ChatRequest{
		Model: modelOrDefault(settings.Model),
		Messages: []llm.ChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: enhanceTemperature,
		MaxTokens:   enhanceMaxTokens,
	})
	if err != nil {
		return "", err
	}
	// An empty completion is not worth surfacing; the caller's prompt is
	// still usable as-is.
	if improved := strings.TrimSpace(content); improved != "" {
		return improved, nil
	}
	return prompt, nil
}

// PromptFromTopicTone drafts an initial generation prompt from just a topic
// and tone, for users who start with nothing.
func (g *Generator) PromptFromTopicTone(ctx context.Context, apiKey string, mode types.Mode, topic, tone string, settings types.GenerationSettings) (string, error) {
	if apiKey == "" {
		return "", errors.New("OpenRouter API key is required")
	}
	if strings.TrimSpace(topic) == "" {
		return "", errors.New("Topic is required")
	}
	if strings.TrimSpace(tone) == "" {
		return "", errors.New("Tone is required")
	}

	user := fmt.Sprintf("Create a clear, specific prompt for generating %s marketing content about %q with a %s tone. Output only the prompt text.", mode, topic, tone)

	content, err := g.provider.Complete(ctx, llm.ChatRequest{
		Model: modelOrDefault(settings.Model),
		Messages: []llm.ChatMessage{
			{Role: "system", Content: seedSystemInstruction},
			{Role: "user", Content: user},
		},
		Temperature: enhanceTemperature,
		MaxTokens:   seedMaxTokens,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

func modelOrDefault(model string) string {
	if model == "" {
		return llm.DefaultModel
	}
	return model
}
