// Package generation runs the prompt-build, remote-call, parse, validate
// pipeline and the bounded retry loop around it. One logical request is in
// flight per call; the package holds no shared mutable state.
package generation

import (
	"context"

	"github.com/promoforge/promoforge/campaign"
	"github.com/promoforge/promoforge/llm"
	"github.com/promoforge/promoforge/prompts"
	"github.com/promoforge/promoforge/types"
)

const (
	defaultTemperature = 0.8
	defaultTopP        = 0.7
)

// Params is the value bag for one generation request. UserPrompt is the only
// field the retry orchestrator rewrites between attempts (via its own working
// copy); Settings are read-only throughout.
type Params struct {
	APIKey     string
	Mode       types.Mode
	UserPrompt string
	Settings   types.GenerationSettings

	// OnProgress is invoked before each retry attempt with the attempt index
	// and the retry budget. Fire-and-forget notification.
	OnProgress func(attempt, maxRetries int)
	// OnValidationError is invoked each time a validation failure is
	// recorded, with the violations and the 1-based attempt number.
	OnValidationError func(errs []types.CandidateError, attempt int)
}

// Generator wires the prompt engine, campaign context, and completion
// provider into the generation pipeline.
type Generator struct {
	provider  llm.CompletionProvider
	engine    *prompts.Engine
	campaigns *campaign.Store
}

// New creates a Generator. engine and campaigns may be nil, in which case
// built-in templates and built-in campaign data are used.
func New(provider llm.CompletionProvider, engine *prompts.Engine, campaigns *campaign.Store) *Generator {
	if engine == nil {
		engine = prompts.NewEngine("")
	}
	if campaigns == nil {
		campaigns = campaign.NewStore()
	}
	return &Generator{provider: provider, engine: engine, campaigns: campaigns}
}

// GenerateContent performs one full generation attempt: precondition checks,
// prompt construction, campaign enrichment, the remote call, and
// mode-specific post-processing. The remote call is the only suspension
// point; everything else is synchronous.
func (g *Generator) GenerateContent(ctx context.Context, params Params) types.GenerationOutcome {
	if params.APIKey == "" {
		return types.FailureOutcome("OpenRouter API key is required")
	}
	if params.UserPrompt == "" && params.Mode != types.ModeEmail {
		return types.FailureOutcome("Prompt is required")
	}

	pair, err := g.engine.BuildPrompt(params.Mode, params.Settings, params.UserPrompt)
	if err != nil {
		return types.FailureOutcome(err.Error())
	}

	userInstructions := pair.UserInstructions
	if insights := g.campaigns.Insights(params.Settings.Project); insights != "" {
		userInstructions += insights
		userInstructions += g.campaigns.FormatForPrompt(params.Settings.Project)
	}

	content, err := g.provider.Complete(ctx, completionRequest(params.Settings, pair.SystemPrompt, userInstructions))
	if err != nil {
		return types.FailureOutcome(err.Error())
	}

	switch params.Mode {
	case types.ModeSMS:
		return processSMS(content, params.Settings)
	case types.ModeEmail:
		return processEmail(content)
	default:
		return types.FailureOutcome((&types.UnknownModeError{Mode: string(params.Mode)}).Error())
	}
}

// completionRequest maps the settings onto the wire request, applying the
// fixed defaults for anything unset.
func completionRequest(settings types.GenerationSettings, systemPrompt, userInstructions string) llm.ChatRequest {
	model := settings.Model
	if model == "" {
		model = llm.DefaultModel
	}
	temperature := settings.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}
	topP := settings.TopP
	if topP == 0 {
		topP = defaultTopP
	}

	return llm.ChatRequest{
		Model: model,
		Messages: []llm.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userInstructions},
		},
		Temperature:      temperature,
		TopP:             llm.Float64(topP),
		FrequencyPenalty: llm.Float64(settings.FrequencyPenalty),
		PresencePenalty:  llm.Float64(settings.PresencePenalty),
	}
}
