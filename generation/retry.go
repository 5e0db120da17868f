package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/promoforge/promoforge/types"
)

// DefaultMaxRetries is the retry budget when the caller does not set one.
// Total attempts are maxRetries+1.
const DefaultMaxRetries = 2

// GenerateSMSWithRetry runs GenerateContent in SMS mode up to maxRetries+1
// times. After a validation failure the dropped candidates and their
// violations are appended to the working user prompt as corrective feedback,
// accumulating across attempts so the model sees every prior failure; the
// original prompt in params is never mutated. Hard failures return
// immediately. When the budget is exhausted the last validation failure is
// returned so the caller sees the final violations.
func (g *Generator) GenerateSMSWithRetry(ctx context.Context, params Params, maxRetries int) types.GenerationOutcome {
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}

	workingPrompt := params.UserPrompt
	var lastFailure types.GenerationOutcome

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 && params.OnProgress != nil {
			params.OnProgress(attempt, maxRetries)
		}

		attemptParams := params
		attemptParams.Mode = types.ModeSMS
		attemptParams.UserPrompt = workingPrompt

		outcome := g.GenerateContent(ctx, attemptParams)
		switch outcome.Kind {
		case types.OutcomeSuccess:
			return outcome
		case types.OutcomeValidationFailure:
			if params.OnValidationError != nil {
				params.OnValidationError(outcome.ValidationErrors, attempt+1)
			}
			lastFailure = outcome
			workingPrompt += validationFeedback(outcome.ValidationErrors)
		default:
			return outcome
		}
	}

	if lastFailure.Kind == types.OutcomeValidationFailure {
		return lastFailure
	}
	return types.FailureOutcome("Max retries exceeded")
}

// validationFeedback renders the failed candidates and their violations as a
// corrective block for the next attempt's prompt.
func validationFeedback(errs []types.CandidateError) string {
	var b strings.Builder
	b.WriteString("\n\nPREVIOUS ATTEMPT FAILED VALIDATION:\n")
	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		// Candidate text goes in verbatim, quotes and all; the model should
		// see exactly what it produced.
		lines = append(lines, fmt.Sprintf("- \"%s\": %s", e.Message, strings.Join(e.Errors, ", ")))
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\nPlease generate new messages that meet all requirements.")
	return b.String()
}
