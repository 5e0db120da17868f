package generation

import (
	"strings"

	"github.com/promoforge/promoforge/types"
	"github.com/promoforge/promoforge/validation"
)

// trackingLink is appended to every valid SMS unless the settings opt out.
const trackingLink = "\n>>> https://vbs.com/xxxxx"

// candidateSeparator splits a multi-message completion into candidates.
const candidateSeparator = "---"

// processSMS splits the raw completion into candidate messages, validates
// each against the SMS constraints, and partitions them into delivered
// results and dropped candidates. A response with at least one valid
// candidate succeeds; a response where every candidate fails validation is a
// validation failure carrying the per-candidate violations.
func processSMS(content string, settings types.GenerationSettings) types.GenerationOutcome {
	var (
		results []types.CandidateMessage
		dropped []types.CandidateError
	)
	for _, raw := range strings.Split(content, candidateSeparator) {
		msg := strings.TrimSpace(raw)
		if msg == "" {
			continue
		}
		result := validation.ValidateSMS(msg, settings.UseEmojis)
		if !result.Valid {
			dropped = append(dropped, types.CandidateError{Message: msg, Errors: result.Errors})
			continue
		}
		if settings.AppendLink() {
			msg += trackingLink
		}
		results = append(results, types.CandidateMessage{Text: msg})
	}

	if len(results) == 0 {
		return types.ValidationFailureOutcome("SMS validation failed", dropped)
	}
	return types.SuccessOutcome(results, dropped)
}
