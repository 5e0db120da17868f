package generation

import (
	"encoding/json"
	"strings"

	"github.com/promoforge/promoforge/types"
)

// emailPayload mirrors the JSON shape the email templates instruct the model
// to produce.
type emailPayload struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// processEmail parses the completion as JSON email content. Models wrap the
// payload in prose often enough that a substring scan for the first JSON
// object or array is worth the trouble. Parsing never hard-errors: anything
// unusable, including an empty array, falls back to a single result carrying
// the raw content so the caller always has something to show.
func processEmail(content string) types.GenerationOutcome {
	if results := parseEmailJSON(content); len(results) > 0 {
		return types.SuccessOutcome(results, nil)
	}
	return types.SuccessOutcome([]types.CandidateMessage{{
		Subject: "Generated Email",
		Body:    content,
	}}, nil)
}

func parseEmailJSON(content string) []types.CandidateMessage {
	raw := extractJSON(content)
	if raw == "" {
		return nil
	}

	var payloads []emailPayload
	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal([]byte(raw), &payloads); err != nil {
			return nil
		}
	} else {
		var single emailPayload
		if err := json.Unmarshal([]byte(raw), &single); err != nil {
			return nil
		}
		payloads = []emailPayload{single}
	}

	var results []types.CandidateMessage
	for _, p := range payloads {
		if p.Subject == "" || p.Message == "" {
			return nil
		}
		results = append(results, types.CandidateMessage{Subject: p.Subject, Body: p.Message})
	}
	return results
}

// extractJSON returns the earliest {...} or [...] region of content, or the
// trimmed content itself when it already starts with a JSON delimiter.
// Whichever opening delimiter appears first decides the region's shape.
func extractJSON(content string) string {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return trimmed
	}

	opening, closing := "{", "}"
	objStart := strings.Index(trimmed, "{")
	arrStart := strings.Index(trimmed, "[")
	if objStart < 0 || (arrStart >= 0 && arrStart < objStart) {
		opening, closing = "[", "]"
	}

	start := strings.Index(trimmed, opening)
	end := strings.LastIndex(trimmed, closing)
	if start >= 0 && end > start {
		return trimmed[start : end+1]
	}
	return ""
}
