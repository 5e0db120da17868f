package prompts

import (
	"strconv"
	"strings"

	"github.com/promoforge/promoforge/types"
)

// buildGuidelines assembles the optional clause block for one mode. Clause
// order is fixed: topic, date, tone, length, href, emoji. Each clause is
// gated on its settings field being present; tone and length fall back to a
// default clause when the mode template defines one. Exactly one emoji clause
// is always emitted because UseEmojis is a plain boolean.
func buildGuidelines(tmpl modeTemplate, settings types.GenerationSettings) string {
	var b strings.Builder

	if settings.Topic != "" && tmpl.topic != "" {
		b.WriteString(Interpolate(tmpl.topic, map[string]string{"topic": settings.Topic}))
	}
	if settings.Date != "" && tmpl.date != "" {
		b.WriteString(Interpolate(tmpl.date, map[string]string{"date": settings.Date}))
	}

	switch {
	case settings.Tone != "" && tmpl.tone != "":
		b.WriteString(Interpolate(tmpl.tone, map[string]string{"tone": settings.Tone}))
	case tmpl.toneDefault != "":
		b.WriteString(tmpl.toneDefault)
	}

	switch {
	case settings.Length > 0 && tmpl.length != "":
		b.WriteString(Interpolate(tmpl.length, map[string]string{"length": strconv.Itoa(settings.Length)}))
	case tmpl.lengthDefault != "":
		b.WriteString(tmpl.lengthDefault)
	}

	if settings.Href != "" && tmpl.href != "" {
		b.WriteString(Interpolate(tmpl.href, map[string]string{"href": settings.Href}))
	}

	if settings.UseEmojis {
		b.WriteString(tmpl.emojiTrue)
	} else {
		b.WriteString(tmpl.emojiFalse)
	}

	return b.String()
}
