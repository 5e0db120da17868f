package prompts

import "regexp"

var placeholderRe = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Interpolate fills {{name}} placeholders in template with the supplied
// values. Substitution is literal and single-pass: values are never
// re-expanded, and a placeholder with no supplied value becomes the empty
// string.
func Interpolate(template string, values map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		key := match[2 : len(match)-2]
		return values[key]
	})
}
