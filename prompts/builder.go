package prompts

import (
	"strconv"

	"github.com/promoforge/promoforge/types"
)

// Engine resolves templates (built-in or file overrides) and builds prompt
// pairs. The zero value uses built-in templates only; NewEngine wires in a
// templates directory for overrides.
type Engine struct {
	templatesDir string
}

// NewEngine returns an Engine that checks templatesDir for override files
// before falling back to the built-in templates. Pass "" to disable
// overrides.
func NewEngine(templatesDir string) *Engine {
	return &Engine{templatesDir: templatesDir}
}

// BuildPrompt assembles the fully interpolated system/user prompt pair for
// one generation attempt. Pure function of its inputs: settings are never
// mutated, and each call builds a fresh pair.
func (e *Engine) BuildPrompt(mode types.Mode, settings types.GenerationSettings, userPrompt string) (types.PromptPair, error) {
	var tmpl modeTemplate
	var sysKey, userKey PromptKey

	switch mode {
	case types.ModeSMS:
		tmpl, sysKey, userKey = smsTemplate, KeySMSSystem, KeySMSUser
	case types.ModeEmail:
		tmpl, sysKey, userKey = emailTemplate, KeyEmailSystem, KeyEmailUser
	default:
		return types.PromptPair{}, &types.UnknownModeError{Mode: string(mode)}
	}

	system, err := GetPrompt(sysKey, e.templatesDir)
	if err != nil {
		return types.PromptPair{}, err
	}
	user, err := GetPrompt(userKey, e.templatesDir)
	if err != nil {
		return types.PromptPair{}, err
	}

	values := interpolationValues(mode, settings, userPrompt)
	values["guidelines"] = buildGuidelines(tmpl, settings)

	return types.PromptPair{
		SystemPrompt:     Interpolate(system, values),
		UserInstructions: Interpolate(user, values),
	}, nil
}

// Template returns the resolved text for one template key, honoring file
// overrides. Used by the narrower enhancement flows that skip guideline
// assembly.
func (e *Engine) Template(key PromptKey) (string, error) {
	return GetPrompt(key, e.templatesDir)
}

// BuildPrompt builds a prompt pair with built-in templates only. Shorthand
// for callers that have no override directory configured.
func BuildPrompt(mode types.Mode, settings types.GenerationSettings, userPrompt string) (types.PromptPair, error) {
	return (&Engine{}).BuildPrompt(mode, settings, userPrompt)
}

// interpolationValues gathers every named placeholder the mode templates can
// reference. Absent settings fields substitute to the empty string.
func interpolationValues(mode types.Mode, settings types.GenerationSettings, userPrompt string) map[string]string {
	project := settings.Project
	if project == "" {
		project = "restaurant"
	}
	numResults := settings.NumResults
	if numResults <= 0 {
		numResults = 1
	}

	task := "Generate SMS message"
	if mode == types.ModeEmail {
		if settings.Subject != "" || settings.Message != "" {
			task = "Generate based on provided subject/message"
		} else {
			task = "Generate email content"
		}
	}

	values := map[string]string{
		"project":              project,
		"num_results":          strconv.Itoa(numResults),
		"user_prompt":          userPrompt,
		"user_request_context": userPrompt,
		"generation_task":      task,
		"topic":                settings.Topic,
		"date":                 settings.Date,
		"tone":                 settings.Tone,
		"href":                 settings.Href,
		"subject":              settings.Subject,
		"message":              settings.Message,
	}
	if settings.Length > 0 {
		values["length"] = strconv.Itoa(settings.Length)
	}
	return values
}
