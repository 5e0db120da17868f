package types

// GenerationSettings carries the campaign options consumed by the prompt
// template engine, the validator, and the remote call. It is read-only input:
// the engine never writes back to it. Zero values mean "no guideline clause
// for this attribute" (booleans excepted; UseEmojis always selects exactly
// one emoji clause).
type GenerationSettings struct {
	// Project identifies the brand voice. It is an opaque string except for
	// the exact brand-name matches that trigger campaign-context enrichment.
	Project string `mapstructure:"project"`
	// NumResults is the advisory candidate count requested from the model.
	// The actual count is determined by parsing the response.
	NumResults int `mapstructure:"num_results" validate:"omitempty,min=1"`

	Topic string `mapstructure:"topic"`
	Date  string `mapstructure:"date"`
	Tone  string `mapstructure:"tone"`
	// Length is the target character count guideline; 0 means use the
	// mode-specific default clause.
	Length int `mapstructure:"length" validate:"omitempty,min=1"`
	// Href is the link to weave into email copy. Ignored for SMS.
	Href      string `mapstructure:"href" validate:"omitempty,url"`
	UseEmojis bool   `mapstructure:"use_emojis"`

	// IncludeTemplate controls appending the delivery-link suffix to accepted
	// SMS candidates. nil means true; only an explicit false disables it.
	IncludeTemplate *bool `mapstructure:"include_template"`

	// Subject and Message let email generation run without a free-text
	// prompt; their presence switches the generation task wording.
	Subject string `mapstructure:"subject"`
	Message string `mapstructure:"message"`

	// Model and the sampling knobs are passed through to the remote call
	// unchanged. Zero values fall back to the fixed defaults.
	Model            string  `mapstructure:"ai_model"`
	Temperature      float64 `mapstructure:"temperature" validate:"omitempty,min=0,max=2"`
	TopP             float64 `mapstructure:"top_p" validate:"omitempty,min=0,max=1"`
	FrequencyPenalty float64 `mapstructure:"frequency_penalty" validate:"omitempty,min=-2,max=2"`
	PresencePenalty  float64 `mapstructure:"presence_penalty" validate:"omitempty,min=-2,max=2"`
}

// AppendLink reports whether the delivery-link suffix should be appended to
// accepted SMS candidates.
func (s GenerationSettings) AppendLink() bool {
	return s.IncludeTemplate == nil || *s.IncludeTemplate
}
