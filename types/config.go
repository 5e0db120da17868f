package types

// AppConfig represents the complete application configuration.
type AppConfig struct {
	Verbose    bool               `mapstructure:"verbose"`
	Config     string             `mapstructure:"config"`
	Project    ProjectConfig      `mapstructure:"project"`
	LLM        LLMConfig          `mapstructure:"llm" validate:"omitempty"`
	Generation GenerationSettings `mapstructure:"generation" validate:"omitempty"`
}

// ProjectConfig holds workspace-related settings.
type ProjectConfig struct {
	// TemplatesDir optionally overrides built-in prompt templates with files.
	TemplatesDir string `mapstructure:"templatesDir"`
	// CampaignFile optionally points at a YAML dataset of brand campaign data
	// merged over the built-in records.
	CampaignFile string `mapstructure:"campaignFile"`
}

// LLMConfig holds configuration for the remote completion endpoint.
type LLMConfig struct {
	Provider  string `mapstructure:"provider" validate:"omitempty,oneof=openrouter"`
	ModelName string `mapstructure:"modelName" validate:"omitempty,min=1"`
	APIKey    string `mapstructure:"apiKey" validate:"omitempty,min=1"`
	BaseURL   string `mapstructure:"baseURL" validate:"omitempty,url"`
	// Referer and AppTitle are the two fixed identifying headers sent with
	// every request. Opaque metadata required by the endpoint's attribution
	// scheme, not part of the generation contract.
	Referer  string `mapstructure:"referer"`
	AppTitle string `mapstructure:"appTitle"`
	// RequestTimeoutSeconds controls the HTTP client timeout for remote calls.
	RequestTimeoutSeconds int `mapstructure:"requestTimeoutSeconds" validate:"omitempty,min=5,max=600"`
	// MaxRetries bounds the validation-failure retry loop.
	MaxRetries int `mapstructure:"maxRetries" validate:"omitempty,min=0,max=5"`
	// Debug enables request/response metadata logging in the provider.
	Debug bool `mapstructure:"debug"`
}
