package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/promoforge/promoforge/llm"
	"github.com/promoforge/promoforge/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName = ".promoforge"
	envPrefix  = "PROMOFORGE"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single validator instance; it caches struct info.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(config *types.AppConfig) error {
	return validate.Struct(config)
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// Load .env file first if present. It's okay if it doesn't exist.
	_ = godotenv.Load()

	// Environment variable handling must be set up BEFORE reading the config
	// file so that env vars can influence config loading.
	viper.SetEnvPrefix(envPrefix) // e.g., PROMOFORGE_VERBOSE
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // llm.apiKey -> PROMOFORGE_LLM_APIKEY

	cfgFileFlag := viper.GetString("config") // Value from --config flag

	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(".")        // ./.promoforge.yaml
		viper.AddConfigPath(home)       // $HOME/.promoforge.yaml
		viper.SetConfigName(configName) // file named ".promoforge"
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFileFlag != "" {
				fmt.Fprintln(os.Stderr, "Error: Specified config file not found:", cfgFileFlag)
			} else if viper.GetBool("verbose") {
				fmt.Fprintln(os.Stderr, "No config file found. Using defaults and environment variables.")
			}
		} else {
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
		}
	}

	// Set default values
	viper.SetDefault("project.templatesDir", "templates")
	viper.SetDefault("project.campaignFile", "")

	// Defaults for LLMConfig
	viper.SetDefault("llm.provider", llm.DefaultProvider)
	viper.SetDefault("llm.modelName", llm.DefaultModel)
	viper.SetDefault("llm.apiKey", "")
	viper.SetDefault("llm.baseURL", llm.DefaultBaseURL)
	viper.SetDefault("llm.requestTimeoutSeconds", 60)
	viper.SetDefault("llm.maxRetries", 2)

	// Generation defaults
	viper.SetDefault("generation.project", "restaurant")
	viper.SetDefault("generation.num_results", 1)
	viper.SetDefault("generation.temperature", 0.8)
	viper.SetDefault("generation.top_p", 0.7)

	// After all sources are configured, unmarshal into GlobalAppConfig
	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling config: %s\n", err)
		os.Exit(1)
	}

	// Validate the populated configuration
	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration validation error: %s\n", err)
		os.Exit(1)
	}
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}

// resolveAPIKey returns the configured API key, falling back to the
// OPENROUTER_API_KEY and PROMOFORGE_LLM_APIKEY environment variables.
func resolveAPIKey(cfg *types.AppConfig) string {
	if cfg.LLM.APIKey != "" {
		return cfg.LLM.APIKey
	}
	if key := os.Getenv("OPENROUTER_API_KEY"); key != "" {
		return key
	}
	return os.Getenv(envPrefix + "_LLM_APIKEY")
}
