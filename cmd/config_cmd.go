package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/promoforge/promoforge/llm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// configCmd is the parent config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage PromoForge configuration",
	Long:  `View and manage PromoForge configuration settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigView()
	},
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigView()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigInit()
	},
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Store the OpenRouter API key in the config file",
	Long: `Prompts for the OpenRouter API key without echoing it and stores it in
the configuration file. Prefer the OPENROUTER_API_KEY environment variable if
you'd rather not persist the key on disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigSetKey()
	},
}

var configCheckKeyCmd = &cobra.Command{
	Use:   "check-key",
	Short: "Verify the configured API key against the OpenRouter API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigCheckKey(cmd.Context())
	},
}

// redactedConfig is the YAML shape printed by 'config view'. The API key is
// masked; everything else mirrors the effective config.
type redactedConfig struct {
	Verbose bool `yaml:"verbose"`
	Project struct {
		TemplatesDir string `yaml:"templatesDir"`
		CampaignFile string `yaml:"campaignFile,omitempty"`
	} `yaml:"project"`
	LLM struct {
		Provider              string `yaml:"provider"`
		ModelName             string `yaml:"modelName"`
		APIKey                string `yaml:"apiKey"`
		BaseURL               string `yaml:"baseURL"`
		RequestTimeoutSeconds int    `yaml:"requestTimeoutSeconds"`
		MaxRetries            int    `yaml:"maxRetries"`
	} `yaml:"llm"`
	Generation struct {
		Project     string  `yaml:"project"`
		NumResults  int     `yaml:"num_results"`
		Tone        string  `yaml:"tone,omitempty"`
		Temperature float64 `yaml:"temperature"`
		TopP        float64 `yaml:"top_p"`
	} `yaml:"generation"`
}

func runConfigView() error {
	cfg := GetConfig()

	var out redactedConfig
	out.Verbose = cfg.Verbose
	out.Project.TemplatesDir = cfg.Project.TemplatesDir
	out.Project.CampaignFile = cfg.Project.CampaignFile
	out.LLM.Provider = cfg.LLM.Provider
	out.LLM.ModelName = cfg.LLM.ModelName
	out.LLM.APIKey = maskKey(resolveAPIKey(cfg))
	out.LLM.BaseURL = cfg.LLM.BaseURL
	out.LLM.RequestTimeoutSeconds = cfg.LLM.RequestTimeoutSeconds
	out.LLM.MaxRetries = cfg.LLM.MaxRetries
	out.Generation.Project = cfg.Generation.Project
	out.Generation.NumResults = cfg.Generation.NumResults
	out.Generation.Tone = cfg.Generation.Tone
	out.Generation.Temperature = cfg.Generation.Temperature
	out.Generation.TopP = cfg.Generation.TopP

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if file := viper.ConfigFileUsed(); file != "" {
		fmt.Printf("# %s\n", file)
	}
	fmt.Print(string(data))
	return nil
}

// starterConfig is the commented template written by 'config init'.
const starterConfig = `# PromoForge configuration
project:
  templatesDir: templates
  # campaignFile: campaigns.yaml
llm:
  provider: openrouter
  modelName: google/gemini-2.0-flash-exp:free
  # apiKey: ""  # prefer OPENROUTER_API_KEY or 'promoforge config set-key'
  requestTimeoutSeconds: 60
  maxRetries: 2
generation:
  project: restaurant
  num_results: 3
  tone: friendly
`

func runConfigInit() error {
	path := configName + ".yaml"
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.WriteFile(path, []byte(starterConfig), 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	fmt.Printf("Wrote starter configuration to %s\n", abs)
	return nil
}

func runConfigSetKey() error {
	fmt.Print("OpenRouter API key: ")
	keyBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read API key: %w", err)
	}
	key := strings.TrimSpace(string(keyBytes))
	if key == "" {
		return fmt.Errorf("no key entered")
	}

	viper.Set("llm.apiKey", key)
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = configName + ".yaml"
		viper.SetConfigFile(configFile)
		if err := viper.WriteConfigAs(configFile); err != nil {
			return fmt.Errorf("write config file: %w", err)
		}
	} else if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	fmt.Printf("API key saved to %s\n", configFile)
	return nil
}

func runConfigCheckKey(ctx context.Context) error {
	cfg := GetConfig()
	apiKey := resolveAPIKey(cfg)
	if apiKey == "" {
		return fmt.Errorf("no API key configured; set OPENROUTER_API_KEY or run 'promoforge config set-key'")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	client := llm.NewOpenRouterClient(apiKey,
		llm.WithBaseURL(cfg.LLM.BaseURL),
		llm.WithTimeout(15*time.Second),
	)
	if err := client.ValidateKey(ctx); err != nil {
		return err
	}
	fmt.Println("API key is valid.")
	return nil
}

// maskKey keeps the first and last four characters of a key visible.
func maskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configViewCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetKeyCmd)
	configCmd.AddCommand(configCheckKeyCmd)
}
