package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/briandowns/spinner"
	"github.com/google/uuid"
	"github.com/promoforge/promoforge/generation"
	"github.com/promoforge/promoforge/types"
	"github.com/spf13/cobra"
)

var (
	genPrompt     string
	genNumResults int
	genTopic      string
	genDate       string
	genTone       string
	genLength     int
	genHref       string
	genEmojis     bool
	genNoLink     bool
	genProject    string
	genModel      string
	genRetries    int
	genJSON       bool
	genOutput     string
	genSubject    string
	genMessage    string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate marketing copy.",
	Long:  `The generate command has subcommands for each content channel: SMS and email.`,
}

var generateSMSCmd = &cobra.Command{
	Use:   "sms",
	Short: "Generate SMS marketing messages.",
	Long: `Generates SMS marketing copy and validates every candidate against
carrier constraints: a 128 character limit (40 with emojis) and an exact
emoji count. Candidates that fail validation are dropped; if every candidate
fails, the model is re-prompted with the violations up to the retry budget.

Requires an OpenRouter API key, set via OPENROUTER_API_KEY, the
PROMOFORGE_LLM_APIKEY environment variable, or llm.apiKey in the config file.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		// Graceful shutdown context listening for SIGINT (Ctrl+C)
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		cfg := GetConfig()
		apiKey := resolveAPIKey(cfg)
		if apiKey == "" {
			HandleError("Error: An OpenRouter API key is required. Set OPENROUTER_API_KEY or run 'promoforge config set-key'.", nil)
		}
		if genPrompt == "" {
			HandleError("Error: The --prompt flag is required for SMS generation.", nil)
		}

		gen, err := newGenerator(cfg, apiKey)
		if err != nil {
			HandleError("Error: Could not create the LLM provider.", err)
		}

		settings := settingsFromFlags(cmd, cfg)
		maxRetries := genRetries
		if !cmd.Flags().Changed("retries") {
			maxRetries = cfg.LLM.MaxRetries
		}

		s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
		s.Suffix = fmt.Sprintf(" Generating SMS copy using %s...", modelName(settings, cfg))
		s.Start()

		params := generation.Params{
			APIKey:     apiKey,
			Mode:       types.ModeSMS,
			UserPrompt: genPrompt,
			Settings:   settings,
			OnProgress: func(attempt, max int) {
				s.Suffix = fmt.Sprintf(" Retrying after validation failure (attempt %d/%d)...", attempt, max)
			},
			OnValidationError: func(errs []types.CandidateError, attempt int) {
				LogError(fmt.Sprintf("attempt %d: %d candidate(s) failed validation", attempt, len(errs)), nil)
			},
		}

		outcome := gen.GenerateSMSWithRetry(ctx, params, maxRetries)
		s.Stop()
		fmt.Println() // Newline after spinner stops

		reportOutcome(ctx, outcome, types.ModeSMS)
	},
}

var generateEmailCmd = &cobra.Command{
	Use:   "email",
	Short: "Generate email marketing content.",
	Long: `Generates email subject and body copy. The prompt is optional: with
--subject and --message the model works from the provided draft instead.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		cfg := GetConfig()
		apiKey := resolveAPIKey(cfg)
		if apiKey == "" {
			HandleError("Error: An OpenRouter API key is required. Set OPENROUTER_API_KEY or run 'promoforge config set-key'.", nil)
		}

		gen, err := newGenerator(cfg, apiKey)
		if err != nil {
			HandleError("Error: Could not create the LLM provider.", err)
		}

		settings := settingsFromFlags(cmd, cfg)

		s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
		s.Suffix = fmt.Sprintf(" Generating email copy using %s...", modelName(settings, cfg))
		s.Start()

		outcome := gen.GenerateContent(ctx, generation.Params{
			APIKey:     apiKey,
			Mode:       types.ModeEmail,
			UserPrompt: genPrompt,
			Settings:   settings,
		})
		s.Stop()
		fmt.Println()

		reportOutcome(ctx, outcome, types.ModeEmail)
	},
}

// settingsFromFlags overlays command line flags onto the configured
// generation defaults. Only flags the user actually set override config.
func settingsFromFlags(cmd *cobra.Command, cfg *types.AppConfig) types.GenerationSettings {
	settings := cfg.Generation

	if cmd.Flags().Changed("num") {
		settings.NumResults = genNumResults
	}
	if cmd.Flags().Changed("topic") {
		settings.Topic = genTopic
	}
	if cmd.Flags().Changed("date") {
		settings.Date = genDate
	}
	if cmd.Flags().Changed("tone") {
		settings.Tone = genTone
	}
	if cmd.Flags().Changed("length") {
		settings.Length = genLength
	}
	if cmd.Flags().Changed("href") {
		settings.Href = genHref
	}
	if cmd.Flags().Changed("emojis") {
		settings.UseEmojis = genEmojis
	}
	if cmd.Flags().Changed("no-link") {
		include := !genNoLink
		settings.IncludeTemplate = &include
	}
	if cmd.Flags().Changed("project") {
		settings.Project = genProject
	}
	if cmd.Flags().Changed("model") {
		settings.Model = genModel
	}
	if cmd.Flags().Changed("subject") {
		settings.Subject = genSubject
	}
	if cmd.Flags().Changed("message") {
		settings.Message = genMessage
	}
	if settings.Model == "" {
		settings.Model = cfg.LLM.ModelName
	}
	return settings
}

func modelName(settings types.GenerationSettings, cfg *types.AppConfig) string {
	if settings.Model != "" {
		return settings.Model
	}
	return cfg.LLM.ModelName
}

// exportedResult is the JSON shape written by --json / --output.
type exportedResult struct {
	ID      string `json:"id"`
	Mode    string `json:"mode"`
	Text    string `json:"text,omitempty"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`
}

// reportOutcome renders the outcome to the terminal or as JSON, and exits
// non-zero on failure.
func reportOutcome(ctx context.Context, outcome types.GenerationOutcome, mode types.Mode) {
	if !outcome.OK() {
		if ctx.Err() != nil {
			fmt.Println("\nOperation cancelled by user.")
			os.Exit(130) // Standard exit code for Ctrl+C
		}
		if outcome.Kind == types.OutcomeValidationFailure {
			renderValidationFailure(outcome)
			os.Exit(1)
		}
		HandleError(fmt.Sprintf("Error: %s", outcome.Err), nil)
	}

	if genJSON || genOutput != "" {
		exported := make([]exportedResult, 0, len(outcome.Results))
		for _, r := range outcome.Results {
			exported = append(exported, exportedResult{
				ID:      uuid.New().String(),
				Mode:    string(mode),
				Text:    r.Text,
				Subject: r.Subject,
				Body:    r.Body,
			})
		}
		data, err := json.MarshalIndent(exported, "", "  ")
		if err != nil {
			HandleError("Error: Could not encode results as JSON.", err)
		}
		if genOutput != "" {
			if err := os.WriteFile(genOutput, append(data, '\n'), 0644); err != nil {
				HandleError(fmt.Sprintf("Error: Could not write results to '%s'.", genOutput), err)
			}
			fmt.Printf("Wrote %d result(s) to %s\n", len(exported), genOutput)
		} else {
			fmt.Println(string(data))
		}
		return
	}

	renderResults(outcome, mode)
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.AddCommand(generateSMSCmd)
	generateCmd.AddCommand(generateEmailCmd)

	for _, c := range []*cobra.Command{generateSMSCmd, generateEmailCmd} {
		c.Flags().StringVarP(&genPrompt, "prompt", "p", "", "free-text description of the content to generate")
		c.Flags().IntVarP(&genNumResults, "num", "n", 1, "number of candidate messages to request")
		c.Flags().StringVar(&genTopic, "topic", "", "campaign topic")
		c.Flags().StringVar(&genDate, "date", "", "campaign date or seasonal context")
		c.Flags().StringVar(&genTone, "tone", "", "tone of voice")
		c.Flags().IntVar(&genLength, "length", 0, "target character count")
		c.Flags().StringVar(&genProject, "project", "", "brand or project name")
		c.Flags().StringVar(&genModel, "model", "", "model identifier to use")
		c.Flags().BoolVar(&genJSON, "json", false, "print results as JSON")
		c.Flags().StringVarP(&genOutput, "output", "o", "", "write results as JSON to a file")
	}

	generateSMSCmd.Flags().BoolVar(&genEmojis, "emojis", false, "require exactly one emoji per message")
	generateSMSCmd.Flags().BoolVar(&genNoLink, "no-link", false, "do not append the delivery link to valid messages")
	generateSMSCmd.Flags().IntVar(&genRetries, "retries", generation.DefaultMaxRetries, "retry budget for validation failures")

	generateEmailCmd.Flags().StringVar(&genHref, "href", "", "link to include in the email copy")
	generateEmailCmd.Flags().StringVar(&genSubject, "subject", "", "subject line draft to refine")
	generateEmailCmd.Flags().StringVar(&genMessage, "message", "", "message body draft to refine")
}
