package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/promoforge/promoforge/types"
	"github.com/spf13/cobra"
)

var (
	enhanceMode string
	promptMode  string
	promptTopic string
	promptTone  string
)

// enhanceCmd rewrites a rough prompt into a sharper one.
var enhanceCmd = &cobra.Command{
	Use:   "enhance <prompt>",
	Short: "Improve a generation prompt with the model.",
	Long: `Rewrites a rough free-text prompt into a clearer, more specific one
suitable for marketing copy generation. Prints the improved prompt to stdout
so it can be piped into 'generate sms --prompt'.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		cfg := GetConfig()
		apiKey := resolveAPIKey(cfg)
		if apiKey == "" {
			HandleError("Error: An OpenRouter API key is required. Set OPENROUTER_API_KEY or run 'promoforge config set-key'.", nil)
		}

		mode, err := types.ParseMode(enhanceMode)
		if err != nil {
			HandleError(fmt.Sprintf("Error: %v", err), err)
		}

		gen, err := newGenerator(cfg, apiKey)
		if err != nil {
			HandleError("Error: Could not create the LLM provider.", err)
		}

		rawPrompt := strings.Join(args, " ")

		s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
		s.Suffix = " Enhancing prompt..."
		s.Start()
		improved, err := gen.EnhancePrompt(ctx, apiKey, mode, rawPrompt, cfg.Generation)
		s.Stop()
		fmt.Println()

		if err != nil {
			HandleError("Error: Prompt enhancement failed.", err)
		}
		fmt.Println(improved)
	},
}

// promptCmd drafts an initial prompt from a topic and tone.
var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Draft an initial generation prompt from a topic and tone.",
	Long: `Drafts a generation prompt from just a topic and tone, for starting a
campaign from scratch. Prints only the prompt text.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		cfg := GetConfig()
		apiKey := resolveAPIKey(cfg)
		if apiKey == "" {
			HandleError("Error: An OpenRouter API key is required. Set OPENROUTER_API_KEY or run 'promoforge config set-key'.", nil)
		}
		if promptTopic == "" {
			HandleError("Error: The --topic flag is required.", nil)
		}
		mode, err := types.ParseMode(promptMode)
		if err != nil {
			HandleError(fmt.Sprintf("Error: %v", err), err)
		}

		gen, err := newGenerator(cfg, apiKey)
		if err != nil {
			HandleError("Error: Could not create the LLM provider.", err)
		}

		s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
		s.Suffix = " Drafting prompt..."
		s.Start()
		drafted, err := gen.PromptFromTopicTone(ctx, apiKey, mode, promptTopic, promptTone, cfg.Generation)
		s.Stop()
		fmt.Println()

		if err != nil {
			HandleError("Error: Prompt drafting failed.", err)
		}
		fmt.Println(drafted)
	},
}

func init() {
	rootCmd.AddCommand(enhanceCmd)
	rootCmd.AddCommand(promptCmd)

	enhanceCmd.Flags().StringVar(&enhanceMode, "mode", "sms", "content channel (sms or email)")
	promptCmd.Flags().StringVar(&promptMode, "mode", "sms", "content channel (sms or email)")
	promptCmd.Flags().StringVar(&promptTopic, "topic", "", "campaign topic")
	promptCmd.Flags().StringVar(&promptTone, "tone", "friendly", "tone of voice")
}
