package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/promoforge/promoforge/validation"
	"github.com/spf13/cobra"
)

var validateEmojis bool

// validateCmd checks a message against the SMS constraints locally, without
// any remote call. Useful for vetting hand-written copy.
var validateCmd = &cobra.Command{
	Use:   "validate <message>",
	Short: "Validate a message against the SMS constraints.",
	Long: `Checks a message against the SMS delivery constraints: the character
limit (128 plain, 40 with emojis, counted in UTF-16 code units) and the emoji
count (exactly one with --emojis, zero otherwise). Exits non-zero when the
message fails validation.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		message := strings.Join(args, " ")
		result := validation.ValidateSMS(message, validateEmojis)

		fmt.Printf("Characters: %d\n", result.CharCount)
		fmt.Printf("Emojis:     %d\n", result.EmojiCount)
		if result.Valid {
			fmt.Println("Valid")
			return
		}
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, e)
		}
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateEmojis, "emojis", false, "require exactly one emoji")
}
