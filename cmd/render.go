package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/promoforge/promoforge/types"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	messageStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1)

	subjectStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	droppedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)

// renderResults prints accepted candidates to the terminal, one bordered
// block per message, followed by a dimmed summary of any dropped candidates.
func renderResults(outcome types.GenerationOutcome, mode types.Mode) {
	switch mode {
	case types.ModeEmail:
		fmt.Println(headerStyle.Render(fmt.Sprintf("Generated %d email(s)", len(outcome.Results))))
	default:
		fmt.Println(headerStyle.Render(fmt.Sprintf("Generated %d message(s)", len(outcome.Results))))
	}
	fmt.Println()

	for i, r := range outcome.Results {
		var b strings.Builder
		if r.Subject != "" {
			b.WriteString(subjectStyle.Render("Subject: " + r.Subject))
			b.WriteString("\n\n")
		}
		if r.Body != "" {
			b.WriteString(r.Body)
		} else {
			b.WriteString(r.Text)
		}
		fmt.Println(messageStyle.Render(b.String()))
		if i < len(outcome.Results)-1 {
			fmt.Println()
		}
	}

	if len(outcome.Dropped) > 0 {
		fmt.Println()
		fmt.Println(droppedStyle.Render(fmt.Sprintf("%d candidate(s) dropped for validation failures:", len(outcome.Dropped))))
		for _, d := range outcome.Dropped {
			fmt.Println(droppedStyle.Render(fmt.Sprintf("  - %q: %s", d.Message, strings.Join(d.Errors, ", "))))
		}
	}
}

// renderValidationFailure prints the per-candidate violations after the
// retry budget is exhausted.
func renderValidationFailure(outcome types.GenerationOutcome) {
	fmt.Println(errorStyle.Render(outcome.Err))
	for _, d := range outcome.ValidationErrors {
		fmt.Printf("  - %q\n", d.Message)
		for _, e := range d.Errors {
			fmt.Printf("      %s\n", e)
		}
	}
}
