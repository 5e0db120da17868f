// Package campaign supplies historical campaign context appended to email
// prompts for recognized brands. Unrecognized brands contribute nothing.
package campaign

import (
	"fmt"
	"strings"
)

// Record is one historical campaign with its performance metrics.
type Record struct {
	Rank           int     `yaml:"rank"`
	SubjectLine    string  `yaml:"subject_line"`
	MessagePreview string  `yaml:"message_preview"`
	OpenRate       float64 `yaml:"open_rate"`
	ClickRate      float64 `yaml:"click_rate"`
	CompositeScore float64 `yaml:"composite_score"`
}

// Dataset holds one brand's campaign history and the prose insights derived
// from it. Aliases list every project string that should resolve to this
// dataset; matching is exact, not fuzzy.
type Dataset struct {
	Brand        string   `yaml:"brand"`
	Aliases      []string `yaml:"aliases"`
	AnalysisDate string   `yaml:"analysis_date"`
	Description  string   `yaml:"description"`
	Insights     string   `yaml:"insights"`
	Campaigns    []Record `yaml:"campaigns"`
}

// maxPromptExamples caps how many records are formatted into a prompt.
const maxPromptExamples = 5

const cheddarsInsights = `
Based on Cheddar's top-performing email campaigns:
- Successful subject lines often use:
  - Value propositions (2 for 1, 15% off, 20% off)
  - Emotional appeals (love, thank you, sweetheart)
  - Urgency and exclusivity
  - Holiday/seasonal themes
  - Emojis sparingly but effectively
- Best practices:
  - Keep subject lines concise (20-40 characters)
  - Lead with the offer or benefit
  - Use action-oriented language
  - Create FOMO with limited-time language
`

// cheddarsDataset is the built-in record set: top performers ranked by
// composite score.
var cheddarsDataset = Dataset{
	Brand:        "Cheddar's Scratch Kitchen",
	Aliases:      []string{"Cheddars", "Cheddar's Scratch Kitchen"},
	AnalysisDate: "2025-04-11",
	Description:  "Top performing email campaigns ranked by composite performance score",
	Insights:     cheddarsInsights,
	Campaigns: []Record{
		{Rank: 1, SubjectLine: "Get 2 true loves for 1 low price", MessagePreview: "Valentine's Day is for pairing up HERE.", OpenRate: 0.238, ClickRate: 0.0216, CompositeScore: 0.0879},
		{Rank: 2, SubjectLine: "A BIG thank you calls for BIG savings", MessagePreview: "Enjoy 15% off as our way of saying thanks.", OpenRate: 0.219, ClickRate: 0.0197, CompositeScore: 0.0800},
		{Rank: 3, SubjectLine: "Sweetheart, you get 2 entrées for $22", MessagePreview: "Fall in love with our Valentine's deal.", OpenRate: 0.201, ClickRate: 0.0183, CompositeScore: 0.0742},
		{Rank: 4, SubjectLine: "🎄 Holiday feast mode: ON", MessagePreview: "Order your holiday favorites for pickup!", OpenRate: 0.195, ClickRate: 0.0176, CompositeScore: 0.0714},
		{Rank: 5, SubjectLine: "Your table's ready... with 20% OFF", MessagePreview: "Limited time savings on your favorites.", OpenRate: 0.187, ClickRate: 0.0171, CompositeScore: 0.0696},
	},
}

// Store resolves project strings to campaign datasets.
type Store struct {
	datasets map[string]Dataset
}

// NewStore returns a Store seeded with the built-in datasets.
func NewStore() *Store {
	s := &Store{datasets: make(map[string]Dataset)}
	s.add(cheddarsDataset)
	return s
}

func (s *Store) add(d Dataset) {
	aliases := d.Aliases
	if len(aliases) == 0 {
		aliases = []string{d.Brand}
	}
	for _, alias := range aliases {
		s.datasets[alias] = d
	}
}

// Insights returns the insights paragraph for project, or the empty string
// when the project does not exactly match a known brand alias.
func (s *Store) Insights(project string) string {
	d, ok := s.datasets[project]
	if !ok {
		return ""
	}
	return d.Insights
}

// FormatForPrompt renders up to five of the brand's top campaigns as bullet
// lines for prompt context. Empty for unrecognized brands.
func (s *Store) FormatForPrompt(project string) string {
	d, ok := s.datasets[project]
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\nTop Performing Campaign Examples:\n")
	for i, c := range d.Campaigns {
		if i >= maxPromptExamples {
			break
		}
		fmt.Fprintf(&b, "- Subject: %q | Preview: %q\n", c.SubjectLine, c.MessagePreview)
	}
	return b.String()
}
