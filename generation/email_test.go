package generation

import (
	"testing"

	"github.com/promoforge/promoforge/types"
)

func TestProcessEmail(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantResults []types.CandidateMessage
	}{
		{
			name:    "single object",
			content: `{"subject":"Big savings","message":"Save 20% today."}`,
			wantResults: []types.CandidateMessage{
				{Subject: "Big savings", Body: "Save 20% today."},
			},
		},
		{
			name:    "array of objects",
			content: `[{"subject":"A","message":"First."},{"subject":"B","message":"Second."}]`,
			wantResults: []types.CandidateMessage{
				{Subject: "A", Body: "First."},
				{Subject: "B", Body: "Second."},
			},
		},
		{
			name:    "JSON wrapped in prose",
			content: "Here is your email:\n{\"subject\":\"Wrapped\",\"message\":\"Found it.\"}\nEnjoy!",
			wantResults: []types.CandidateMessage{
				{Subject: "Wrapped", Body: "Found it."},
			},
		},
		{
			name:    "plain prose falls back to raw content",
			content: "Subject: Big savings\nSave 20% today.",
			wantResults: []types.CandidateMessage{
				{Subject: "Generated Email", Body: "Subject: Big savings\nSave 20% today."},
			},
		},
		{
			name:    "missing subject falls back",
			content: `{"subject":"","message":"body only"}`,
			wantResults: []types.CandidateMessage{
				{Subject: "Generated Email", Body: `{"subject":"","message":"body only"}`},
			},
		},
		{
			name:    "missing message falls back",
			content: `{"subject":"S"}`,
			wantResults: []types.CandidateMessage{
				{Subject: "Generated Email", Body: `{"subject":"S"}`},
			},
		},
		{
			name:    "malformed JSON falls back",
			content: `{"subject": "unterminated`,
			wantResults: []types.CandidateMessage{
				{Subject: "Generated Email", Body: `{"subject": "unterminated`},
			},
		},
		{
			name:    "one bad item poisons the whole array",
			content: `[{"subject":"A","message":"ok"},{"subject":"B"}]`,
			wantResults: []types.CandidateMessage{
				{Subject: "Generated Email", Body: `[{"subject":"A","message":"ok"},{"subject":"B"}]`},
			},
		},
		{
			name:    "empty array falls back to raw content",
			content: `[]`,
			wantResults: []types.CandidateMessage{
				{Subject: "Generated Email", Body: `[]`},
			},
		},
		{
			name:    "array appearing before object wins",
			content: `Here: [{"subject":"A","message":"First."}] and also {"subject":"B","message":"ignored"}`,
			wantResults: []types.CandidateMessage{
				{Subject: "A", Body: "First."},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := processEmail(tt.content)
			// Email processing never hard-errors.
			if !outcome.OK() {
				t.Fatalf("outcome = %+v, want success", outcome)
			}
			if len(outcome.Results) != len(tt.wantResults) {
				t.Fatalf("results = %d, want %d", len(outcome.Results), len(tt.wantResults))
			}
			for i, want := range tt.wantResults {
				if outcome.Results[i] != want {
					t.Errorf("result[%d] = %+v, want %+v", i, outcome.Results[i], want)
				}
			}
		})
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"bare array", `[1,2]`, `[1,2]`},
		{"leading whitespace", "  \n{\"a\":1}", `{"a":1}`},
		{"embedded object", `text {"a":1} more`, `{"a":1}`},
		{"embedded array", `text [1,2] more`, `[1,2]`},
		{"array before object", `text [1,2] then {"a":3}`, `[1,2]`},
		{"object before array", `text {"a":3} then [1,2]`, `{"a":3}`},
		{"unclosed object", `text {"a":1`, ""},
		{"no JSON", "nothing here", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.content); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}
