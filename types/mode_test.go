package types

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"sms", ModeSMS, false},
		{"email", ModeEmail, false},
		{"", "", true},
		{"SMS", "", true},
		{"push", "", true},
	}
	for _, tt := range tests {
		t.Run("input_"+tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseModeErrorType(t *testing.T) {
	_, err := ParseMode("fax")
	var modeErr *UnknownModeError
	if !errors.As(err, &modeErr) {
		t.Fatalf("ParseMode error = %T, want *UnknownModeError", err)
	}
	if modeErr.Mode != "fax" {
		t.Errorf("UnknownModeError.Mode = %q, want %q", modeErr.Mode, "fax")
	}
}

func TestGenerationSettingsAppendLink(t *testing.T) {
	var s GenerationSettings
	if !s.AppendLink() {
		t.Error("AppendLink() with nil IncludeTemplate = false, want true")
	}

	f := false
	s.IncludeTemplate = &f
	if s.AppendLink() {
		t.Error("AppendLink() with explicit false = true, want false")
	}

	tr := true
	s.IncludeTemplate = &tr
	if !s.AppendLink() {
		t.Error("AppendLink() with explicit true = false, want true")
	}
}

func TestOutcomeConstructors(t *testing.T) {
	ok := SuccessOutcome([]CandidateMessage{{Text: "hi"}}, nil)
	if !ok.OK() || ok.Kind != OutcomeSuccess {
		t.Errorf("SuccessOutcome not OK: %+v", ok)
	}

	vf := ValidationFailureOutcome("SMS validation failed", []CandidateError{{Message: "x", Errors: []string{"too long"}}})
	if vf.OK() || vf.Kind != OutcomeValidationFailure {
		t.Errorf("ValidationFailureOutcome kind = %v", vf.Kind)
	}
	if vf.Err != "SMS validation failed" {
		t.Errorf("Err = %q", vf.Err)
	}

	hard := FailureOutcome("boom")
	if hard.OK() || hard.Kind != OutcomeFailure {
		t.Errorf("FailureOutcome kind = %v", hard.Kind)
	}
}
