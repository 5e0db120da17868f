package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}

func TestPrintError(t *testing.T) {
	originalStderr := os.Stderr

	tests := []struct {
		name         string
		userMsg      string
		technicalErr error
		verbose      bool
		expectedOut  string
	}{
		{
			name:         "normal mode without error",
			userMsg:      "User friendly message",
			technicalErr: nil,
			verbose:      false,
			expectedOut:  "User friendly message",
		},
		{
			name:         "verbose mode with error",
			userMsg:      "User friendly message",
			technicalErr: &testError{msg: "technical details"},
			verbose:      true,
			expectedOut:  "Error: technical details",
		},
		{
			name:         "normal mode hides technical error",
			userMsg:      "User friendly message",
			technicalErr: &testError{msg: "technical details"},
			verbose:      false,
			expectedOut:  "User friendly message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Set("verbose", tt.verbose)
			defer viper.Set("verbose", false)

			r, w, _ := os.Pipe()
			os.Stderr = w

			PrintError(tt.userMsg, tt.technicalErr)

			_ = w.Close()
			var buf bytes.Buffer
			_, _ = buf.ReadFrom(r)
			output := strings.TrimSpace(buf.String())

			os.Stderr = originalStderr

			if !strings.Contains(output, tt.expectedOut) {
				t.Errorf("PrintError() output = %q, want to contain %q", output, tt.expectedOut)
			}
		})
	}
}

func TestLogError(t *testing.T) {
	originalStderr := os.Stderr

	tests := []struct {
		name       string
		msg        string
		err        error
		verbose    bool
		wantOutput bool
	}{
		{"silent when not verbose", "something happened", &testError{msg: "detail"}, false, false},
		{"logs with error in verbose", "something happened", &testError{msg: "detail"}, true, true},
		{"logs without error in verbose", "just a note", nil, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Set("verbose", tt.verbose)
			defer viper.Set("verbose", false)

			r, w, _ := os.Pipe()
			os.Stderr = w

			LogError(tt.msg, tt.err)

			_ = w.Close()
			var buf bytes.Buffer
			_, _ = buf.ReadFrom(r)
			output := buf.String()

			os.Stderr = originalStderr

			if tt.wantOutput && !strings.Contains(output, "[DEBUG] "+tt.msg) {
				t.Errorf("LogError() output = %q, want debug line", output)
			}
			if !tt.wantOutput && output != "" {
				t.Errorf("LogError() output = %q, want none", output)
			}
		})
	}
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", ""},
		{"short", "*****"},
		{"sk-or-v1-abcdef1234", "sk-o***********1234"},
	}
	for _, tt := range tests {
		if got := maskKey(tt.key); got != tt.want {
			t.Errorf("maskKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
