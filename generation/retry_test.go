package generation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/promoforge/promoforge/types"
)

func TestGenerateSMSWithRetrySucceedsFirstAttempt(t *testing.T) {
	stub := &stubProvider{responses: []string{"Good message."}}
	gen := newTestGenerator(stub)

	outcome := gen.GenerateSMSWithRetry(context.Background(), smsParams("offer"), 2)
	if !outcome.OK() {
		t.Fatalf("outcome = %+v", outcome)
	}
	if len(stub.requests) != 1 {
		t.Errorf("requests = %d, want 1", len(stub.requests))
	}
}

func TestGenerateSMSWithRetryRecoversAfterFeedback(t *testing.T) {
	long := strings.Repeat("z", 140)
	stub := &stubProvider{responses: []string{long, "Short enough now."}}
	gen := newTestGenerator(stub)

	var progressCalls, validationCalls int
	params := smsParams("offer")
	params.OnProgress = func(attempt, maxRetries int) {
		progressCalls++
		if attempt != 1 || maxRetries != 2 {
			t.Errorf("OnProgress(%d, %d), want (1, 2)", attempt, maxRetries)
		}
	}
	params.OnValidationError = func(errs []types.CandidateError, attempt int) {
		validationCalls++
		if attempt != 1 {
			t.Errorf("OnValidationError attempt = %d, want 1", attempt)
		}
		if len(errs) != 1 {
			t.Errorf("OnValidationError errs = %d, want 1", len(errs))
		}
	}

	outcome := gen.GenerateSMSWithRetry(context.Background(), params, 2)
	if !outcome.OK() {
		t.Fatalf("outcome = %+v", outcome)
	}
	if len(stub.requests) != 2 {
		t.Fatalf("requests = %d, want 2", len(stub.requests))
	}
	if progressCalls != 1 || validationCalls != 1 {
		t.Errorf("progress/validation calls = %d/%d, want 1/1", progressCalls, validationCalls)
	}

	// The second attempt's user message carries the corrective feedback.
	second := stub.requests[1].Messages[1].Content
	if !strings.Contains(second, "PREVIOUS ATTEMPT FAILED VALIDATION:") {
		t.Errorf("second attempt missing feedback header:\n%s", second)
	}
	if !strings.Contains(second, `- "`+long+`": Message exceeds 128 character limit (current: 140)`) {
		t.Errorf("second attempt missing violation line:\n%s", second)
	}
	if !strings.Contains(second, "Please generate new messages that meet all requirements.") {
		t.Errorf("second attempt missing closing instruction:\n%s", second)
	}

	// The first attempt must not have any feedback.
	if strings.Contains(stub.requests[0].Messages[1].Content, "PREVIOUS ATTEMPT") {
		t.Error("first attempt unexpectedly carried feedback")
	}
}

func TestGenerateSMSWithRetryFeedbackAccumulates(t *testing.T) {
	bad := strings.Repeat("q", 135)
	stub := &stubProvider{responses: []string{bad, bad, bad}}
	gen := newTestGenerator(stub)

	gen.GenerateSMSWithRetry(context.Background(), smsParams("offer"), 2)

	if len(stub.requests) != 3 {
		t.Fatalf("requests = %d, want 3", len(stub.requests))
	}
	// Each failed attempt appends its own feedback block; the third attempt
	// carries both prior blocks.
	second := stub.requests[1].Messages[1].Content
	if got := strings.Count(second, "PREVIOUS ATTEMPT FAILED VALIDATION:"); got != 1 {
		t.Errorf("feedback blocks in second attempt = %d, want 1", got)
	}
	third := stub.requests[2].Messages[1].Content
	if got := strings.Count(third, "PREVIOUS ATTEMPT FAILED VALIDATION:"); got != 2 {
		t.Errorf("feedback blocks in third attempt = %d, want 2", got)
	}
	if !strings.Contains(third, "offer") {
		t.Errorf("third attempt lost the original prompt:\n%s", third)
	}
}

func TestGenerateSMSWithRetryExhaustsBudget(t *testing.T) {
	bad := strings.Repeat("w", 150)
	stub := &stubProvider{responses: []string{bad}}
	gen := newTestGenerator(stub)

	var validationAttempts []int
	params := smsParams("offer")
	params.OnValidationError = func(_ []types.CandidateError, attempt int) {
		validationAttempts = append(validationAttempts, attempt)
	}

	outcome := gen.GenerateSMSWithRetry(context.Background(), params, 2)
	if outcome.Kind != types.OutcomeValidationFailure {
		t.Fatalf("Kind = %v, want OutcomeValidationFailure", outcome.Kind)
	}
	if outcome.Err != "SMS validation failed" {
		t.Errorf("Err = %q", outcome.Err)
	}
	// maxRetries=2 means three total attempts.
	if len(stub.requests) != 3 {
		t.Errorf("requests = %d, want 3", len(stub.requests))
	}
	if len(validationAttempts) != 3 || validationAttempts[0] != 1 || validationAttempts[2] != 3 {
		t.Errorf("validation attempts = %v, want [1 2 3]", validationAttempts)
	}
	if len(outcome.ValidationErrors) == 0 {
		t.Error("exhausted outcome should carry the last validation errors")
	}
}

func TestGenerateSMSWithRetryZeroBudget(t *testing.T) {
	stub := &stubProvider{responses: []string{strings.Repeat("e", 131)}}
	gen := newTestGenerator(stub)

	outcome := gen.GenerateSMSWithRetry(context.Background(), smsParams("offer"), 0)
	if outcome.Kind != types.OutcomeValidationFailure {
		t.Fatalf("Kind = %v", outcome.Kind)
	}
	if len(stub.requests) != 1 {
		t.Errorf("requests = %d, want 1 (no retries)", len(stub.requests))
	}
}

func TestGenerateSMSWithRetryNegativeBudgetUsesDefault(t *testing.T) {
	bad := strings.Repeat("r", 140)
	stub := &stubProvider{responses: []string{bad}}
	gen := newTestGenerator(stub)

	gen.GenerateSMSWithRetry(context.Background(), smsParams("offer"), -1)
	if len(stub.requests) != DefaultMaxRetries+1 {
		t.Errorf("requests = %d, want %d", len(stub.requests), DefaultMaxRetries+1)
	}
}

func TestGenerateSMSWithRetryHardFailureStopsImmediately(t *testing.T) {
	stub := &stubProvider{err: errors.New("invalid OpenRouter API key")}
	gen := newTestGenerator(stub)

	var progressCalls int
	params := smsParams("offer")
	params.OnProgress = func(int, int) { progressCalls++ }

	outcome := gen.GenerateSMSWithRetry(context.Background(), params, 3)
	if outcome.Kind != types.OutcomeFailure {
		t.Fatalf("Kind = %v, want OutcomeFailure", outcome.Kind)
	}
	if outcome.Err != "invalid OpenRouter API key" {
		t.Errorf("Err = %q", outcome.Err)
	}
	if len(stub.requests) != 1 {
		t.Errorf("requests = %d, want 1 (hard failures are not retried)", len(stub.requests))
	}
	if progressCalls != 0 {
		t.Errorf("progressCalls = %d, want 0", progressCalls)
	}
}

func TestValidationFeedbackFormat(t *testing.T) {
	feedback := validationFeedback([]types.CandidateError{
		{Message: "msg one", Errors: []string{"too long", "too many emojis"}},
		{Message: "msg two", Errors: []string{"no emojis allowed"}},
	})

	want := "\n\nPREVIOUS ATTEMPT FAILED VALIDATION:\n" +
		`- "msg one": too long, too many emojis` + "\n" +
		`- "msg two": no emojis allowed` +
		"\n\nPlease generate new messages that meet all requirements."
	if feedback != want {
		t.Errorf("feedback = %q, want %q", feedback, want)
	}
}

func TestValidationFeedbackKeepsCandidateTextVerbatim(t *testing.T) {
	feedback := validationFeedback([]types.CandidateError{
		{Message: "Say \"yes\" to savings\ntonight", Errors: []string{"too long"}},
	})

	want := "\n\nPREVIOUS ATTEMPT FAILED VALIDATION:\n" +
		"- \"Say \"yes\" to savings\ntonight\": too long" +
		"\n\nPlease generate new messages that meet all requirements."
	if feedback != want {
		t.Errorf("feedback = %q, want %q (no escaping of quotes or newlines)", feedback, want)
	}
}
