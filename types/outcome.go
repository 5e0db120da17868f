package types

// PromptPair is a fully interpolated system/user prompt ready to send.
// A fresh pair is built per attempt; retries rebuild it from the mutated
// user prompt rather than reusing a previous pair.
type PromptPair struct {
	SystemPrompt     string
	UserInstructions string
}

// ValidationResult is the immutable verdict for one candidate SMS string.
type ValidationResult struct {
	Valid      bool     `json:"valid"`
	Errors     []string `json:"errors"`
	CharCount  int      `json:"charCount"`
	EmojiCount int      `json:"emojiCount"`
}

// CandidateMessage is one accepted generation result. SMS candidates populate
// Text; email candidates populate Subject and Body.
type CandidateMessage struct {
	Text    string `json:"text,omitempty"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`
}

// CandidateError pairs a rejected candidate with the rules it violated.
type CandidateError struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// OutcomeKind discriminates the GenerationOutcome variants.
type OutcomeKind int

const (
	// OutcomeSuccess carries at least one accepted candidate.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeValidationFailure means every candidate violated the SMS rules;
	// the orchestrator may retry it with corrective feedback.
	OutcomeValidationFailure
	// OutcomeFailure is a hard failure (precondition, transport, remote
	// error) that is never retried.
	OutcomeFailure
)

// GenerationOutcome is the tagged result of one generation call. Exactly one
// variant is populated; callers branch on Kind. Err is human-readable and
// populated for both failure variants.
type GenerationOutcome struct {
	Kind    OutcomeKind        `json:"-"`
	Results []CandidateMessage `json:"results,omitempty"`
	// Dropped lists candidates from an accepted batch that failed validation
	// and were silently excluded from Results. Best-effort policy: their
	// presence does not fail the call.
	Dropped          []CandidateError `json:"dropped,omitempty"`
	ValidationErrors []CandidateError `json:"validationErrors,omitempty"`
	Err              string           `json:"error,omitempty"`
}

// OK reports whether the outcome carries accepted results.
func (o GenerationOutcome) OK() bool { return o.Kind == OutcomeSuccess }

// SuccessOutcome builds the success variant, carrying the accepted results
// and any silently dropped candidates from the same batch.
func SuccessOutcome(results []CandidateMessage, dropped []CandidateError) GenerationOutcome {
	return GenerationOutcome{Kind: OutcomeSuccess, Results: results, Dropped: dropped}
}

// ValidationFailureOutcome builds the retryable validation-failure variant.
func ValidationFailureOutcome(msg string, errs []CandidateError) GenerationOutcome {
	return GenerationOutcome{Kind: OutcomeValidationFailure, Err: msg, ValidationErrors: errs}
}

// FailureOutcome builds the terminal hard-failure variant.
func FailureOutcome(msg string) GenerationOutcome {
	return GenerationOutcome{Kind: OutcomeFailure, Err: msg}
}
