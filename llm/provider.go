// Package llm talks to the remote chat-completion endpoint. The generation
// layer depends only on the CompletionProvider interface so tests can swap
// the network client for a stub.
package llm

import "context"

// ChatMessage is one turn in the completion conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest describes one chat-completion round trip. Temperature is
// always sent; the remaining sampling knobs are sent only when set, so the
// narrower flows (prompt enhancement) can omit them and rely on endpoint
// defaults.
type ChatRequest struct {
	Model            string
	Messages         []ChatMessage
	Temperature      float64
	TopP             *float64
	FrequencyPenalty *float64
	PresencePenalty  *float64
	// MaxTokens caps the response length; 0 means no explicit cap.
	MaxTokens int
}

// CompletionProvider executes one chat-completion request and returns the
// first choice's message content. An empty choice list yields an empty
// string, not an error; hard errors are transport or remote failures.
type CompletionProvider interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// Float64 returns a pointer to v, for the optional ChatRequest knobs.
func Float64(v float64) *float64 { return &v }
