package generation

import (
	"context"
	"strings"
	"testing"

	"github.com/promoforge/promoforge/llm"
	"github.com/promoforge/promoforge/types"
)

func TestEnhancePrompt(t *testing.T) {
	stub := &stubProvider{responses: []string{"  A sharper prompt.  \n"}}
	gen := newTestGenerator(stub)

	improved, err := gen.EnhancePrompt(context.Background(), "k", types.ModeSMS, "make it better", types.GenerationSettings{})
	if err != nil {
		t.Fatalf("EnhancePrompt() error = %v", err)
	}
	if improved != "A sharper prompt." {
		t.Errorf("improved = %q, want trimmed response", improved)
	}

	req := stub.requests[0]
	if req.Model != llm.DefaultModel {
		t.Errorf("model = %q, want default", req.Model)
	}
	if req.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", req.Temperature)
	}
	if req.MaxTokens != 200 {
		t.Errorf("max_tokens = %d, want 200", req.MaxTokens)
	}
	if req.TopP != nil {
		t.Errorf("top_p = %v, want unset", req.TopP)
	}

	system := req.Messages[0].Content
	if !strings.Contains(system, "sms marketing copy") {
		t.Errorf("system prompt missing mode:\n%s", system)
	}
	user := req.Messages[1].Content
	if !strings.Contains(user, `"make it better"`) {
		t.Errorf("user prompt missing original text:\n%s", user)
	}
}

func TestEnhancePromptPreconditions(t *testing.T) {
	gen := newTestGenerator(&stubProvider{responses: []string{"x"}})

	if _, err := gen.EnhancePrompt(context.Background(), "", types.ModeSMS, "p", types.GenerationSettings{}); err == nil || err.Error() != "OpenRouter API key is required" {
		t.Errorf("missing key error = %v", err)
	}
	if _, err := gen.EnhancePrompt(context.Background(), "k", types.ModeSMS, "   ", types.GenerationSettings{}); err == nil || err.Error() != "Prompt is required" {
		t.Errorf("missing prompt error = %v", err)
	}
}

func TestEnhancePromptEmptyCompletionReturnsOriginal(t *testing.T) {
	stub := &stubProvider{responses: []string{"   \n"}}
	gen := newTestGenerator(stub)

	improved, err := gen.EnhancePrompt(context.Background(), "k", types.ModeSMS, "keep this prompt", types.GenerationSettings{})
	if err != nil {
		t.Fatalf("EnhancePrompt() error = %v", err)
	}
	if improved != "keep this prompt" {
		t.Errorf("improved = %q, want the original prompt back", improved)
	}
}

func TestPromptFromTopicTone(t *testing.T) {
	stub := &stubProvider{responses: []string{"Write three SMS messages about tacos.\n"}}
	gen := newTestGenerator(stub)

	drafted, err := gen.PromptFromTopicTone(context.Background(), "k", types.ModeSMS, "taco night", "playful", types.GenerationSettings{Model: "custom/model"})
	if err != nil {
		t.Fatalf("PromptFromTopicTone() error = %v", err)
	}
	if drafted != "Write three SMS messages about tacos." {
		t.Errorf("drafted = %q", drafted)
	}

	req := stub.requests[0]
	if req.Model != "custom/model" {
		t.Errorf("model = %q, want settings override", req.Model)
	}
	if req.MaxTokens != 150 {
		t.Errorf("max_tokens = %d, want 150", req.MaxTokens)
	}
	if req.Messages[0].Content != seedSystemInstruction {
		t.Errorf("system = %q", req.Messages[0].Content)
	}
	want := `Create a clear, specific prompt for generating sms marketing content about "taco night" with a playful tone. Output only the prompt text.`
	if req.Messages[1].Content != want {
		t.Errorf("user = %q, want %q", req.Messages[1].Content, want)
	}
}

func TestPromptFromTopicTonePreconditions(t *testing.T) {
	gen := newTestGenerator(&stubProvider{responses: []string{"x"}})

	if _, err := gen.PromptFromTopicTone(context.Background(), "", types.ModeSMS, "t", "tone", types.GenerationSettings{}); err == nil || err.Error() != "OpenRouter API key is required" {
		t.Errorf("missing key error = %v", err)
	}
	if _, err := gen.PromptFromTopicTone(context.Background(), "k", types.ModeSMS, "", "tone", types.GenerationSettings{}); err == nil || err.Error() != "Topic is required" {
		t.Errorf("missing topic error = %v", err)
	}
	if _, err := gen.PromptFromTopicTone(context.Background(), "k", types.ModeSMS, "t", "  ", types.GenerationSettings{}); err == nil || err.Error() != "Tone is required" {
		t.Errorf("missing tone error = %v", err)
	}
}
