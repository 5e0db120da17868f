package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the OpenRouter API root.
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	// DefaultModel is used when settings carry no model override.
	DefaultModel = "google/gemini-2.0-flash-exp:free"

	defaultTimeout = 60 * time.Second
)

// OpenRouterClient implements CompletionProvider against the OpenRouter
// chat-completions endpoint. Authentication is a bearer token; every request
// also carries the two fixed identifying headers (HTTP-Referer, X-Title)
// the endpoint uses for attribution.
type OpenRouterClient struct {
	apiKey  string
	baseURL string
	referer string
	title   string
	http    *http.Client
	debug   bool
}

// ClientOption configures an OpenRouterClient.
type ClientOption func(*OpenRouterClient)

// WithBaseURL overrides the API root, e.g. for a gateway or test server.
func WithBaseURL(url string) ClientOption {
	return func(c *OpenRouterClient) { c.baseURL = strings.TrimRight(url, "/") }
}

// WithIdentity sets the HTTP-Referer and X-Title attribution headers.
func WithIdentity(referer, title string) ClientOption {
	return func(c *OpenRouterClient) { c.referer, c.title = referer, title }
}

// WithTimeout sets the HTTP client timeout for remote calls.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *OpenRouterClient) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithDebug enables request metadata logging to stderr.
func WithDebug(debug bool) ClientOption {
	return func(c *OpenRouterClient) { c.debug = debug }
}

// NewOpenRouterClient creates a client for the given API key.
func NewOpenRouterClient(apiKey string, opts ...ClientOption) *OpenRouterClient {
	c := &OpenRouterClient{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		referer: "https://promoforge.dev",
		title:   "PromoForge",
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// requestPayload is the wire format of a completion request. Stream is
// always false: the caller consumes exactly one resolved response.
type requestPayload struct {
	Model            string        `json:"model"`
	Messages         []ChatMessage `json:"messages"`
	Temperature      float64       `json:"temperature"`
	TopP             *float64      `json:"top_p,omitempty"`
	FrequencyPenalty *float64      `json:"frequency_penalty,omitempty"`
	PresencePenalty  *float64      `json:"presence_penalty,omitempty"`
	MaxTokens        int           `json:"max_tokens,omitempty"`
	Stream           bool          `json:"stream"`
}

// responsePayload captures the slice of the completion response we consume.
type responsePayload struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// errorPayload is the error body shape returned on non-2xx statuses.
type errorPayload struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends the request and returns the first choice's content. A
// response with no choices returns "", nil; the post-processing layers treat
// empty content as a validation concern, not a transport one.
func (c *OpenRouterClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	payload := requestPayload{
		Model:            req.Model,
		Messages:         req.Messages,
		Temperature:      req.Temperature,
		TopP:             req.TopP,
		FrequencyPenalty: req.FrequencyPenalty,
		PresencePenalty:  req.PresencePenalty,
		MaxTokens:        req.MaxTokens,
		Stream:           false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create completion request: %w", err)
	}
	c.setHeaders(httpReq)
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call completion endpoint: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, _ := io.ReadAll(resp.Body)
	if c.debug {
		fmt.Fprintf(os.Stderr, "[llm] %s in %v (status %s, bytes %d)\n", req.Model, time.Since(start), resp.Status, len(raw))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.New(remoteErrorMessage(resp, raw))
	}

	var parsed responsePayload
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("parse completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", nil
	}
	return parsed.Choices[0].Message.Content, nil
}

// ValidateKey probes the models endpoint to verify the API key works.
func (c *OpenRouterClient) ValidateKey(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return fmt.Errorf("create validation request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("network error. Please check your connection: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode <= 299:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return errors.New("invalid OpenRouter API key")
	default:
		return fmt.Errorf("Validation failed: %s", resp.Status)
	}
}

func (c *OpenRouterClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("HTTP-Referer", c.referer)
	req.Header.Set("X-Title", c.title)
}

// remoteErrorMessage extracts the error message from a non-2xx body,
// falling back to the HTTP status text.
func remoteErrorMessage(resp *http.Response, raw []byte) string {
	var parsed errorPayload
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return fmt.Sprintf("API Error: %s", http.StatusText(resp.StatusCode))
}
