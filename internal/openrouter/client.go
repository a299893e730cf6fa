package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the OpenRouter chat-completions endpoint.
	DefaultBaseURL = "https://openrouter.ai/api/v1/chat/completions"

	// DefaultModel is the model used when the configuration names none.
	DefaultModel = "anthropic/claude-3.5-sonnet"

	// DefaultTimeout bounds a single completion request. Generation of a
	// full article routinely takes tens of seconds.
	DefaultTimeout = 60 * time.Second

	apiKeyPrefix = "sk-"
)

// Client requests a chat completion and returns the text of the first
// choice. Implementations must honor ctx cancellation.
type Client interface {
	Complete(ctx context.Context, messages []Message, temperature float64) (string, error)
}

// ValidateAPIKey checks that key has the shape of an API key. Only the
// prefix is checked; no network call is made.
func ValidateAPIKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrMissingAPIKey
	}
	if !strings.HasPrefix(key, apiKeyPrefix) {
		return ErrInvalidAPIKey
	}
	return nil
}

// HTTPClient implements [Client] against the OpenRouter wire format using
// net/http. Construct it with [NewHTTPClient].
type HTTPClient struct {
	apiKey  string
	model   string
	baseURL string
	referer string
	title   string
	timeout time.Duration
	httpc   *http.Client
}

// Option configures an [HTTPClient].
type Option func(*HTTPClient)

// WithTimeout overrides the per-request deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		c.timeout = d
	}
}

// WithHTTPClient substitutes the underlying http.Client. The substitute's
// own Timeout is respected as-is.
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) {
		c.httpc = h
	}
}

// WithBaseURL points the client at a different completions endpoint, such
// as a local test server. An empty URL keeps the default.
func WithBaseURL(u string) Option {
	return func(c *HTTPClient) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithAttribution sets the informational HTTP-Referer and X-Title headers
// OpenRouter uses to attribute traffic to an application.
func WithAttribution(referer, title string) Option {
	return func(c *HTTPClient) {
		if referer != "" {
			c.referer = referer
		}
		if title != "" {
			c.title = title
		}
	}
}

// NewHTTPClient builds a client for the given key and model. The key is
// validated by shape before any request is made; a malformed key fails
// here rather than as a confusing 401 later. An empty model selects
// [DefaultModel].
func NewHTTPClient(apiKey, model string, opts ...Option) (*HTTPClient, error) {
	if err := ValidateAPIKey(apiKey); err != nil {
		return nil, err
	}
	if model == "" {
		model = DefaultModel
	}
	c := &HTTPClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: DefaultBaseURL,
		referer: "http://localhost",
		title:   "blogsmith",
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpc == nil {
		c.httpc = &http.Client{Timeout: c.timeout}
	}
	return c, nil
}

// Model reports the model id requests are sent with.
func (c *HTTPClient) Model() string {
	return c.model
}

// Complete sends one chat-completion request and returns the first choice's
// text. Failures are classified as [NetworkError] (transport or timeout),
// [APIError] (non-200 status), or [ErrNoChoices].
func (c *HTTPClient) Complete(ctx context.Context, messages []Message, temperature float64) (string, error) {
	payload, err := json.Marshal(ChatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("openrouter: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("openrouter: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("HTTP-Referer", c.referer)
	req.Header.Set("X-Title", c.title)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", &NetworkError{Err: err, Timeout: isTimeout(err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Err: err, Timeout: isTimeout(err)}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	var parsed ChatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("openrouter: decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", ErrNoChoices
	}
	return parsed.Choices[0].Message.Content, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

var _ Client = (*HTTPClient)(nil)
