package enhance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	// EnvAPIKey is the environment variable holding the API key.
	EnvAPIKey = "GEMINI_API_KEY"

	// FallbackComment is what callers post when suggestion fails.
	FallbackComment = "Cool post! 🔥"

	defaultBaseURL     = "https://generativelanguage.googleapis.com"
	defaultTextModel   = "gemini-3-flash-preview"
	defaultVisionModel = "gemini-1.5-flash"

	defaultTimeout  = 60 * time.Second
	maxResponseSize = 10 * 1024 * 1024 // 10MB
)

// Enhancement is the structured result of a caption enhancement call.
type Enhancement struct {
	Caption string   `json:"caption"`
	Tags    []string `json:"tags"`
}

// Client calls the generation API. It holds no feed state; callers
// decide what to do with results and how to degrade on failure.
type Client struct {
	httpClient  *http.Client
	provider    Provider
	logger      *slog.Logger
	apiKey      string
	baseURL     string
	textModel   string
	visionModel string
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey overrides the key read from EnvAPIKey.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithProvider sets a custom provider.
func WithProvider(p Provider) Option {
	return func(c *Client) {
		c.provider = p
	}
}

// WithModels overrides the text and vision model names.
func WithModels(text, vision string) Option {
	return func(c *Client) {
		c.textModel = text
		c.visionModel = vision
	}
}

// NewClient creates a client with the given options. The API key defaults
// to the EnvAPIKey environment variable; an empty key is not an error
// here, but every call will fail fast until one is set.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: defaultTimeout},
		provider:    NewGeminiProvider(),
		logger:      slog.Default(),
		apiKey:      os.Getenv(EnvAPIKey),
		baseURL:     defaultBaseURL,
		textModel:   defaultTextModel,
		visionModel: defaultVisionModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EnhancePost asks the model to rewrite a draft caption and propose tags.
// The image, when present, is sent inline and switches to the vision
// model. Returns a fatal error before any network I/O if no key is set.
func (c *Client) EnhancePost(ctx context.Context, draft string, image *ImageAttachment) (*Enhancement, error) {
	prompt := fmt.Sprintf(
		"Rewrite this social media caption to be more engaging, and suggest up to 5 short hashtag-style tags (no # prefix). Caption: %q",
		draft,
	)

	model := c.textModel
	if image != nil {
		model = c.visionModel
	}

	text, err := c.generate(ctx, model, GenerateRequest{
		Prompt:         prompt,
		Image:          image,
		StructuredJSON: true,
	})
	if err != nil {
		return nil, err
	}

	var result Enhancement
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, NewFatalError(fmt.Errorf("malformed enhancement payload: %w", err))
	}
	if result.Caption == "" {
		return nil, NewFatalError(fmt.Errorf("enhancement payload missing caption"))
	}
	if result.Tags == nil {
		result.Tags = []string{}
	}

	return &result, nil
}

// SuggestComment asks the model for one short comment on a post. Callers
// fall back to FallbackComment when this fails.
func (c *Client) SuggestComment(ctx context.Context, postContent string) (string, error) {
	prompt := fmt.Sprintf(
		"Write one short, friendly comment (under 15 words) reacting to this social media post. Reply with the comment text only. Post: %q",
		postContent,
	)

	text, err := c.generate(ctx, c.textModel, GenerateRequest{Prompt: prompt})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}

func (c *Client) generate(ctx context.Context, model string, genReq GenerateRequest) (string, error) {
	if c.apiKey == "" {
		return "", NewFatalError(fmt.Errorf("%s is not set", EnvAPIKey))
	}

	body, err := c.provider.BuildRequestBody(genReq)
	if err != nil {
		return "", NewFatalError(fmt.Errorf("failed to build request: %w", err))
	}

	url := c.provider.BuildURL(c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", NewFatalError(fmt.Errorf("failed to create request: %w", err))
	}
	c.provider.SetHeaders(req, c.apiKey)

	c.logger.Debug("calling generation api",
		"provider", c.provider.Name(),
		"model", model,
		"has_image", genReq.Image != nil)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", NewTransientError(fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", NewTransientError(fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyHTTPError(resp.StatusCode, respBody)
	}

	text, err := c.provider.ParseResponse(respBody)
	if err != nil {
		return "", NewFatalError(err)
	}

	return text, nil
}

// classifyHTTPError sorts non-200 statuses into transient and fatal.
// Rate limits and server errors may clear up; auth and request-shape
// errors will not.
func classifyHTTPError(status int, body []byte) error {
	err := fmt.Errorf("api returned status %d: %s", status, truncate(body, 200))

	switch {
	case status == http.StatusTooManyRequests:
		return NewTransientError(err)
	case status >= 500:
		return NewTransientError(err)
	default:
		return NewFatalError(err)
	}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
