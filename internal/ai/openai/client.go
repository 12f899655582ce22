package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Lin-Jiong-HDU/ash/internal/ai"
)

const (
	DefaultBaseURL   = "https://api.openai.com/v1"
	DefaultModel     = "gpt-4-turbo"
	DefaultMaxTokens = 100

	// bodyUnavailable stands in for an error body that could not be read.
	bodyUnavailable = "failed to get response text"
)

// Client implements ai.Completer for the OpenAI chat completions API
type Client struct {
	httpClient   *http.Client
	apiKey       string
	model        string
	baseURL      string
	systemPrompt string
	maxTokens    int
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the API base URL
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithMaxTokens overrides the max_tokens budget sent with every request
func WithMaxTokens(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxTokens = n
		}
	}
}

// WithTimeout sets a request timeout. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: d}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a new OpenAI client. The client is immutable afterwards
// and may be shared freely.
func NewClient(apiKey, model, systemPrompt string, opts ...Option) *Client {
	if model == "" {
		model = DefaultModel
	}
	c := &Client{
		httpClient:   &http.Client{},
		apiKey:       apiKey,
		model:        model,
		baseURL:      DefaultBaseURL,
		systemPrompt: systemPrompt,
		maxTokens:    DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the model identifier sent with each request
func (c *Client) Model() string {
	return c.model
}

type chatRequest struct {
	Model     string       `json:"model"`
	Messages  []ai.Message `json:"messages"`
	MaxTokens int          `json:"max_tokens"`
}

// chatResponse mirrors the provider envelope. Pointers distinguish a missing
// field from an empty one.
type chatResponse struct {
	Choices *[]chatChoice `json:"choices"`
}

type chatChoice struct {
	Message *chatMessage `json:"message"`
}

type chatMessage struct {
	Role    *string `json:"role"`
	Content *string `json:"content"`
}

// Send performs exactly one request/response cycle and returns the content of
// the first choice.
func (c *Client) Send(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []ai.Message{
			{Role: "system", Content: c.systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens: c.maxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	slog.Debug("sending completion request", "model", c.model, "prompt_bytes", len(prompt))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ai.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	slog.Debug("completion response", "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text := bodyUnavailable
		if body, err := io.ReadAll(resp.Body); err == nil {
			text = string(body)
		}
		return "", &ai.APIError{StatusCode: resp.StatusCode, Body: text}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ai.ReadError{Err: err}
	}

	return parseEnvelope(body)
}

// parseEnvelope extracts the first choice's content from a response body
func parseEnvelope(body []byte) (string, error) {
	var respData chatResponse
	if err := json.Unmarshal(body, &respData); err != nil {
		return "", &ai.ParseError{Err: err}
	}

	if respData.Choices == nil {
		return "", &ai.ParseError{Err: errors.New("missing field `choices`")}
	}
	choices := *respData.Choices
	for i, choice := range choices {
		if choice.Message == nil {
			return "", &ai.ParseError{Err: fmt.Errorf("choice %d: missing field `message`", i)}
		}
		if choice.Message.Role == nil {
			return "", &ai.ParseError{Err: fmt.Errorf("choice %d: missing field `role`", i)}
		}
		if choice.Message.Content == nil {
			return "", &ai.ParseError{Err: fmt.Errorf("choice %d: missing field `content`", i)}
		}
	}

	if len(choices) == 0 {
		return "", ai.ErrEmptyResponse
	}

	return *choices[0].Message.Content, nil
}
