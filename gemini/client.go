package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/randalmurphal/gitpilot/prompt"
)

// Service defaults.
const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.0-flash-exp"
)

// Fixed prompts for the standalone key check.
const (
	keyCheckSystem = "You are a helpful assistant."
	keyCheckUser   = "Say 'API Key is valid' if you can read this."
)

// commitPrompt prefixes the diff summary in the user turn.
const commitPrompt = "Analyze these git changes and generate a commit message:\n\n"

// request is the generateContent request envelope.
type request struct {
	SystemInstruction content   `json:"systemInstruction"`
	Contents          []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// response is the generateContent response envelope. Only the first
// candidate's first text part is consumed.
type response struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

// Client calls the remote text-generation service. The underlying HTTP
// client carries no timeout; a hung call blocks its pipeline run.
type Client struct {
	baseURL string
	model   string
	client  *http.Client
	system  string // system instruction for commit message generation
	logger  *slog.Logger
}

// Option configures Client.
type Option func(*Client)

// WithBaseURL overrides the service base URL (used in tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithModel overrides the model name.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithSystemInstruction replaces the embedded commit-message system
// instruction, e.g. with a repository override.
func WithSystemInstruction(text string) Option {
	return func(c *Client) { c.system = text }
}

// WithLogger sets the client's logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a client for the remote service. Unless overridden,
// the commit-message system instruction is the embedded default.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
		client:  &http.Client{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.system == "" {
		system, err := prompt.NewEmbeddedLoader().Load("commit_message")
		if err != nil {
			return nil, fmt.Errorf("load commit message prompt: %w", err)
		}
		c.system = system
	}

	return c, nil
}

// CommitMessage asks the service for a commit message describing the
// diff summary. The first candidate's first text part is returned
// verbatim; sanitization is the caller's concern. Returns
// ErrNoCandidates when the response holds no usable text.
func (c *Client) CommitMessage(ctx context.Context, apiKey, diff string) (string, error) {
	body, err := c.post(ctx, apiKey, request{
		SystemInstruction: content{Parts: []part{{Text: c.system}}},
		Contents:          []content{{Parts: []part{{Text: commitPrompt + diff}}}},
	})
	if err != nil {
		return "", err
	}

	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(resp.Candidates) == 0 ||
		len(resp.Candidates[0].Content.Parts) == 0 ||
		resp.Candidates[0].Content.Parts[0].Text == "" {
		return "", ErrNoCandidates
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// ValidateKey sends a minimal fixed prompt with the supplied key,
// independent of any configured pipeline. Any successful HTTP status
// counts as valid regardless of the response content; a non-success
// status surfaces the response body as the reason.
func (c *Client) ValidateKey(ctx context.Context, apiKey string) error {
	_, err := c.post(ctx, apiKey, request{
		SystemInstruction: content{Parts: []part{{Text: keyCheckSystem}}},
		Contents:          []content{{Parts: []part{{Text: keyCheckUser}}}},
	})
	return err
}

// post sends one generateContent call and returns the raw response body.
// Transport failures are wrapped; non-2xx statuses become *APIError.
func (c *Client) post(ctx context.Context, apiKey string, req request) ([]byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		endpoint+"?key="+url.QueryEscape(apiKey), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", c.model, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debug("generateContent failed", "status", resp.StatusCode, "model", c.model)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Endpoint:   endpoint,
		}
	}

	return body, nil
}
