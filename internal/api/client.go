package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// TokenSource yields the current bearer token, or "" when anonymous.
// The client asks the source on every request rather than capturing the
// token once, so a logout or re-login takes effect on the very next call.
type TokenSource interface {
	Token() string
}

type Config struct {
	// BaseURL of the backend, e.g. http://localhost:8000
	BaseURL string
	// HTTPClient overrides the default client (30s timeout) when set.
	HTTPClient *http.Client
	// Tokens supplies the bearer token; optional for anonymous use.
	Tokens TokenSource
}

// Client is the single point where transport concerns live: base URL,
// auth header, JSON codec, error mapping. Domain calls are one method each
// with no retries and no caching.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

func New(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("api: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("api: base URL must be a valid http(s) URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("api: base URL scheme must be http or https")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		tokens:     cfg.Tokens,
	}, nil
}

// APIError is the uniform failure for transport errors turned visible:
// any non-2xx response, carrying the backend's message when it sent one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// doJSON marshals in (when non-nil) as the JSON body and decodes the
// response into out (when non-nil).
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, body, "application/json", out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	// Read the token fresh per request, never from a captured copy.
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readAPIError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// readAPIError extracts the backend's error message. FastAPI-style bodies
// carry a "detail" field; "message" is a fallback, then the HTTP status.
func readAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode, Message: resp.Status}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}
	var payload struct {
		Detail  any    `json:"detail"`
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &payload) == nil {
		if detail, ok := payload.Detail.(string); ok && detail != "" {
			apiErr.Message = detail
		} else if payload.Message != "" {
			apiErr.Message = payload.Message
		}
	}
	return apiErr
}
