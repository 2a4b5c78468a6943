package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const userAgent = "AgriDetect-CLI/1.0"

// Default deadlines. Analysis runs a model inference on the backend and
// gets the long budget; everything else is a light call.
const (
	DefaultAnalyzeTimeout = 45 * time.Second
	DefaultRequestTimeout = 15 * time.Second
)

// Client talks to one AgriDetect backend. All methods are safe for a
// single caller at a time, which is all the UI ever produces.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	analyzeTimeout time.Duration
	requestTimeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

func WithAnalyzeTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.analyzeTimeout = d
		}
	}
}

func WithRequestTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.requestTimeout = d
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     &http.Client{},
		analyzeTimeout: DefaultAnalyzeTimeout,
		requestTimeout: DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// doJSON performs a request with a bounded wait and decodes the JSON
// response into out. The deadline cancel runs on every path.
func (c *Client) doJSON(ctx context.Context, method, path string, body io.Reader, contentType string, timeout time.Duration, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || (ctx.Err() == context.DeadlineExceeded) {
			slog.Warn("request timed out", "method", method, "path", path, "timeout", timeout)
			return &TimeoutError{URL: url, Timeout: timeout}
		}
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		// The deadline can also elapse mid-body, after headers arrived.
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			slog.Warn("request timed out reading response", "method", method, "path", path, "timeout", timeout)
			return &TimeoutError{URL: url, Timeout: timeout}
		}
		return fmt.Errorf("failed to read response: %w", err)
	}
	slog.Debug("request complete", "method", method, "path", path, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, respBody)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// postJSON marshals v and POSTs it as application/json.
func (c *Client) postJSON(ctx context.Context, path string, v interface{}, timeout time.Duration, out interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	return c.doJSON(ctx, http.MethodPost, path, bytes.NewReader(data), "application/json", timeout, out)
}

// errorMessage extracts the most specific message available from an
// error response: a JSON detail/message/error field, then raw body
// text, then a generic "HTTP <code>".
func errorMessage(status int, body []byte) string {
	var envelope struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if len(envelope.Detail) > 0 {
			var s string
			if json.Unmarshal(envelope.Detail, &s) == nil && s != "" {
				return s
			}
			// FastAPI validation errors ship detail as a structure.
			detail := strings.TrimSpace(string(envelope.Detail))
			if detail != "" && detail != "null" {
				return detail
			}
		}
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", status)
}
