// Package client is the HTTP transport the async action layer talks through.
// It injects the persisted auth token into every request and exposes a hook
// fired whenever any response comes back 401, so the session state can be
// forced to unauthorized no matter which operation triggered it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"sixcities/internal/domain"
	"sixcities/internal/token"
)

const (
	AuthHeaderName = "X-Token"

	defaultTimeout = 5 * time.Second
)

// StatusError is returned for any non-2xx response. Body keeps the raw
// response so callers can decide whether the failure is structured.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

type Client struct {
	http           *http.Client
	baseURL        string
	tokens         token.Store
	onUnauthorized func()
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func New(baseURL string, tokens token.Store, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: defaultTimeout},
		baseURL: baseURL,
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnUnauthorized registers the cross-cutting 401 hook. The callback runs
// before the StatusError is returned to the caller.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	u, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("join url: %w", err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t := c.tokens.Get(); t != "" {
		req.Header.Set(AuthHeaderName, t)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return &StatusError{StatusCode: resp.StatusCode, Body: data}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}

// ParseServerError reports whether the failure body matches the backend
// error contract. Unrecognizable bodies yield false and must be treated as
// unhandled failures.
func ParseServerError(e *StatusError) (*domain.ServerError, bool) {
	if e == nil || len(e.Body) == 0 {
		return nil, false
	}
	var se domain.ServerError
	if err := json.Unmarshal(e.Body, &se); err != nil {
		return nil, false
	}
	if se.ErrorType != domain.CommonError && se.ErrorType != domain.ValidationError {
		return nil, false
	}
	if se.Status == 0 {
		se.Status = e.StatusCode
	}
	return &se, true
}
