// Package api is the REST client for the Zirve Hikayem backend.
// All content shown by the site is fetched through this package; the
// backend stays the single source of truth and nothing is patched locally.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// CategoryAll is the sentinel category meaning "no filter". It is always
// the first entry returned by the categories endpoint and never names a
// real category.
const CategoryAll = "Tümü"

// ErrNotFound is returned when the backend answers 404 for a single resource.
var ErrNotFound = errors.New("api: not found")

// NetworkErrorMessage is the fixed user-facing message for requests that
// never received a response.
const NetworkErrorMessage = "Sunucuya bağlanılamadı. Lütfen internet bağlantınızı kontrol edin."

// Client talks to the backend REST API rooted at <backendURL>/api.
type Client struct {
	baseURL string
	hc      *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used in tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithTimeout sets the request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.hc.Timeout = d }
}

// NewClient builds a client for the backend at backendURL.
func NewClient(backendURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(backendURL, "/") + "/api",
		hc:      &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestError wraps a transport-level failure: the request never produced
// an HTTP response.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string { return "api: request failed: " + e.Err.Error() }
func (e *RequestError) Unwrap() error { return e.Err }

// StatusError is a non-2xx response. Detail carries the message extracted
// from the body's detail/message field, if any.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: status %d: %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("api: status %d", e.Code)
}

// ErrorMessage converts any error from this package into a user-visible
// message, falling back to fallback when the server gave no detail.
func ErrorMessage(err error, fallback string) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return NetworkErrorMessage
	}
	var stErr *StatusError
	if errors.As(err, &stErr) && stErr.Detail != "" {
		return stErr.Detail
	}
	return fallback
}

// errorBody is the shape the backend uses for error responses.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// do performs a JSON request against path. A non-empty token is sent as a
// bearer credential. When out is non-nil the response body is decoded into it.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return &RequestError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	var eb errorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = json.Unmarshal(raw, &eb)
	detail := eb.Detail
	if detail == "" {
		detail = eb.Message
	}
	return &StatusError{Code: resp.StatusCode, Detail: detail}
}
