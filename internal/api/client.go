// Package api wraps the remote marketplace HTTP API behind typed services.
// Every call decodes the common response envelope and collapses failures
// into one shape: only HTTP 2xx with success=true counts as success,
// anything else becomes a RemoteError carrying a human-readable message.
//
// Heterogeneous server row shapes are normalized into canonical records at
// this boundary, so the rest of the app never branches on field-name
// ambiguity.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Envelope is the remote API's uniform response shape.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// failureMessage picks the human-readable message out of a failed
// envelope, preferring Message over Error.
func (e *Envelope) failureMessage(fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	if e.Error != "" {
		return e.Error
	}
	return fallback
}

// RemoteError is a failed API call: transport error, non-2xx status, or a
// success=false payload. Message is safe to show to the user.
type RemoteError struct {
	Message string
	Status  int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// FailureMessage extracts the user-facing message from an API call error.
// Non-API errors get the fallback so internal details never leak to users.
func FailureMessage(err error, fallback string) string {
	var remote *RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		return remote.Message
	}
	return fallback
}

// tokenKey carries the caller's API bearer token through the context.
type tokenKey struct{}

// WithToken returns a context carrying the bearer token attached to
// outgoing requests.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// Client is the shared transport for all services.
type Client struct {
	baseURL string
	http    *http.Client
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// NewClient creates a Client for the given API base URL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Events returns the events service.
func (c *Client) Events() *EventsService {
	return &EventsService{client: c}
}

// Categories returns the event categories service.
func (c *Client) Categories() *CategoriesService {
	return &CategoriesService{client: c}
}

// Hosts returns the host management service.
func (c *Client) Hosts() *HostsService {
	return &HostsService{client: c}
}

// Auth returns the authentication service.
func (c *Client) Auth() *AuthService {
	return &AuthService{client: c}
}

// Users returns the account listing service.
func (c *Client) Users() *UsersService {
	return &UsersService{client: c}
}

// Healthy reports whether the remote API answers at all. Used by the
// readiness endpoint; any response, even an error envelope, counts.
func (c *Client) Healthy(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/events/categories", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// call performs one request and decodes the envelope. The returned error
// is a *RemoteError for anything the user should see a message for.
func (c *Client) call(ctx context.Context, method, path, contentType string, body io.Reader) (*Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token, ok := ctx.Value(tokenKey{}).(string); ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RemoteError{Message: "Could not reach the server. Please try again.", Status: 0}
	}
	defer resp.Body.Close()

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &RemoteError{Message: "Unexpected response from the server.", Status: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return nil, &RemoteError{
			Message: env.failureMessage("Request failed"),
			Status:  resp.StatusCode,
		}
	}
	return &env, nil
}

// postJSON marshals v and POSTs it as a JSON body.
func (c *Client) postJSON(ctx context.Context, path string, v any) (*Envelope, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return c.call(ctx, http.MethodPost, path, "application/json", bytes.NewReader(payload))
}

// Upload is a file attachment forwarded to the remote API.
type Upload struct {
	Filename string
	Content  io.Reader
}

// multipartBody encodes the backend payload as a JSON "data" part plus an
// optional "file" part, the shape the remote API expects for create and
// update calls.
func multipartBody(data any, file *Upload) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, "", err
	}
	if err := w.WriteField("data", string(payload)); err != nil {
		return nil, "", err
	}

	if file != nil {
		part, err := w.CreateFormFile("file", file.Filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
