package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenSource yields the bearer token attached to outbound requests. An empty
// string means no token is stored.
type TokenSource interface {
	Token() string
}

// APIError is the normalized failure shape for every remote call. Status 0
// means no response was received at all.
type APIError struct {
	Message string
	Status  int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsStatus reports whether err is an APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == status
}

func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
}

// New builds the API client. Session cookies are kept and replayed alongside
// the bearer token: the remote API still honours cookie auth on some routes,
// so both credentials travel together as a compatibility necessity.
func New(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		tokens: tokens,
	}
}

// SetUnauthorizedHook registers a callback invoked whenever an authenticated
// endpoint answers 401. The session store uses it to treat any observed 401
// as session expiry, in one place instead of per call site.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

type Response struct {
	StatusCode int
	Body       []byte
}

func (r *Response) DecodeJSON(target any) error {
	return json.Unmarshal(r.Body, target)
}

func (c *Client) GET(ctx context.Context, path string) (*Response, error) {
	return c.request(ctx, http.MethodGet, path, nil)
}

func (c *Client) POST(ctx context.Context, path string, body any) (*Response, error) {
	return c.request(ctx, http.MethodPost, path, body)
}

func (c *Client) PATCH(ctx context.Context, path string, body any) (*Response, error) {
	return c.request(ctx, http.MethodPatch, path, body)
}

func (c *Client) DELETE(ctx context.Context, path string) (*Response, error) {
	return c.request(ctx, http.MethodDelete, path, nil)
}

// isAuthEndpoint recognizes credential-exchange endpoints. A stale stored
// token must never ride along while new credentials are being exchanged.
func isAuthEndpoint(path string) bool {
	return strings.Contains(path, "/users/login") || strings.Contains(path, "/users/signup")
}

func (c *Client) request(ctx context.Context, method, path string, body any) (*Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}
	if token := c.tokens.Token(); token != "" && !isAuthEndpoint(path) {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Message: "Network error. Please check your connection.", Status: 0}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return &Response{StatusCode: resp.StatusCode}, nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Message: "Network error. Please check your connection.", Status: 0}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized && !isAuthEndpoint(path) && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, &APIError{
			Message: errorMessage(respBody, resp.StatusCode),
			Status:  resp.StatusCode,
		}
	}

	return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}

// errorMessage prefers the server-supplied message, falling back to a generic
// one built from the status code.
func errorMessage(body []byte, status int) string {
	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Message != "" {
			return errResp.Message
		}
		if errResp.Error != "" {
			return errResp.Error
		}
	}
	return fmt.Sprintf("Error %d", status)
}

// unwrap decodes the server's `{"data": {<key>: ...}}` envelope into target.
func unwrap(resp *Response, key string, target any) error {
	var wrapper struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	if err := resp.DecodeJSON(&wrapper); err != nil {
		return fmt.Errorf("could not decode response envelope: %w", err)
	}
	raw, ok := wrapper.Data[key]
	if !ok {
		return fmt.Errorf("response envelope missing %q", key)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("could not decode %q payload: %w", key, err)
	}
	return nil
}
