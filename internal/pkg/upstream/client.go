package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type contextKey struct{}

var tokenKey contextKey

// WithToken stores the caller's raw bearer token in the context. The token
// is attached per request; the client itself holds no credentials.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext returns the bearer token stored by WithToken.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}

// StatusError is returned for any non-2xx upstream response. The body is
// kept verbatim so handlers can surface what the backend said.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream API error [%d]: %s", e.StatusCode, e.Body)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

// Client wraps the backend REST API. All domain repositories go through it.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetJSON performs a GET and decodes the JSON response into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out)
}

// PostJSON performs a POST with a JSON body and decodes the response into
// out. Pass nil out to discard the response body.
func (c *Client) PostJSON(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, path, nil, body, out)
}

// PutJSON performs a PUT with a JSON body and decodes the response into out.
func (c *Client) PutJSON(ctx context.Context, path string, query url.Values, body interface{}, out interface{}) error {
	return c.doJSON(ctx, http.MethodPut, path, query, body, out)
}

// PostRaw relays a pre-built body (e.g. multipart) and returns the raw
// response text.
func (c *Client) PostRaw(ctx context.Context, path string, contentType string, body io.Reader) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(text)}
	}
	return string(text), nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(text)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) setAuth(req *http.Request) {
	if token, ok := TokenFromContext(req.Context()); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}
