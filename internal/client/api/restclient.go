package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aadarshprajapati/docuchat-cli/internal/common"
	"github.com/aadarshprajapati/docuchat-cli/internal/logging"
)

// envelope is the JSON wrapper used by all gateway responses:
// a token on auth endpoints, a data payload, or one of several error shapes.
type envelope struct {
	Token   string            `json:"token,omitempty"`
	Data    json.RawMessage   `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// RESTClient talks JSON over HTTP to the gateway.
//
// The token set via SetToken is attached as an Authorization bearer header to
// every request. Any 401 response additionally fires the OnUnauthorized hook,
// which the session controller uses as the global clear-session signal. The
// hook runs on the calling goroutine and must not block.
type RESTClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	mu             sync.RWMutex
	token          string
	onUnauthorized func()
}

// compile-time check that RESTClient covers the full gateway surface
var _ Client = (*RESTClient)(nil)

// Option customizes a RESTClient.
type Option func(*RESTClient)

// WithHTTPClient substitutes the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *RESTClient) { c.http = h }
}

// WithOnUnauthorized registers the hook fired on any 401 response.
func WithOnUnauthorized(fn func()) Option {
	return func(c *RESTClient) { c.onUnauthorized = fn }
}

// NewRESTClient builds a client for the gateway at baseURL. The timeout is
// applied to every request by the underlying transport; individual calls can
// still be cut short by their context.
func NewRESTClient(baseURL string, timeout time.Duration, log logging.Logger, opts ...Option) *RESTClient {
	c := &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken attaches token to all subsequent requests; empty string detaches.
func (c *RESTClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the currently attached bearer token.
func (c *RESTClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetOnUnauthorized replaces the 401 hook after construction. The session
// controller needs this because client and controller reference each other.
func (c *RESTClient) SetOnUnauthorized(fn func()) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

// do issues a JSON request and decodes the response envelope. A non-nil body
// is marshalled as the request payload; out, when non-nil, receives the
// envelope's data field. The returned envelope gives auth callers access to
// the token field.
func (c *RESTClient) do(ctx context.Context, method, path string, body any, out any) (*envelope, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// send finishes header preparation, executes the request, and maps the
// response onto the error taxonomy. Used by do and by the multipart upload
// path, which prepares its own body.
func (c *RESTClient) send(req *http.Request, out any) (*envelope, error) {
	req.Header.Set(common.RequestIDHeader, uuid.NewString())
	if token := c.Token(); token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(req.Context(), "gateway request failed", "method", req.Method, "path", req.URL.Path, "error", err)
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	env := &envelope{}
	if len(raw) > 0 {
		// Tolerate non-JSON bodies; the status code still classifies the error.
		_ = json.Unmarshal(raw, env)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out != nil && len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, out); err != nil {
				return nil, fmt.Errorf("decode response data: %w", err)
			}
		}
		return env, nil
	}

	msg := normalizeMessage(resp.StatusCode, env)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.fireUnauthorized(req)
		return nil, &AuthError{Status: resp.StatusCode, Message: msg}
	case resp.StatusCode == http.StatusForbidden:
		return nil, &AuthError{Status: resp.StatusCode, Message: msg}
	case resp.StatusCode >= 500:
		return nil, &ServerError{Status: resp.StatusCode, Message: msg}
	default:
		return nil, &RequestError{Status: resp.StatusCode, Message: msg}
	}
}

func (c *RESTClient) fireUnauthorized(req *http.Request) {
	c.mu.RLock()
	fn := c.onUnauthorized
	c.mu.RUnlock()
	if fn != nil {
		c.log.Debug(req.Context(), "received 401, signalling session clear", "path", req.URL.Path)
		fn()
	}
}
