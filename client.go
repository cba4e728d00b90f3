package dribbble

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/oauth2"

	"github.com/florianilch/dribbble-go/wire"
)

// DefaultBaseURL is the Dribbble v2 API base.
const DefaultBaseURL = "https://api.dribbble.com/v2"

// Endpoint defines the OAuth2 endpoints for the Dribbble API.
var Endpoint = oauth2.Endpoint{
	AuthURL:   "https://dribbble.com/oauth/authorize",
	TokenURL:  "https://dribbble.com/oauth/token",
	AuthStyle: oauth2.AuthStyleInParams,
}

// Scope is an OAuth scope accepted by the Dribbble API.
type Scope string

const (
	ScopePublic Scope = "public"
	ScopeUpload Scope = "upload"
)

// Config holds the OAuth application credentials. All fields are required
// and immutable after construction.
type Config struct {
	ClientID     string `validate:"required"`
	ClientSecret string `validate:"required"`
	Scope        Scope  `validate:"required,oneof=public upload"`
}

// Client talks to the Dribbble v2 API. The access token is expected to be
// installed once, before concurrent use begins; requests issued after a
// token change pick up the new bearer header, in-flight requests do not.
type Client struct {
	cfg        Config
	baseURL    string
	endpoint   oauth2.Endpoint
	httpClient *http.Client
	logger     *slog.Logger

	accessToken string
	tokenSource oauth2.TokenSource
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client. Timeouts and cancellation
// policy belong to this client; the library adds none of its own.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithEndpoint overrides the OAuth2 authorization and token endpoints.
func WithEndpoint(ep oauth2.Endpoint) Option {
	return func(c *Client) { c.endpoint = ep }
}

// WithLogger sets the logger used for per-request debug logging.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTokenSource authenticates requests from an oauth2.TokenSource instead
// of a token installed with SetAccessToken. Refreshing sources compose with
// the client unmodified; the source is consulted on every request.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(c *Client) { c.tokenSource = ts }
}

// New creates a Client for the given application credentials.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	c := &Client{
		cfg:        cfg,
		baseURL:    DefaultBaseURL,
		endpoint:   Endpoint,
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetAccessToken installs the bearer token sent with every subsequent
// request. Idempotent; overwrites any previous token.
func (c *Client) SetAccessToken(token string) {
	c.accessToken = token
}

// enforceAuthorized guards protected endpoints. It runs synchronously before
// any network I/O so unauthenticated calls never reach the transport.
func (c *Client) enforceAuthorized() error {
	if c.accessToken == "" && c.tokenSource == nil {
		return ErrMissingToken
	}
	return nil
}

// bearerToken resolves the token for the Authorization header.
func (c *Client) bearerToken() (string, error) {
	if c.tokenSource != nil {
		tok, err := c.tokenSource.Token()
		if err != nil {
			return "", fmt.Errorf("getting token from token source: %w", err)
		}
		return tok.AccessToken, nil
	}
	return c.accessToken, nil
}

// call issues a request against the API base and decodes the response as a
// single object with camelCased top-level keys.
func (c *Client) call(ctx context.Context, method, path string, body, query wire.Payload) (wire.Payload, error) {
	raw, err := c.do(ctx, method, c.requestURL(path, query), body)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return wire.Payload{}, nil
	}

	var decoded wire.Payload
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decoding response body: %w", err)
	}
	return wire.FromWire(decoded), nil
}

// callList is the list-endpoint counterpart of call: the response is a JSON
// array whose elements each get their top-level keys camelCased.
func (c *Client) callList(ctx context.Context, method, path string, query wire.Payload) ([]wire.Payload, error) {
	raw, err := c.do(ctx, method, c.requestURL(path, query), nil)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []wire.Payload{}, nil
	}

	var decoded []wire.Payload
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decoding response body: %w", err)
	}
	out := make([]wire.Payload, 0, len(decoded))
	for _, p := range decoded {
		out = append(out, wire.FromWire(p))
	}
	return out, nil
}

// requestURL joins the API base with a path and an optional query payload.
// The query runs through the outbound transform, so zero-valued parameters
// drop out instead of being sent empty.
func (c *Client) requestURL(path string, query wire.Payload) string {
	u := c.baseURL + path
	if len(query) > 0 {
		if qs := wire.Values(wire.ToWire(query)).Encode(); qs != "" {
			u += "?" + qs
		}
	}
	return u
}

// do issues a single HTTP request. Bodies run through the outbound transform
// and are form-encoded. Non-2xx responses map to a transport Error carrying
// the remote status; network-level failures propagate wrapped.
func (c *Client) do(ctx context.Context, method, rawURL string, body wire.Payload) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = strings.NewReader(wire.Values(wire.ToWire(body)).Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	token, err := c.bearerToken()
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.logger.DebugContext(ctx, "api call",
		"method", method,
		"url", rawURL,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := strings.TrimSpace(string(raw))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &Error{Kind: KindTransport, Message: msg, Code: resp.StatusCode}
	}

	return raw, nil
}
