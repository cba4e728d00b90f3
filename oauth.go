package dribbble

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/florianilch/dribbble-go/wire"
)

// AuthOption adjusts the parameters of AuthorizationURL.
type AuthOption func(*authParams)

type authParams struct {
	scope       Scope
	redirectURI string
	state       string
}

// WithAuthScope overrides the client's configured scope for this URL.
func WithAuthScope(s Scope) AuthOption {
	return func(p *authParams) { p.scope = s }
}

// WithRedirectURI sets the redirect_uri parameter.
func WithRedirectURI(uri string) AuthOption {
	return func(p *authParams) { p.redirectURI = uri }
}

// WithState sets the opaque state parameter echoed back on the redirect.
func WithState(state string) AuthOption {
	return func(p *authParams) { p.state = state }
}

// AuthorizationURL builds the URL the user must visit to authorize the
// application. Pure construction, no network call. Parameters left unset
// drop out of the query through the outbound transform.
func (c *Client) AuthorizationURL(opts ...AuthOption) string {
	p := authParams{scope: c.cfg.Scope}
	for _, opt := range opts {
		opt(&p)
	}

	q := wire.Values(wire.ToWire(wire.Payload{
		"clientId":    c.cfg.ClientID,
		"scope":       string(p.scope),
		"redirectUri": p.redirectURI,
		"state":       p.state,
	})).Encode()

	return c.endpoint.AuthURL + "?" + q
}

// ExchangeCode trades an authorization code for an access token and returns
// the camelCased token payload. The client does not install the token; the
// caller extracts it and passes it to SetAccessToken. redirectURI may be
// empty when the application has a single registered callback.
func (c *Client) ExchangeCode(ctx context.Context, code, redirectURI string) (wire.Payload, error) {
	raw, err := c.do(ctx, http.MethodPost, c.endpoint.TokenURL, wire.Payload{
		"clientId":     c.cfg.ClientID,
		"clientSecret": c.cfg.ClientSecret,
		"code":         code,
		"redirectUri":  redirectURI,
	})
	if err != nil {
		return nil, err
	}

	var decoded wire.Payload
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decoding token response: %w", err)
	}
	return wire.FromWire(decoded), nil
}
