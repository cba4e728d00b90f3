package dribbble

import (
	"context"
	"net/http"
	"net/url"

	"github.com/florianilch/dribbble-go/wire"
)

// GetShot fetches a single shot. No authentication required.
func (c *Client) GetShot(ctx context.Context, id string) (wire.Payload, error) {
	return c.call(ctx, http.MethodGet, "/shots/"+url.PathEscape(id), nil, nil)
}

// GetUserShots lists the authenticated user's shots.
func (c *Client) GetUserShots(ctx context.Context, pager Pager) ([]wire.Payload, error) {
	if err := c.enforceAuthorized(); err != nil {
		return nil, err
	}
	return c.callList(ctx, http.MethodGet, "/user/shots", pager.payload())
}

// GetPopularShots lists popular shots. No authentication required.
func (c *Client) GetPopularShots(ctx context.Context, pager Pager) ([]wire.Payload, error) {
	return c.callList(ctx, http.MethodGet, "/popular_shots", pager.payload())
}

// CreateShot publishes a new shot from an arbitrary attribute payload.
func (c *Client) CreateShot(ctx context.Context, data wire.Payload) (wire.Payload, error) {
	if err := c.enforceAuthorized(); err != nil {
		return nil, err
	}
	return c.call(ctx, http.MethodPost, "/shots", data, nil)
}

// UpdateShot updates attributes of an existing shot.
func (c *Client) UpdateShot(ctx context.Context, id string, data wire.Payload) (wire.Payload, error) {
	if err := c.enforceAuthorized(); err != nil {
		return nil, err
	}
	return c.call(ctx, http.MethodPost, "/shots/"+url.PathEscape(id), data, nil)
}

// DeleteShot removes a shot.
func (c *Client) DeleteShot(ctx context.Context, id string) (wire.Payload, error) {
	if err := c.enforceAuthorized(); err != nil {
		return nil, err
	}
	return c.call(ctx, http.MethodDelete, "/shots/"+url.PathEscape(id), nil, nil)
}
