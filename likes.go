package dribbble

import (
	"context"
	"net/http"
	"net/url"

	"github.com/florianilch/dribbble-go/wire"
)

// GetLikes lists shots liked by the authenticated user.
func (c *Client) GetLikes(ctx context.Context, pager Pager) ([]wire.Payload, error) {
	if err := c.enforceAuthorized(); err != nil {
		return nil, err
	}
	return c.callList(ctx, http.MethodGet, "/user/likes", pager.payload())
}

// HasLiked checks whether the authenticated user has liked a shot. The
// remote replies 404 when the shot is not liked, which surfaces as a
// transport Error with that code.
func (c *Client) HasLiked(ctx context.Context, shotID string) (wire.Payload, error) {
	if err := c.enforceAuthorized(); err != nil {
		return nil, err
	}
	return c.call(ctx, http.MethodGet, "/shots/"+url.PathEscape(shotID)+"/like", nil, nil)
}

// LikeShot likes a shot on behalf of the authenticated user.
func (c *Client) LikeShot(ctx context.Context, shotID string) (wire.Payload, error) {
	if err := c.enforceAuthorized(); err != nil {
		return nil, err
	}
	return c.call(ctx, http.MethodPost, "/shots/"+url.PathEscape(shotID)+"/like", nil, nil)
}

// UnlikeShot removes the authenticated user's like from a shot.
func (c *Client) UnlikeShot(ctx context.Context, shotID string) (wire.Payload, error) {
	if err := c.enforceAuthorized(); err != nil {
		return nil, err
	}
	return c.call(ctx, http.MethodDelete, "/shots/"+url.PathEscape(shotID)+"/like", nil, nil)
}
