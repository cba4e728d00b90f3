package dribbble

import (
	"context"
	"net/http"

	"github.com/florianilch/dribbble-go/wire"
)

// GetProfile fetches the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (wire.Payload, error) {
	if err := c.enforceAuthorized(); err != nil {
		return nil, err
	}
	return c.call(ctx, http.MethodGet, "/user", nil, nil)
}
