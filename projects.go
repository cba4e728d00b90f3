package dribbble

import (
	"context"
	"net/http"
	"net/url"

	"github.com/florianilch/dribbble-go/wire"
)

// GetUserProject lists the authenticated user's projects.
func (c *Client) GetUserProject(ctx context.Context, pager Pager) ([]wire.Payload, error) {
	if err := c.enforceAuthorized(); err != nil {
		return nil, err
	}
	return c.callList(ctx, http.MethodGet, "/user/project", pager.payload())
}

// CreateProject creates a project with the given name and description.
func (c *Client) CreateProject(ctx context.Context, name, description string) (wire.Payload, error) {
	if err := c.enforceAuthorized(); err != nil {
		return nil, err
	}
	return c.call(ctx, http.MethodPost, "/projects", wire.Payload{
		"name":        name,
		"description": description,
	}, nil)
}

// UpdateProject updates attributes of an existing project.
func (c *Client) UpdateProject(ctx context.Context, id string, data wire.Payload) (wire.Payload, error) {
	if err := c.enforceAuthorized(); err != nil {
		return nil, err
	}
	return c.call(ctx, http.MethodPost, "/projects/"+url.PathEscape(id), data, nil)
}

// DeleteProject removes a project.
func (c *Client) DeleteProject(ctx context.Context, id string) (wire.Payload, error) {
	if err := c.enforceAuthorized(); err != nil {
		return nil, err
	}
	return c.call(ctx, http.MethodDelete, "/projects/"+url.PathEscape(id), nil, nil)
}
