package dribbble

import (
	"context"
	"net/http"
	"net/url"

	"github.com/florianilch/dribbble-go/wire"
)

// CreateAttachment uploads an attachment for a shot. The binary payload is
// passed through as the file field; no streaming or multipart handling is
// performed.
func (c *Client) CreateAttachment(ctx context.Context, shotID string, file []byte) (wire.Payload, error) {
	if err := c.enforceAuthorized(); err != nil {
		return nil, err
	}
	return c.call(ctx, http.MethodPost, "/shots/"+url.PathEscape(shotID)+"/attachments", wire.Payload{
		"file": file,
	}, nil)
}

// DeleteAttachment removes an attachment from a shot.
func (c *Client) DeleteAttachment(ctx context.Context, shotID, attachmentID string) (wire.Payload, error) {
	if err := c.enforceAuthorized(); err != nil {
		return nil, err
	}
	path := "/shots/" + url.PathEscape(shotID) + "/attachments/" + url.PathEscape(attachmentID)
	return c.call(ctx, http.MethodDelete, path, nil, nil)
}
