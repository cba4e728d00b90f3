package tokenstore

import (
	"context"

	"golang.org/x/oauth2"
)

// Store reads and writes the OAuth token backing the CLI's API calls.
type Store interface {
	// Read returns the stored token. Returns an error if no token has been
	// stored or the stored value is empty.
	Read(ctx context.Context) (*oauth2.Token, error)

	// Write persists the token, overwriting any previous value. Returns an
	// error for read-only backends.
	Write(ctx context.Context, tok *oauth2.Token) error
}
