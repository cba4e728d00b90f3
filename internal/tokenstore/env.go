package tokenstore

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
)

// EnvStore reads a bare access token from an environment variable. It is
// read-only; the login flow cannot persist through it.
type EnvStore struct {
	key string
}

var _ Store = (*EnvStore)(nil)

// NewEnvStore creates an EnvStore for the given variable. Fails if the name
// is empty or the variable is not set.
func NewEnvStore(key string) (*EnvStore, error) {
	if key == "" {
		return nil, fmt.Errorf("environment variable name cannot be empty")
	}
	if _, ok := os.LookupEnv(key); !ok {
		return nil, fmt.Errorf("environment variable %s not set", key)
	}
	return &EnvStore{key: key}, nil
}

// Read wraps the variable's value in a token. Fails if the value is empty.
func (e *EnvStore) Read(ctx context.Context) (*oauth2.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v := os.Getenv(e.key)
	if v == "" {
		return nil, fmt.Errorf("environment variable %s is empty", e.key)
	}
	return &oauth2.Token{AccessToken: v, TokenType: "Bearer"}, nil
}

// Write always fails; environment variables are read-only storage.
func (e *EnvStore) Write(ctx context.Context, tok *oauth2.Token) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fmt.Errorf("environment variable storage is read-only")
}
