package tokenstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zalando/go-keyring"
	"golang.org/x/oauth2"
)

const keyringService = "dribbble-cli"

// KeyringStore keeps the token JSON in the OS-native credential store
// (macOS Keychain, Windows Credential Manager, Linux Secret Service).
type KeyringStore struct {
	user string
}

var _ Store = (*KeyringStore)(nil)

// NewKeyringStore creates a KeyringStore scoped to the given user identifier.
func NewKeyringStore(user string) (*KeyringStore, error) {
	if user == "" {
		return nil, fmt.Errorf("keyring user cannot be empty")
	}
	return &KeyringStore{user: user}, nil
}

// Read loads and decodes the token from the system keyring.
func (k *KeyringStore) Read(ctx context.Context) (*oauth2.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := keyring.Get(keyringService, k.user)
	if err != nil {
		return nil, err
	}

	var tok oauth2.Token
	if err := json.Unmarshal([]byte(raw), &tok); err != nil {
		return nil, fmt.Errorf("decoding keyring token for user %s: %w", k.user, err)
	}
	if tok.AccessToken == "" {
		return nil, fmt.Errorf("keyring entry for user %s holds no access token", k.user)
	}
	return &tok, nil
}

// Write encodes the token and stores it in the system keyring.
func (k *KeyringStore) Write(ctx context.Context, tok *oauth2.Token) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}
	return keyring.Set(keyringService, k.user, string(data))
}
