package tokenstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
)

// FileStore keeps the token as JSON in a single file. Writes go through a
// temp file and rename so a crash never leaves a half-written token, and the
// file must be readable by the owner only.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a FileStore at the given path, creating parent
// directories with 0700 permissions as needed.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("token file path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Read loads and decodes the stored token. Fails if the file is missing,
// malformed, holds no access token, or has permissions wider than 0600.
func (f *FileStore) Read(ctx context.Context) (*oauth2.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(f.path)
	if err != nil {
		return nil, err
	}
	if perm := info.Mode().Perm(); perm&0077 != 0 {
		return nil, fmt.Errorf("insecure permissions on %s: %04o (expected 0600)", f.path, perm)
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, err
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("decoding token file %s: %w", f.path, err)
	}
	if tok.AccessToken == "" {
		return nil, fmt.Errorf("token file %s holds no access token", f.path)
	}
	return &tok, nil
}

// Write encodes and atomically persists the token with 0600 permissions.
func (f *FileStore) Write(ctx context.Context, tok *oauth2.Token) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), "token-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := tmp.Chmod(0600); err != nil {
		_ = tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, f.path)
}
