// Package app holds the CLI's configuration and the login-flow
// orchestration on top of the dribbble client library.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/florianilch/dribbble-go/internal/tokenstore"
)

// LogFormat represents the logging output format.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// StorageType represents the supported token storage backends.
type StorageType string

const (
	StorageTypeFile    StorageType = "file"
	StorageTypeEnv     StorageType = "env"
	StorageTypeKeyring StorageType = "keyring"
)

// Default configuration values
const (
	DefaultConfigLogFormat    = LogFormatText
	DefaultConfigScope        = "public"
	DefaultConfigStorage      = StorageTypeFile
	DefaultConfigCallbackHost = "127.0.0.1"
	DefaultConfigCallbackPort = 8017
)

// AuthConfig holds the OAuth application credentials.
type AuthConfig struct {
	ClientID     string `json:"client_id" validate:"required"`
	ClientSecret string `json:"client_secret"`
	Scope        string `json:"scope" validate:"oneof=public upload"`
}

// StorageConfig describes where the access token is persisted.
type StorageConfig struct {
	Type StorageType `json:"type" validate:"required,oneof=file env keyring"`

	// Backend-specific settings (mutually exclusive based on Type)
	File        string `json:"file,omitempty"`         // file backend: path to token file
	EnvKey      string `json:"env_key,omitempty"`      // env backend: variable name
	KeyringUser string `json:"keyring_user,omitempty"` // keyring backend: user identifier
}

// NewStore creates a token store from the storage configuration.
func (s *StorageConfig) NewStore() (tokenstore.Store, error) {
	switch s.Type {
	case StorageTypeFile:
		return tokenstore.NewFileStore(s.File)
	case StorageTypeEnv:
		return tokenstore.NewEnvStore(s.EnvKey)
	case StorageTypeKeyring:
		return tokenstore.NewKeyringStore(s.KeyringUser)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", s.Type)
	}
}

// CallbackConfig holds the loopback redirect server settings for the login
// flow. The redirect URI registered with the Dribbble application must point
// at this address.
type CallbackConfig struct {
	Host string `json:"host" validate:"hostname_rfc1123|ip"`
	Port uint16 `json:"port"`
}

// Config holds the CLI's configuration.
type Config struct {
	// LogLevel for logging output (defaults to Info if unset).
	LogLevel     slog.Level     `json:"log_level"`
	LogFormat    LogFormat      `json:"log_format" validate:"oneof=text json"`
	OTLPEndpoint string         `json:"otlp_endpoint,omitempty"`
	Auth         AuthConfig     `json:"auth"`
	Storage      StorageConfig  `json:"storage"`
	Callback     CallbackConfig `json:"callback"`
}

// Default creates a new Config with default values applied.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := cfg.ApplyDefaults(); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}
	return cfg, nil
}

// ApplyDefaults fills unset config fields with sensible defaults.
func (c *Config) ApplyDefaults() error {
	if c.LogFormat == "" {
		c.LogFormat = DefaultConfigLogFormat
	}
	if c.Auth.Scope == "" {
		c.Auth.Scope = DefaultConfigScope
	}
	if c.Storage.Type == "" {
		c.Storage.Type = DefaultConfigStorage
	}
	if c.Callback.Host == "" {
		c.Callback.Host = DefaultConfigCallbackHost
	}
	if c.Callback.Port == 0 {
		c.Callback.Port = DefaultConfigCallbackPort
	}

	// Dynamic defaults based on storage type
	switch c.Storage.Type {
	case StorageTypeFile:
		if c.Storage.File == "" {
			configDir, err := os.UserConfigDir()
			if err != nil {
				return fmt.Errorf("storage.file required (auto-detect failed: %w)", err)
			}
			c.Storage.File = filepath.Join(configDir, "dribbble", "token.json")
		}
	case StorageTypeKeyring:
		if c.Storage.KeyringUser == "" {
			currentUser, err := user.Current()
			if err != nil {
				return fmt.Errorf("storage.keyring_user required (auto-detect failed: %w)", err)
			}
			c.Storage.KeyringUser = currentUser.Username
		}
	case StorageTypeEnv:
		// env_key must be explicitly configured
	}

	return nil
}

// Validate validates the configuration using struct tags plus cross-field
// rules the tags cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	// The login flow persists the exchanged token; env storage is read-only.
	switch c.Storage.Type {
	case StorageTypeFile:
		if c.Storage.File == "" {
			return errors.New("file path required for file storage")
		}
	case StorageTypeEnv:
		if c.Storage.EnvKey == "" {
			return errors.New("env_key required for env storage")
		}
	case StorageTypeKeyring:
		if c.Storage.KeyringUser == "" {
			return errors.New("keyring_user required for keyring storage")
		}
	}

	return nil
}

// RedirectURI derives the redirect URI served by the loopback callback
// server.
func (c *Config) RedirectURI() string {
	return fmt.Sprintf("http://%s:%d/callback", c.Callback.Host, c.Callback.Port)
}
