package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"

	dribbble "github.com/florianilch/dribbble-go"
	"github.com/florianilch/dribbble-go/internal/callback"
	"github.com/florianilch/dribbble-go/wire"
)

// NewClient builds an unauthenticated client from the CLI configuration.
func NewClient(cfg *Config) (*dribbble.Client, error) {
	return dribbble.New(dribbble.Config{
		ClientID:     cfg.Auth.ClientID,
		ClientSecret: cfg.Auth.ClientSecret,
		Scope:        dribbble.Scope(cfg.Auth.Scope),
	})
}

// NewAuthorizedClient builds a client and installs the stored access token.
func NewAuthorizedClient(ctx context.Context, cfg *Config) (*dribbble.Client, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}

	store, err := cfg.Storage.NewStore()
	if err != nil {
		return nil, fmt.Errorf("failed to create token store: %w", err)
	}
	tok, err := store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading stored token (run `dribbble auth login` first): %w", err)
	}

	client.SetAccessToken(tok.AccessToken)
	return client, nil
}

// Login drives the authorization-code flow end to end: it starts the
// loopback callback server, prints the authorization URL for the user to
// visit, waits for the redirect, exchanges the code, and persists the token.
func Login(ctx context.Context, cfg *Config) error {
	client, err := NewClient(cfg)
	if err != nil {
		return err
	}

	state := uuid.NewString()
	srv := callback.New(slog.Default(), state)

	address := cfg.Callback.Host + ":" + strconv.FormatUint(uint64(cfg.Callback.Port), 10)
	serveErrCh, err := srv.Start(ctx, address)
	if err != nil {
		return fmt.Errorf("callback server startup failed: %w", err)
	}
	defer func() {
		if err := srv.Shutdown(context.Background()); err != nil {
			slog.Error("callback server shutdown failed", "error", err)
		}
	}()

	redirectURI := cfg.RedirectURI()
	authURL := client.AuthorizationURL(
		dribbble.WithRedirectURI(redirectURI),
		dribbble.WithState(state),
	)

	fmt.Printf("Visit the following URL to authorize the application:\n\n  %s\n\nWaiting for the redirect on %s ...\n", authURL, redirectURI)

	g, gCtx := errgroup.WithContext(ctx)

	var code string
	g.Go(func() error {
		select {
		case res := <-srv.Result():
			code = res.Code
			return nil
		case err := <-serveErrCh:
			if err != nil {
				return fmt.Errorf("callback server: %w", err)
			}
			return errors.New("callback server stopped before the redirect arrived")
		case <-gCtx.Done():
			return gCtx.Err()
		}
	})
	if err := g.Wait(); err != nil {
		return err
	}

	return Exchange(ctx, cfg, code, redirectURI)
}

// Exchange trades an authorization code for a token and persists it. Used by
// Login and by the manual `auth exchange` path where the user pastes the
// code, in which case redirectURI may be empty.
func Exchange(ctx context.Context, cfg *Config, code, redirectURI string) error {
	client, err := NewClient(cfg)
	if err != nil {
		return err
	}
	store, err := cfg.Storage.NewStore()
	if err != nil {
		return fmt.Errorf("failed to create token store: %w", err)
	}

	payload, err := client.ExchangeCode(ctx, code, redirectURI)
	if err != nil {
		return fmt.Errorf("exchanging authorization code: %w", err)
	}

	tok, err := tokenFromPayload(payload)
	if err != nil {
		return err
	}
	if err := store.Write(ctx, tok); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}

	slog.InfoContext(ctx, "token stored", "storage", cfg.Storage.Type)
	return nil
}

func tokenFromPayload(payload wire.Payload) (*oauth2.Token, error) {
	accessToken, _ := payload["accessToken"].(string)
	if accessToken == "" {
		return nil, errors.New("token response carries no access token")
	}

	tok := &oauth2.Token{AccessToken: accessToken}
	if tokenType, ok := payload["tokenType"].(string); ok {
		tok.TokenType = tokenType
	}
	return tok, nil
}
