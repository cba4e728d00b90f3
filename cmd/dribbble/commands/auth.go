package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	dribbble "github.com/florianilch/dribbble-go"
	"github.com/florianilch/dribbble-go/internal/app"
)

func authCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "authorize the CLI against the Dribbble API",
		Commands: []*cli.Command{
			{
				Name:   "login",
				Usage:  "run the authorization-code flow with a loopback redirect",
				Action: authLoginAction,
			},
			{
				Name:   "url",
				Usage:  "print the authorization URL without waiting for a redirect",
				Action: authURLAction,
			},
			{
				Name:      "exchange",
				Usage:     "exchange a manually obtained authorization code",
				ArgsUsage: "<code>",
				Action:    authExchangeAction,
			},
		},
	}
}

func authLoginAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	if err := ensureClientSecret(cfg); err != nil {
		return err
	}

	return app.Login(ctx, cfg)
}

func authURLAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	// The secret is not needed for URL construction but the client
	// validates its full configuration up front.
	if err := ensureClientSecret(cfg); err != nil {
		return err
	}
	client, err := app.NewClient(cfg)
	if err != nil {
		return err
	}

	fmt.Println(client.AuthorizationURL(dribbble.WithRedirectURI(cfg.RedirectURI())))
	return nil
}

func authExchangeAction(ctx context.Context, cmd *cli.Command) error {
	code := cmd.Args().First()
	if code == "" {
		return fmt.Errorf("authorization code argument required")
	}

	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	if err := ensureClientSecret(cfg); err != nil {
		return err
	}

	return app.Exchange(ctx, cfg, code, "")
}

// ensureClientSecret prompts for the OAuth client secret when it is absent
// from every config source and stdin is a terminal.
func ensureClientSecret(cfg *app.Config) error {
	if cfg.Auth.ClientSecret != "" {
		return nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("auth.client_secret not configured and stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, "Client secret: ")
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("reading client secret: %w", err)
	}
	if len(secret) == 0 {
		return fmt.Errorf("client secret cannot be empty")
	}

	cfg.Auth.ClientSecret = string(secret)
	return nil
}
