// Package commands implements the dribbble CLI on top of the client
// library.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/florianilch/dribbble-go/internal/app"
	"github.com/florianilch/dribbble-go/internal/observability"
)

// Execute runs the root command with the given context and arguments.
func Execute(ctx context.Context, args []string) error {
	cmd := &cli.Command{
		Name:  "dribbble",
		Usage: "Dribbble v2 API client",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug|info|warn|error)",
				Value: slog.LevelInfo.String(),
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format (text|json)",
				Value: string(app.DefaultConfigLogFormat),
			},
			&cli.StringFlag{
				Name:  "otlp-endpoint",
				Usage: "OTLP log endpoint (empty for local logging)",
			},
			&cli.StringFlag{
				Name:  "auth--client-id",
				Usage: "OAuth application client id",
			},
			&cli.StringFlag{
				Name:  "auth--scope",
				Usage: "OAuth scope (public|upload)",
				Value: app.DefaultConfigScope,
			},
		},
		Commands: []*cli.Command{
			authCommand(),
			shotsCommand(),
			projectsCommand(),
			likesCommand(),
			profileCommand(),
		},
	}

	return cmd.Run(ctx, args)
}

// setup loads the configuration and installs the process logger. Every
// subcommand action starts here.
func setup(cmd *cli.Command) (*app.Config, error) {
	cfg, err := loadConfig(cmd.String("config"), cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := observability.Instrument(cfg.LogLevel, string(cfg.LogFormat), cfg.OTLPEndpoint); err != nil {
		return nil, fmt.Errorf("failed to set up observability layer: %w", err)
	}

	return cfg, nil
}
