package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/florianilch/dribbble-go/internal/app"
)

func likesCommand() *cli.Command {
	return &cli.Command{
		Name:  "likes",
		Usage: "list shots you have liked",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "page", Usage: "page number"},
			&cli.IntFlag{Name: "per-page", Usage: "results per page"},
		},
		Action: likesAction,
	}
}

func profileCommand() *cli.Command {
	return &cli.Command{
		Name:   "profile",
		Usage:  "show your user profile",
		Action: profileAction,
	}
}

func likesAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	client, err := app.NewAuthorizedClient(ctx, cfg)
	if err != nil {
		return err
	}

	likes, err := client.GetLikes(ctx, pagerFromFlags(cmd))
	if err != nil {
		return err
	}
	return printJSON(likes)
}

func profileAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	client, err := app.NewAuthorizedClient(ctx, cfg)
	if err != nil {
		return err
	}

	profile, err := client.GetProfile(ctx)
	if err != nil {
		return err
	}
	return printJSON(profile)
}
