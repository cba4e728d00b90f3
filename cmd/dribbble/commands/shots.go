package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	dribbble "github.com/florianilch/dribbble-go"
	"github.com/florianilch/dribbble-go/internal/app"
)

func shotsCommand() *cli.Command {
	pagerFlags := []cli.Flag{
		&cli.IntFlag{Name: "page", Usage: "page number"},
		&cli.IntFlag{Name: "per-page", Usage: "results per page"},
	}

	return &cli.Command{
		Name:  "shots",
		Usage: "work with shots",
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "fetch a single shot",
				ArgsUsage: "<id>",
				Action:    shotsGetAction,
			},
			{
				Name:   "list",
				Usage:  "list your shots",
				Flags:  pagerFlags,
				Action: shotsListAction,
			},
			{
				Name:   "popular",
				Usage:  "list popular shots",
				Flags:  pagerFlags,
				Action: shotsPopularAction,
			},
			{
				Name:      "like",
				Usage:     "like a shot",
				ArgsUsage: "<id>",
				Action:    shotsLikeAction,
			},
			{
				Name:      "unlike",
				Usage:     "remove your like from a shot",
				ArgsUsage: "<id>",
				Action:    shotsUnlikeAction,
			},
			{
				Name:      "delete",
				Usage:     "delete a shot",
				ArgsUsage: "<id>",
				Action:    shotsDeleteAction,
			},
		},
	}
}

func pagerFromFlags(cmd *cli.Command) dribbble.Pager {
	return dribbble.Pager{Page: int(cmd.Int("page")), PerPage: int(cmd.Int("per-page"))}
}

func shotsGetAction(ctx context.Context, cmd *cli.Command) error {
	id, cfg, err := idArgAndConfig(cmd)
	if err != nil {
		return err
	}
	client, err := app.NewClient(cfg)
	if err != nil {
		return err
	}

	// GetShot is a public endpoint; no stored token needed.
	shot, err := client.GetShot(ctx, id)
	if err != nil {
		return err
	}
	return printJSON(shot)
}

func shotsListAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	client, err := app.NewAuthorizedClient(ctx, cfg)
	if err != nil {
		return err
	}

	shots, err := client.GetUserShots(ctx, pagerFromFlags(cmd))
	if err != nil {
		return err
	}
	return printJSON(shots)
}

func shotsPopularAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	client, err := app.NewClient(cfg)
	if err != nil {
		return err
	}

	shots, err := client.GetPopularShots(ctx, pagerFromFlags(cmd))
	if err != nil {
		return err
	}
	return printJSON(shots)
}

func shotsLikeAction(ctx context.Context, cmd *cli.Command) error {
	id, cfg, err := idArgAndConfig(cmd)
	if err != nil {
		return err
	}
	client, err := app.NewAuthorizedClient(ctx, cfg)
	if err != nil {
		return err
	}

	like, err := client.LikeShot(ctx, id)
	if err != nil {
		return err
	}
	return printJSON(like)
}

func shotsUnlikeAction(ctx context.Context, cmd *cli.Command) error {
	id, cfg, err := idArgAndConfig(cmd)
	if err != nil {
		return err
	}
	client, err := app.NewAuthorizedClient(ctx, cfg)
	if err != nil {
		return err
	}

	if _, err := client.UnlikeShot(ctx, id); err != nil {
		return err
	}
	fmt.Println("unliked", id)
	return nil
}

func shotsDeleteAction(ctx context.Context, cmd *cli.Command) error {
	id, cfg, err := idArgAndConfig(cmd)
	if err != nil {
		return err
	}
	client, err := app.NewAuthorizedClient(ctx, cfg)
	if err != nil {
		return err
	}

	if _, err := client.DeleteShot(ctx, id); err != nil {
		return err
	}
	fmt.Println("deleted", id)
	return nil
}

// idArgAndConfig extracts the required identifier argument and loads config.
func idArgAndConfig(cmd *cli.Command) (string, *app.Config, error) {
	id := cmd.Args().First()
	if id == "" {
		return "", nil, fmt.Errorf("identifier argument required")
	}
	cfg, err := setup(cmd)
	if err != nil {
		return "", nil, err
	}
	return id, cfg, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
