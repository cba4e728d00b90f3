package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/florianilch/dribbble-go/internal/app"
)

func projectsCommand() *cli.Command {
	return &cli.Command{
		Name:  "projects",
		Usage: "work with projects",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list your projects",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "page", Usage: "page number"},
					&cli.IntFlag{Name: "per-page", Usage: "results per page"},
				},
				Action: projectsListAction,
			},
			{
				Name:      "create",
				Usage:     "create a project",
				ArgsUsage: "<name>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "description", Usage: "project description"},
				},
				Action: projectsCreateAction,
			},
			{
				Name:      "delete",
				Usage:     "delete a project",
				ArgsUsage: "<id>",
				Action:    projectsDeleteAction,
			},
		},
	}
}

func projectsListAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	client, err := app.NewAuthorizedClient(ctx, cfg)
	if err != nil {
		return err
	}

	projects, err := client.GetUserProject(ctx, pagerFromFlags(cmd))
	if err != nil {
		return err
	}
	return printJSON(projects)
}

func projectsCreateAction(ctx context.Context, cmd *cli.Command) error {
	name, cfg, err := idArgAndConfig(cmd)
	if err != nil {
		return err
	}
	client, err := app.NewAuthorizedClient(ctx, cfg)
	if err != nil {
		return err
	}

	project, err := client.CreateProject(ctx, name, cmd.String("description"))
	if err != nil {
		return err
	}
	return printJSON(project)
}

func projectsDeleteAction(ctx context.Context, cmd *cli.Command) error {
	id, cfg, err := idArgAndConfig(cmd)
	if err != nil {
		return err
	}
	client, err := app.NewAuthorizedClient(ctx, cfg)
	if err != nil {
		return err
	}

	if _, err := client.DeleteProject(ctx, id); err != nil {
		return err
	}
	fmt.Println("deleted", id)
	return nil
}
