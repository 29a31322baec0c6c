package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/oscli/cmd/app/commands"
	"github.com/allisson/oscli/internal/app"
	"github.com/allisson/oscli/internal/config"
	"github.com/allisson/oscli/internal/schema"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "check-commands",
			Usage: "Check the structural consistency of the os command registry",
			Flags: []cli.Flag{
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunCheckCommands(
					cmd.Root(),
					schema.Namespace,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "create-encryption-key",
			Usage: "Generate a random AES-256 key file for server-side encryption",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "file",
					Required: true,
					Usage:    "Path of the key file to create",
				},
				&cli.BoolFlag{
					Name:  "force",
					Usage: "Overwrite an existing key file",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunCreateEncryptionKey(
					container.Logger(),
					cmd.String("file"),
					cmd.Bool("force"),
					commands.DefaultIO().Writer,
				)
			},
		},
		{
			Name:  "version",
			Usage: "Print the version",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				_, err := cmd.Root().Writer.Write([]byte(version + "\n"))
				return err
			},
		},
	}
}
