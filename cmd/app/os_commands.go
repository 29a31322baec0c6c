package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/oscli/cmd/app/commands"
	"github.com/allisson/oscli/internal/app"
	"github.com/allisson/oscli/internal/schema"
)

func getObjectStorageCommand() *cli.Command {
	return &cli.Command{
		Name:  schema.Namespace,
		Usage: "Object Storage service",
		Commands: []*cli.Command{
			getNamespaceCommand(),
			getBucketCommand(),
			getObjectCommand(),
			getRetentionRuleCommand(),
			getReplicationCommand(),
		},
	}
}

func getNamespaceCommand() *cli.Command {
	return &cli.Command{
		Name:  "ns",
		Usage: "Object Storage namespace",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Get the namespace of the tenancy or of a compartment",
				Flags: []cli.Flag{
					compartmentIDFlag(false),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
						namespaceUseCase, err := container.NamespaceUseCase()
						if err != nil {
							return err
						}
						return commands.RunGetNamespace(
							ctx,
							namespaceUseCase,
							cmd.String("compartment-id"),
							commands.DefaultIO().Writer,
						)
					})
				},
			},
			{
				Name:  "get-metadata",
				Usage: "Get the default S3 and Swift compartments of a namespace",
				Flags: []cli.Flag{
					namespaceFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
						namespaceUseCase, err := container.NamespaceUseCase()
						if err != nil {
							return err
						}
						return commands.RunGetNamespaceMetadata(
							ctx,
							namespaceUseCase,
							cmd.String("namespace-name"),
							commands.DefaultIO().Writer,
						)
					})
				},
			},
		},
	}
}
