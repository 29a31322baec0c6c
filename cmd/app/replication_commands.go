package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/oscli/cmd/app/commands"
	"github.com/allisson/oscli/internal/app"
	"github.com/allisson/oscli/internal/objectstorage/domain"
)

func replicationIDFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "replication-id",
		Required: true,
		Usage:    "Replication policy id",
	}
}

func getReplicationCommand() *cli.Command {
	return &cli.Command{
		Name:  "replication",
		Usage: "Manage bucket replication policies",
		Commands: []*cli.Command{
			{
				Name:  "create-replication-policy",
				Usage: "Create a replication policy",
				Flags: []cli.Flag{
					namespaceFlag(),
					bucketFlag(),
					&cli.StringFlag{
						Name:     "name",
						Required: true,
						Usage:    "Policy name",
					},
					&cli.StringFlag{
						Name:     "destination-bucket",
						Required: true,
						Usage:    "Bucket objects are replicated to",
					},
					&cli.StringFlag{
						Name:     "destination-region",
						Required: true,
						Usage:    "Region of the destination bucket",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					input := &domain.ReplicationPolicyInput{
						Namespace:         cmd.String("namespace-name"),
						Bucket:            cmd.String("bucket-name"),
						Name:              cmd.String("name"),
						DestinationBucket: cmd.String("destination-bucket"),
						DestinationRegion: cmd.String("destination-region"),
					}
					if err := input.Validate(); err != nil {
						return err
					}
					return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
						replicationUseCase, err := container.ReplicationUseCase()
						if err != nil {
							return err
						}
						return commands.RunCreateReplicationPolicy(
							ctx,
							replicationUseCase,
							container.Logger(),
							input,
							commands.DefaultIO().Writer,
						)
					})
				},
			},
			{
				Name:  "get-replication-policy",
				Usage: "Get a replication policy",
				Flags: []cli.Flag{namespaceFlag(), bucketFlag(), replicationIDFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
						replicationUseCase, err := container.ReplicationUseCase()
						if err != nil {
							return err
						}
						return commands.RunGetReplicationPolicy(
							ctx,
							replicationUseCase,
							cmd.String("namespace-name"),
							cmd.String("bucket-name"),
							cmd.String("replication-id"),
							commands.DefaultIO().Writer,
						)
					})
				},
			},
			{
				Name:  "list-replication-policies",
				Usage: "List the replication policies of a bucket",
				Flags: []cli.Flag{namespaceFlag(), bucketFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
						replicationUseCase, err := container.ReplicationUseCase()
						if err != nil {
							return err
						}
						return commands.RunListReplicationPolicies(
							ctx,
							replicationUseCase,
							cmd.String("namespace-name"),
							cmd.String("bucket-name"),
							commands.DefaultIO().Writer,
						)
					})
				},
			},
			{
				Name:  "delete-replication-policy",
				Usage: "Delete a replication policy",
				Flags: []cli.Flag{namespaceFlag(), bucketFlag(), replicationIDFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
						replicationUseCase, err := container.ReplicationUseCase()
						if err != nil {
							return err
						}
						return commands.RunDeleteReplicationPolicy(
							ctx,
							replicationUseCase,
							container.Logger(),
							cmd.String("namespace-name"),
							cmd.String("bucket-name"),
							cmd.String("replication-id"),
						)
					})
				},
			},
		},
	}
}
