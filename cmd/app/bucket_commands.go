package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/oscli/cmd/app/commands"
	"github.com/allisson/oscli/internal/app"
)

func getBucketCommand() *cli.Command {
	return &cli.Command{
		Name:  "bucket",
		Usage: "Manage buckets",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a bucket",
				Flags: []cli.Flag{
					namespaceFlag(),
					&cli.StringFlag{
						Name:     "name",
						Required: true,
						Usage:    "Bucket name",
					},
					compartmentIDFlag(true),
					&cli.StringFlag{
						Name:  "storage-tier",
						Usage: "Storage tier: Standard or Archive",
					},
					&cli.StringFlag{
						Name:  "public-access-type",
						Usage: "Public access: NoPublicAccess, ObjectRead or ObjectReadWithoutList",
					},
					&cli.StringFlag{
						Name:  "kms-key-id",
						Usage: "OCID of the master encryption key",
					},
					&cli.BoolFlag{
						Name:  "versioning",
						Usage: "Enable object versioning",
					},
					&cli.StringFlag{
						Name:  "metadata",
						Usage: `JSON object of user metadata, e.g. '{"team":"storage"}'`,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					opts := commands.CreateBucketOptions{
						Namespace:        cmd.String("namespace-name"),
						Name:             cmd.String("name"),
						CompartmentID:    cmd.String("compartment-id"),
						StorageTier:      cmd.String("storage-tier"),
						PublicAccessType: cmd.String("public-access-type"),
						KmsKeyID:         cmd.String("kms-key-id"),
						Versioning:       cmd.Bool("versioning"),
						Metadata:         cmd.String("metadata"),
					}
					if err := opts.Validate(); err != nil {
						return err
					}
					return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
						bucketUseCase, err := container.BucketUseCase()
						if err != nil {
							return err
						}
						return commands.RunCreateBucket(ctx, bucketUseCase, container.Logger(), opts, commands.DefaultIO().Writer)
					})
				},
			},
			{
				Name:  "get",
				Usage: "Get a bucket",
				Flags: []cli.Flag{
					namespaceFlag(),
					bucketFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
						bucketUseCase, err := container.BucketUseCase()
						if err != nil {
							return err
						}
						return commands.RunGetBucket(
							ctx,
							bucketUseCase,
							cmd.String("namespace-name"),
							cmd.String("bucket-name"),
							commands.DefaultIO().Writer,
						)
					})
				},
			},
			{
				Name:  "list",
				Usage: "List the buckets of a compartment",
				Flags: []cli.Flag{
					namespaceFlag(),
					compartmentIDFlag(true),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of buckets to return (0 lists all)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
						bucketUseCase, err := container.BucketUseCase()
						if err != nil {
							return err
						}
						return commands.RunListBuckets(
							ctx,
							bucketUseCase,
							cmd.String("namespace-name"),
							cmd.String("compartment-id"),
							int(cmd.Int("limit")),
							commands.DefaultIO().Writer,
						)
					})
				},
			},
			{
				Name:  "delete",
				Usage: "Delete an empty bucket",
				Flags: []cli.Flag{
					namespaceFlag(),
					bucketFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
						bucketUseCase, err := container.BucketUseCase()
						if err != nil {
							return err
						}
						return commands.RunDeleteBucket(
							ctx,
							bucketUseCase,
							container.Logger(),
							cmd.String("namespace-name"),
							cmd.String("bucket-name"),
						)
					})
				},
			},
		},
	}
}
