package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/oscli/cmd/app/commands"
	"github.com/allisson/oscli/internal/app"
	"github.com/allisson/oscli/internal/progress"
)

func objectNameFlag(required bool) cli.Flag {
	return &cli.StringFlag{
		Name:     "name",
		Required: required,
		Usage:    "Object name",
	}
}

func versionIDFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "version-id",
		Usage: "Object version",
	}
}

func getObjectCommand() *cli.Command {
	return &cli.Command{
		Name:  "object",
		Usage: "Manage objects",
		Commands: []*cli.Command{
			{
				Name:  "put",
				Usage: "Upload a file, or stdin with --file -",
				Flags: []cli.Flag{
					namespaceFlag(),
					bucketFlag(),
					objectNameFlag(false),
					&cli.StringFlag{
						Name:     "file",
						Required: true,
						Usage:    "File to upload, '-' for stdin",
					},
					&cli.StringFlag{
						Name:  "content-type",
						Usage: "Content type of the object",
					},
					&cli.StringFlag{
						Name:  "content-disposition",
						Usage: "Content-Disposition header returned when the object is downloaded",
					},
					&cli.StringFlag{
						Name:  "cache-control",
						Usage: "Cache-Control header returned when the object is downloaded",
					},
					&cli.StringFlag{
						Name:  "metadata",
						Usage: `JSON object of user metadata, e.g. '{"owner":"ops"}'`,
					},
					&cli.BoolFlag{
						Name:  "verify-checksum",
						Usage: "Verify the MD5 returned by the service against the local content",
					},
					encryptionKeyFileFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					opts := commands.PutObjectOptions{
						Namespace:          cmd.String("namespace-name"),
						Bucket:             cmd.String("bucket-name"),
						Name:               cmd.String("name"),
						File:               cmd.String("file"),
						ContentType:        cmd.String("content-type"),
						ContentDisposition: cmd.String("content-disposition"),
						CacheControl:       cmd.String("cache-control"),
						Metadata:           cmd.String("metadata"),
						EncryptionKeyFile:  cmd.String("encryption-key-file"),
						VerifyChecksum:     cmd.Bool("verify-checksum"),
					}
					if err := opts.Validate(); err != nil {
						return err
					}
					return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
						objectUseCase, err := container.ObjectUseCase()
						if err != nil {
							return err
						}
						return commands.RunPutObject(ctx, objectUseCase, container.Logger(), opts, commands.DefaultIO())
					})
				},
			},
			{
				Name:  "get",
				Usage: "Download an object to a file, or stdout with --file -",
				Flags: []cli.Flag{
					namespaceFlag(),
					bucketFlag(),
					objectNameFlag(true),
					&cli.StringFlag{
						Name:     "file",
						Required: true,
						Usage:    "Destination file, '-' for stdout",
					},
					versionIDFlag(),
					encryptionKeyFileFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
						objectUseCase, err := container.ObjectUseCase()
						if err != nil {
							return err
						}
						return commands.RunGetObject(ctx, objectUseCase, container.Logger(), commands.GetObjectOptions{
							Namespace:         cmd.String("namespace-name"),
							Bucket:            cmd.String("bucket-name"),
							Name:              cmd.String("name"),
							File:              cmd.String("file"),
							VersionID:         cmd.String("version-id"),
							EncryptionKeyFile: cmd.String("encryption-key-file"),
						}, commands.DefaultIO())
					})
				},
			},
			{
				Name:  "head",
				Usage: "Print the metadata of an object",
				Flags: []cli.Flag{
					namespaceFlag(),
					bucketFlag(),
					objectNameFlag(true),
					versionIDFlag(),
					encryptionKeyFileFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
						objectUseCase, err := container.ObjectUseCase()
						if err != nil {
							return err
						}
						return commands.RunHeadObject(
							ctx,
							objectUseCase,
							cmd.String("namespace-name"),
							cmd.String("bucket-name"),
							cmd.String("name"),
							cmd.String("version-id"),
							cmd.String("encryption-key-file"),
							commands.DefaultIO().Writer,
						)
					})
				},
			},
			{
				Name:  "copy",
				Usage: "Copy an object to another bucket or region",
				Flags: []cli.Flag{
					namespaceFlag(),
					bucketFlag(),
					&cli.StringFlag{
						Name:     "source-object-name",
						Required: true,
						Usage:    "Name of the object to copy",
					},
					&cli.StringFlag{
						Name:  "source-version-id",
						Usage: "Version of the source object",
					},
					&cli.StringFlag{
						Name:  "destination-region",
						Usage: "Destination region (defaults to OCI_REGION)",
					},
					&cli.StringFlag{
						Name:  "destination-namespace",
						Usage: "Destination namespace (defaults to the source namespace)",
					},
					&cli.StringFlag{
						Name:     "destination-bucket",
						Required: true,
						Usage:    "Destination bucket",
					},
					&cli.StringFlag{
						Name:  "destination-object-name",
						Usage: "Destination object name (defaults to the source name)",
					},
					encryptionKeyFileFlag(),
					sourceEncryptionKeyFileFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
						region := cmd.String("destination-region")
						if region == "" {
							region = container.Config().OCIRegion
						}
						opts := commands.CopyObjectOptions{
							Namespace:               cmd.String("namespace-name"),
							Bucket:                  cmd.String("bucket-name"),
							SourceObjectName:        cmd.String("source-object-name"),
							SourceVersionID:         cmd.String("source-version-id"),
							DestinationRegion:       region,
							DestinationNamespace:    cmd.String("destination-namespace"),
							DestinationBucket:       cmd.String("destination-bucket"),
							DestinationObjectName:   cmd.String("destination-object-name"),
							EncryptionKeyFile:       cmd.String("encryption-key-file"),
							SourceEncryptionKeyFile: cmd.String("source-encryption-key-file"),
						}
						// The region default comes from the config, so validation
						// waits for it but still precedes the client.
						if err := opts.Validate(); err != nil {
							return err
						}
						objectUseCase, err := container.ObjectUseCase()
						if err != nil {
							return err
						}
						return commands.RunCopyObject(ctx, objectUseCase, container.Logger(), opts, commands.DefaultIO().Writer)
					})
				},
			},
			{
				Name:  "reencrypt",
				Usage: "Re-encrypt the data key of an object",
				Flags: []cli.Flag{
					namespaceFlag(),
					bucketFlag(),
					objectNameFlag(true),
					versionIDFlag(),
					&cli.StringFlag{
						Name:  "kms-key-id",
						Usage: "OCID of the master encryption key to use",
					},
					encryptionKeyFileFlag(),
					sourceEncryptionKeyFileFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
						objectUseCase, err := container.ObjectUseCase()
						if err != nil {
							return err
						}
						return commands.RunReencryptObject(ctx, objectUseCase, container.Logger(), commands.ReencryptObjectOptions{
							Namespace:               cmd.String("namespace-name"),
							Bucket:                  cmd.String("bucket-name"),
							Name:                    cmd.String("name"),
							VersionID:               cmd.String("version-id"),
							KmsKeyID:                cmd.String("kms-key-id"),
							EncryptionKeyFile:       cmd.String("encryption-key-file"),
							SourceEncryptionKeyFile: cmd.String("source-encryption-key-file"),
						})
					})
				},
			},
			{
				Name:  "delete",
				Usage: "Delete an object or one of its versions",
				Flags: []cli.Flag{
					namespaceFlag(),
					bucketFlag(),
					objectNameFlag(true),
					versionIDFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
						objectUseCase, err := container.ObjectUseCase()
						if err != nil {
							return err
						}
						return commands.RunDeleteObject(
							ctx,
							objectUseCase,
							container.Logger(),
							cmd.String("namespace-name"),
							cmd.String("bucket-name"),
							cmd.String("name"),
							cmd.String("version-id"),
						)
					})
				},
			},
			{
				Name:  "list",
				Usage: "List the objects of a bucket",
				Flags: []cli.Flag{
					namespaceFlag(),
					bucketFlag(),
					&cli.StringFlag{
						Name:  "prefix",
						Usage: "Only list objects whose name starts with prefix",
					},
					&cli.StringFlag{
						Name:  "start",
						Usage: "Start listing at this object name",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of objects to return (0 lists all)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
						objectUseCase, err := container.ObjectUseCase()
						if err != nil {
							return err
						}
						return commands.RunListObjects(
							ctx,
							objectUseCase,
							cmd.String("namespace-name"),
							cmd.String("bucket-name"),
							cmd.String("prefix"),
							cmd.String("start"),
							int(cmd.Int("limit")),
							commands.DefaultIO().Writer,
						)
					})
				},
			},
			bulkCommand("bulk-upload", "Upload every file of a directory", commands.BulkUpload, "src-dir"),
			bulkCommand("bulk-download", "Download every object of a bucket", commands.BulkDownload, "download-dir"),
			bulkCommand("sync", "Upload the files of a directory that differ from the bucket", commands.BulkSync, "src-dir"),
		},
	}
}

func bulkCommand(name, usage string, mode commands.BulkMode, dirFlag string) *cli.Command {
	flags := []cli.Flag{
		namespaceFlag(),
		bucketFlag(),
		&cli.StringFlag{
			Name:     dirFlag,
			Required: true,
			Usage:    "Local directory",
		},
		&cli.StringFlag{
			Name:  "prefix",
			Usage: "Object name prefix",
		},
		&cli.BoolFlag{
			Name:  "overwrite",
			Usage: "Replace objects or files that already exist",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Print what would be transferred without transferring",
		},
		encryptionKeyFileFlag(),
		formatFlag(),
	}
	if mode != commands.BulkDownload {
		flags = append(flags, &cli.BoolFlag{
			Name:  "verify-checksum",
			Usage: "Verify the MD5 returned by the service against the local content",
		})
	}

	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := commands.BulkOptions{
				Mode:              mode,
				Namespace:         cmd.String("namespace-name"),
				Bucket:            cmd.String("bucket-name"),
				Dir:               cmd.String(dirFlag),
				Prefix:            cmd.String("prefix"),
				EncryptionKeyFile: cmd.String("encryption-key-file"),
				VerifyChecksum:    cmd.Bool("verify-checksum"),
				Overwrite:         cmd.Bool("overwrite"),
				DryRun:            cmd.Bool("dry-run"),
				Format:            cmd.String("format"),
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
				bulkUseCase, err := container.BulkUseCase()
				if err != nil {
					return err
				}
				return commands.RunBulk(
					ctx,
					bulkUseCase,
					container.Logger(),
					opts,
					commands.DefaultIO().Writer,
					os.Stderr,
					progress.TerminalWidth(os.Stderr.Fd()),
				)
			})
		},
	}
}
