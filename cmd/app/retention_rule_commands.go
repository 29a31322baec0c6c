package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/oscli/cmd/app/commands"
	"github.com/allisson/oscli/internal/app"
)

func retentionRuleIDFlag(required bool) cli.Flag {
	return &cli.StringFlag{
		Name:     "retention-rule-id",
		Required: required,
		Usage:    "Retention rule id",
	}
}

// retentionRuleFlags are the duration flags shared by create and update. The
// amount is a string so the domain can report a non-integer value itself.
func retentionRuleFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "display-name",
			Usage: "User-specified name of the rule",
		},
		&cli.StringFlag{
			Name:  "time-amount",
			Usage: "Retention duration amount, a positive integer",
		},
		&cli.StringFlag{
			Name:  "time-unit",
			Usage: "Retention duration unit: DAYS or YEARS",
		},
		&cli.StringFlag{
			Name:  "time-rule-locked",
			Usage: "Date and time after which the rule can no longer be changed (RFC3339 or YYYY-MM-DD)",
		},
	}
}

func retentionRuleOptions(cmd *cli.Command) commands.RetentionRuleOptions {
	return commands.RetentionRuleOptions{
		Namespace:       cmd.String("namespace-name"),
		Bucket:          cmd.String("bucket-name"),
		RetentionRuleID: cmd.String("retention-rule-id"),
		DisplayName:     cmd.String("display-name"),
		TimeAmount:      cmd.String("time-amount"),
		TimeUnit:        cmd.String("time-unit"),
		TimeRuleLocked:  cmd.String("time-rule-locked"),
	}
}

func getRetentionRuleCommand() *cli.Command {
	return &cli.Command{
		Name:  "retention-rule",
		Usage: "Manage bucket retention rules",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a retention rule",
				Flags: append([]cli.Flag{namespaceFlag(), bucketFlag()}, retentionRuleFlags()...),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					opts := retentionRuleOptions(cmd)
					if err := opts.ValidateCreate(); err != nil {
						return err
					}
					return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
						retentionRuleUseCase, err := container.RetentionRuleUseCase()
						if err != nil {
							return err
						}
						return commands.RunCreateRetentionRule(
							ctx,
							retentionRuleUseCase,
							container.Logger(),
							opts,
							commands.DefaultIO().Writer,
						)
					})
				},
			},
			{
				Name:  "update",
				Usage: "Update a retention rule",
				Flags: append(
					[]cli.Flag{namespaceFlag(), bucketFlag(), retentionRuleIDFlag(true)},
					retentionRuleFlags()...,
				),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					opts := retentionRuleOptions(cmd)
					if err := opts.ValidateUpdate(); err != nil {
						return err
					}
					return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
						retentionRuleUseCase, err := container.RetentionRuleUseCase()
						if err != nil {
							return err
						}
						return commands.RunUpdateRetentionRule(
							ctx,
							retentionRuleUseCase,
							container.Logger(),
							opts,
							commands.DefaultIO().Writer,
						)
					})
				},
			},
			{
				Name:  "get",
				Usage: "Get a retention rule",
				Flags: []cli.Flag{namespaceFlag(), bucketFlag(), retentionRuleIDFlag(true)},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
						retentionRuleUseCase, err := container.RetentionRuleUseCase()
						if err != nil {
							return err
						}
						return commands.RunGetRetentionRule(
							ctx,
							retentionRuleUseCase,
							cmd.String("namespace-name"),
							cmd.String("bucket-name"),
							cmd.String("retention-rule-id"),
							commands.DefaultIO().Writer,
						)
					})
				},
			},
			{
				Name:  "list",
				Usage: "List the retention rules of a bucket",
				Flags: []cli.Flag{namespaceFlag(), bucketFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
						retentionRuleUseCase, err := container.RetentionRuleUseCase()
						if err != nil {
							return err
						}
						return commands.RunListRetentionRules(
							ctx,
							retentionRuleUseCase,
							cmd.String("namespace-name"),
							cmd.String("bucket-name"),
							commands.DefaultIO().Writer,
						)
					})
				},
			},
			{
				Name:  "delete",
				Usage: "Delete a retention rule",
				Flags: []cli.Flag{namespaceFlag(), bucketFlag(), retentionRuleIDFlag(true)},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withContainer(ctx, func(ctx context.Context, container *app.Container) error {
						retentionRuleUseCase, err := container.RetentionRuleUseCase()
						if err != nil {
							return err
						}
						return commands.RunDeleteRetentionRule(
							ctx,
							retentionRuleUseCase,
							container.Logger(),
							cmd.String("namespace-name"),
							cmd.String("bucket-name"),
							cmd.String("retention-rule-id"),
						)
					})
				},
			},
		},
	}
}
