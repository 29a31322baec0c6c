package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/oscli/internal/app"
	"github.com/allisson/oscli/internal/config"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getSystemCommands(version)...)
	cmds = append(cmds, getObjectStorageCommand())
	return cmds
}

// newContainer builds the container for a command run. Tests swap it to
// inject a fake client.
var newContainer = func(cfg *config.Config) *app.Container {
	return app.NewContainer(cfg)
}

// withContainer loads the configuration, builds the container and runs fn
// bounded by REQUEST_TIMEOUT_SECONDS. The container is shut down afterwards,
// which flushes the metrics textfile when one is configured.
func withContainer(ctx context.Context, fn func(ctx context.Context, container *app.Container) error) error {
	cfg := config.Load()
	container := newContainer(cfg)
	defer func() { _ = container.Shutdown(context.WithoutCancel(ctx)) }()

	if cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.RequestTimeout)
		defer cancel()
	}
	return fn(ctx, container)
}
