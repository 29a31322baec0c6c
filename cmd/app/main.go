// Package main provides the entry point for the oscli command line.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// Build information (injected via ldflags during build)
var (
	version = "dev"
)

func newRootCommand(version string) *cli.Command {
	return &cli.Command{
		Name:     "oscli",
		Usage:    "Object Storage command line",
		Version:  version,
		Commands: getCommands(version),
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(version).Run(ctx, os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}
