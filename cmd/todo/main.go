// Package main is the entry point for the todo CLI.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"todo/internal/backend/googletasks"
	"todo/internal/cli"
	"todo/internal/config"
	"todo/internal/service"
	"todo/internal/store/jsonfile"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	backends := cli.Backends{
		Tasks: func(cfg *config.Config, log *slog.Logger) (service.TaskStore, error) {
			return jsonfile.Open(cfg.TaskFile, jsonfile.WithLogger(log))
		},
		Remote: func(ctx context.Context, cfg *config.Config) (service.Remote, error) {
			return googletasks.New(ctx, cfg)
		},
	}
	dispatcher := cli.NewDispatcher(cli.Todo, backends)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
