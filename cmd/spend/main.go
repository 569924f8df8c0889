// Package main is the entry point for the spend CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"todo/internal/cli"
	"todo/internal/config"
	"todo/internal/service"
	"todo/internal/store/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	backends := cli.Backends{
		Expenses: func(ctx context.Context, cfg *config.Config) (service.ExpenseStore, error) {
			return sqlite.Open(ctx, cfg.SpendDB)
		},
	}
	dispatcher := cli.NewDispatcher(cli.Spend, backends)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
