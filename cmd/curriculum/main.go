package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/stemsi/curriculum-backend/internal/cli"
	"github.com/stemsi/curriculum-backend/internal/config"
	"github.com/stemsi/curriculum-backend/internal/logger"
	"github.com/stemsi/curriculum-backend/internal/sqlitestore"
)

func main() {
	cfg := config.Load()

	// stdout carries command output; logs go to stderr.
	log := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	store, err := sqlitestore.Open(cfg.SQLitePath, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	root := cli.NewRootCmd(&cli.App{Store: store})
	err = root.ExecuteContext(ctx)

	stop()
	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
