package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lougail/github-users-api/cfg"
	"github.com/lougail/github-users-api/internal/api"
	"github.com/lougail/github-users-api/internal/query"
	"github.com/lougail/github-users-api/internal/snapshot"
	"github.com/lougail/github-users-api/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger, _ := log.NewCslLogger()

	_ = godotenv.Load()

	loader, _ := cfg.NewViperLoader()
	config, err := loader.Load()
	if err != nil {
		logger.Error(ctx, "Failed to load configuration: %v", err)
		os.Exit(1)
	}

	store, err := snapshot.NewStore(config.Snapshot.FilteredPath)
	if err != nil {
		logger.Error(ctx, "Invalid snapshot path: %v", err)
		os.Exit(1)
	}
	querySvc, _ := query.NewService(logger, store)

	server, err := api.NewServer(logger, config, querySvc)
	if err != nil {
		logger.Error(ctx, "Failed to create server: %v", err)
		os.Exit(1)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Stop(shutdownCtx); err != nil {
			logger.Error(shutdownCtx, "Graceful shutdown failed: %v", err)
		}
	}()

	if err := server.Start(); err != nil {
		logger.Error(ctx, "Server error: %v", err)
		os.Exit(1)
	}
}
