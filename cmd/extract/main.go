package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/lougail/github-users-api/cfg"
	"github.com/lougail/github-users-api/internal/extractor"
	githubapi "github.com/lougail/github-users-api/internal/github_api"
	"github.com/lougail/github-users-api/internal/snapshot"
	"github.com/lougail/github-users-api/pkg/log"
)

func main() {
	ctx := context.Background()
	logger, _ := log.NewCslLogger()

	// .env is optional, the environment itself may carry the overrides
	_ = godotenv.Load()

	loader, _ := cfg.NewViperLoader()
	config, err := loader.Load()
	if err != nil {
		logger.Error(ctx, "Failed to load configuration: %v", err)
		os.Exit(1)
	}

	caller, _ := githubapi.NewCaller(logger, config)
	ext, _ := extractor.NewExtractor(logger, config, caller)
	store, err := snapshot.NewStore(config.Snapshot.RawPath)
	if err != nil {
		logger.Error(ctx, "Invalid snapshot path: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Starting GitHub user extraction")
	users, err := ext.Extract(ctx, config.GithubApi.MaxUsers)
	if err != nil {
		// Partial data is still worth keeping
		logger.Warn(ctx, "Extraction ended early, saving %d users collected so far", len(users))
	}

	if err := store.Save(users); err != nil {
		logger.Error(ctx, "Failed to save raw snapshot: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Saved %d users to %s", len(users), config.Snapshot.RawPath)
}
