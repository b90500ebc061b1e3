package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/lougail/github-users-api/cfg"
	"github.com/lougail/github-users-api/internal/filter"
	"github.com/lougail/github-users-api/internal/snapshot"
	"github.com/lougail/github-users-api/pkg/log"
)

func main() {
	ctx := context.Background()
	logger, _ := log.NewCslLogger()

	_ = godotenv.Load()

	loader, _ := cfg.NewViperLoader()
	config, err := loader.Load()
	if err != nil {
		logger.Error(ctx, "Failed to load configuration: %v", err)
		os.Exit(1)
	}

	input, err := snapshot.NewStore(config.Snapshot.RawPath)
	if err != nil {
		logger.Error(ctx, "Invalid input snapshot path: %v", err)
		os.Exit(1)
	}
	output, err := snapshot.NewStore(config.Snapshot.FilteredPath)
	if err != nil {
		logger.Error(ctx, "Invalid output snapshot path: %v", err)
		os.Exit(1)
	}

	pipeline, _ := filter.NewPipeline(logger, config, input, output)
	if _, err := pipeline.Process(ctx); err != nil {
		logger.Error(ctx, "Filter pipeline failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Filtering finished successfully")
}
