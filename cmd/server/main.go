// Package main is the entry point for the restaurant reviews API.
//
// main stays minimal:
// 1. read configuration (.env, optional YAML file, environment)
// 2. build the logger
// 3. build the server (which opens the document store) and start it
//
// All actual logic lives in internal/.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/sakif/restaurant-reviews/internal/config"
	"github.com/sakif/restaurant-reviews/internal/logging"
	"github.com/sakif/restaurant-reviews/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	// The restaurant catalog is static; the key is only reported so a
	// deployment can tell whether it was provisioned.
	logger.Info("configuration loaded",
		slog.String("docStore", cfg.DocStore),
		slog.Bool("yelpAPIKeySet", cfg.YelpAPIKey != ""),
		slog.Any("corsOrigins", cfg.CORSOrigins),
	)

	srv, err := server.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Start() blocks until the server is shut down (Ctrl+C or SIGTERM).
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
