package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jmarlow/course-store/internal/app"
	"github.com/jmarlow/course-store/internal/config"
	"github.com/jmarlow/course-store/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting course store api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"database", cfg.Mongo.Database,
		"log_level", cfg.LogLevel,
	)

	ctx := context.Background()

	// Connect, seed and build the server; a storage connect failure after
	// all retries is fatal and no listener is ever bound
	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error("startup failed", "error", err)
		os.Exit(1)
	}
	runErr := a.Run()

	if err := a.Close(context.Background()); err != nil {
		log.Error("failed to close storage connection", "error", err)
	}

	if runErr != nil {
		log.Error("server error", "error", runErr)
		os.Exit(1)
	}
}
