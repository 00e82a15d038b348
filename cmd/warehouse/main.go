// Package main implements the entry point for the warehouse manager demo,
// which drives a scripted sequence of CRUD operations over a keyed product
// repository.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/phrazzld/depot/internal/config"
	"github.com/phrazzld/depot/internal/platform/logger"
	"github.com/phrazzld/depot/internal/service"
)

func main() {
	appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	svc := service.NewWarehouseService(os.Stdout, appLogger)
	if err := svc.Run(context.Background()); err != nil {
		slog.Error("warehouse demo failed", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(logger.LoggerConfig{Level: cfg.Logging.Level})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Debug("configuration loaded", "log_level", cfg.Logging.Level)

	return appLogger, nil
}
