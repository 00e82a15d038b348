// Package main implements the entry point for the school gradebook demo,
// which parses a comma-separated score file and writes a grade report with a
// distribution summary.
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
	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	svc := service.NewGradebookService(cfg.Paths.GradesInput, cfg.Paths.GradesReport, os.Stdout, appLogger)
	if err := svc.Run(context.Background()); err != nil {
		slog.Error("gradebook demo failed", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up structured logging.
// Returns the loaded config, the application logger, and any initialization error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(logger.LoggerConfig{Level: cfg.Logging.Level})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Debug("configuration loaded",
		"log_level", cfg.Logging.Level,
		"grades_input", cfg.Paths.GradesInput,
		"grades_report", cfg.Paths.GradesReport)

	return cfg, appLogger, nil
}
