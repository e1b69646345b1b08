// Package cli provides common CLI initialization utilities for cmd/vendas.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"vendas/internal/config"
	"vendas/internal/ingest"
	applog "vendas/internal/log"
	"vendas/internal/sales/memory"
)

// SetupLogger initializes structured logging on stderr at the given level.
// Returns the configured logger and sets it as the default logger.
func SetupLogger(level string) *applog.Logger {
	cfg := applog.DefaultConfig()
	cfg.Level = applog.ParseLevel(level)
	cfg.Component = applog.ComponentApp
	logger := applog.New(cfg)
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local runs.
// A missing file is not an error.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// InitStore creates the in-memory sale store and fills it from the
// configured CSV file, or from the sample set when no file is configured.
// Rejected rows are logged by the loader and do not fail startup.
func InitStore(ctx context.Context, logger *applog.Logger, cfg *config.Config) (*memory.Store, error) {
	store := memory.New(logger)
	loader := ingest.NewLoader(store, logger)

	var err error
	switch {
	case cfg.SalesInputFile != "":
		_, err = loader.LoadFile(ctx, cfg.SalesInputFile)
	case cfg.LoadSampleData:
		_, err = loader.LoadSample(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("load sales: %w", err)
	}
	return store, nil
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
