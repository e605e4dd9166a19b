// Package cli provides common CLI initialization utilities shared by the
// registro commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"registro/internal/config"
	applog "registro/internal/log"
)

// SetupLogger initializes structured logging at the given level and installs
// it as the process default.
func SetupLogger(level slog.Level) *applog.Logger {
	logger := applog.New(applog.Config{
		Level:     level,
		Component: applog.ComponentApp,
	})
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// Bootstrap runs the shared startup sequence: .env file, configuration,
// logger. Exits the process on configuration failure.
func Bootstrap() (*config.Config, *applog.Logger) {
	LoadEnvFile()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := SetupLogger(cfg.SlogLevel())
	return cfg, logger
}
