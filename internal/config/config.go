package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	// Ledger data file (delimited text)
	DataFile string

	// Logging
	LogLevel string

	// Category choices offered to front ends; empty means the built-in list
	Categories []string
}

func Load() *Config {
	cfg := &Config{
		DataFile:   getEnv("REGISTRO_DATA_FILE", "./data/registro.csv"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		Categories: getEnvList("REGISTRO_CATEGORIES", nil),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate data file path
	if c.DataFile == "" {
		errors = append(errors, "data file path cannot be empty")
	} else {
		dir := filepath.Dir(c.DataFile)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create data directory '%s': %v", dir, err))
				}
			}
		}
	}

	// Validate log level
	if _, err := parseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	// Validate category override entries
	for _, cat := range c.Categories {
		if strings.TrimSpace(cat) == "" {
			errors = append(errors, "category names cannot be blank")
			break
		}
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// SlogLevel returns the configured log level; invalid values fall back to
// Info (Validate reports them first).
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
