// Package config loads process configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig holds the optional start-up settings of the server.
// None of them are required; the server runs with all of them unset.
type AppConfig struct {
	// LogLevel sets the minimum log level (debug, info, warn, error). Defaults to info.
	LogLevel string `envconfig:"PUSHOVER_MCP_LOG_LEVEL" default:"info"`

	// LogFile is a path to a rotating JSON log file. Logs go to stderr when empty.
	LogFile string `envconfig:"PUSHOVER_MCP_LOG_FILE"`

	// HTTPTimeout bounds a single provider request. Zero means no client timeout.
	HTTPTimeout time.Duration `envconfig:"PUSHOVER_MCP_HTTP_TIMEOUT" default:"0s"`

	// OTLPEndpoint enables trace export over OTLP/gRPC when set.
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load reads AppConfig from environment variables using envconfig.
func Load() (*AppConfig, error) {
	var c AppConfig
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if c.HTTPTimeout < 0 {
		return nil, fmt.Errorf("loading config: PUSHOVER_MCP_HTTP_TIMEOUT must not be negative, got %s", c.HTTPTimeout)
	}
	return &c, nil
}

// SlogLevel converts the LogLevel string to a slog.Level.
// Unknown values default to slog.LevelInfo.
func (c *AppConfig) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
