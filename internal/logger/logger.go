// Package logger builds the structured slog logger of the server.
// All logs are written in JSON format. Standard output carries the MCP
// protocol, so logs go either to stderr or to a rotating log file.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation settings for file logging.
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// New creates a JSON slog.Logger. When logFile is empty the logger writes to
// stderr; otherwise it writes to logFile, rotating it with lumberjack. The
// returned io.Closer must be closed on shutdown.
func New(logFile string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if logFile == "" {
		return newJSON(os.Stderr, level), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0750); err != nil {
		return nil, nil, fmt.Errorf("creating log directory for %q: %w", logFile, err)
	}

	w := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
	return newJSON(w, level), w, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newJSON(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
