// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger configures structured logging for report-insight.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/pdiddy/report-insight/pkg/types"
)

// Logger wraps slog.Logger.
type Logger struct {
	*slog.Logger
}

// Config holds the resolved level and format.
type Config struct {
	Level  slog.Level
	Format string
}

// ParseConfig turns the textual log settings into a Config. An empty level
// means info and an empty format means text.
func ParseConfig(cfg types.LogConfig) (Config, error) {
	out := Config{Level: slog.LevelInfo, Format: "text"}

	switch strings.ToLower(cfg.Level) {
	case "", "info":
	case "debug":
		out.Level = slog.LevelDebug
	case "warn", "warning":
		out.Level = slog.LevelWarn
	case "error":
		out.Level = slog.LevelError
	default:
		return Config{}, fmt.Errorf("unknown log level %q", cfg.Level)
	}

	switch strings.ToLower(cfg.Format) {
	case "", "text":
	case "json":
		out.Format = "json"
	default:
		return Config{}, fmt.Errorf("unknown log format %q", cfg.Format)
	}
	return out, nil
}

// New creates a logger writing to w.
func New(w io.Writer, cfg Config) *Logger {
	if cfg.Format == "json" {
		opts := &slog.HandlerOptions{
			Level: cfg.Level,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.String(a.Key, a.Value.Time().Format(time.RFC3339))
				}
				return a
			},
		}
		return &Logger{Logger: slog.New(slog.NewJSONHandler(w, opts))}
	}

	return &Logger{Logger: slog.New(tint.NewHandler(w, &tint.Options{
		Level:      cfg.Level,
		TimeFormat: time.Kitchen,
	}))}
}

// Stderr creates a logger writing to os.Stderr.
func Stderr(cfg Config) *Logger {
	return New(os.Stderr, cfg)
}

// Discard returns a logger that drops everything. Used in tests.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithComponent tags every record with a component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{Logger: l.With(slog.String("component", component))}
}
