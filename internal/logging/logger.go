// Package logging builds the application slog loggers.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects the handler, level and optional rotating file sink.
type Config struct {
	Level      string `mapstructure:"level"       yaml:"level"       validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"format"      yaml:"format"      validate:"oneof=text json"`
	File       string `mapstructure:"file"        yaml:"file"`
	MaxSize    int    `mapstructure:"max_size"    yaml:"max_size"    validate:"gte=0"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups" validate:"gte=0"`
	MaxAge     int    `mapstructure:"max_age"     yaml:"max_age"     validate:"gte=0"`
	Compress   bool   `mapstructure:"compress"    yaml:"compress"`
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// New creates a configured application logger.
// Without a file it writes to Stderr, keeping Stdout for trace output.
// With a file it writes to a lumberjack rotating sink.
func New(cfg Config) (*slog.Logger, error) {
	var w io.Writer = os.Stderr
	if cfg.File != "" {
		w = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
	}

	return NewWriter(w, cfg)
}

// NewWriter is New with an explicit sink; cfg.File is ignored.
func NewWriter(w io.Writer, cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			// Standardize 'error' key to 'err'
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}

	switch cfg.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
