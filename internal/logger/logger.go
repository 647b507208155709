// Package logger builds the application's slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds the logger configuration.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// DefaultLogFile is where logs go when Output is "file".
const DefaultLogFile = "quality-warden.log"

// NewLogger initializes a slog logger from cfg. When output is nil the
// destination named by cfg.Output is opened.
func NewLogger(cfg Config, output io.Writer) *slog.Logger {
	if output == nil {
		output = OpenOutput(cfg.Output)
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}
	return slog.New(handler).With("service", "quality-warden")
}

// OpenOutput resolves an output name to a writer, falling back to stdout.
func OpenOutput(name string) io.Writer {
	switch name {
	case "stderr":
		return os.Stderr
	case "file":
		f, err := os.OpenFile(DefaultLogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			slog.Error("failed to open log file, using stdout", "error", err)
			return os.Stdout
		}
		return f
	default:
		return os.Stdout
	}
}

// ParseLevel maps a level name onto a slog.Level. Unknown names mean info.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
