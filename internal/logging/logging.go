// Package logging configures the process-wide slog logger.
//
// The MCP protocol owns stdout, so the server logs to stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Environment variables read by FromEnv.
const (
	EnvLevel  = "IMAGE_DRAW_MCP_LOG_LEVEL"
	EnvFormat = "IMAGE_DRAW_MCP_LOG_FORMAT"
)

// Config selects the slog handler and level.
type Config struct {
	// Handler is "text" (default) or "json".
	Handler string

	// Level is "debug", "info", "warn" or "error". Empty means "warn".
	Level string
}

// FromEnv builds a Config from the process environment.
func FromEnv() Config {
	return Config{
		Handler: os.Getenv(EnvFormat),
		Level:   os.Getenv(EnvLevel),
	}
}

// Setup installs a default slog logger writing to w.
func Setup(cfg Config, w io.Writer) error {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return err
	}
	options := slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch cfg.Handler {
	case "text", "":
		handler = slog.NewTextHandler(w, &options)
	case "json":
		handler = slog.NewJSONHandler(w, &options)
	default:
		return fmt.Errorf("unsupported handler: '%s'", cfg.Handler)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unsupported log level: '%s'", s)
	}
}
