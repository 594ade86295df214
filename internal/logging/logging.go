// Package logging configures the process-wide slog logger.
//
// Logs always go to stderr: stdout carries the MCP protocol.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// EnvLevel is the environment variable read for the default log level.
const EnvLevel = "COLORSPIN_LOG_LEVEL"

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to slog
// levels. The empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Config selects where and how much to log.
type Config struct {
	Output io.Writer
	Level  string // as accepted by ParseLevel
	Debug  bool   // forces debug level and adds source locations
}

// New builds a text logger. An unknown level falls back to info and is
// reported through the returned logger itself.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = io.Discard
	}

	level, err := ParseLevel(cfg.Level)
	if cfg.Debug {
		level = slog.LevelDebug
	}

	l := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Debug,
	}))
	if err != nil {
		l.Warn("ignoring log level", "env", EnvLevel, "error", err)
	}
	return l
}
