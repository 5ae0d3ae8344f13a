package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Verbosity levels, one per -v flag.
const (
	LevelQuiet = iota // warnings and errors only
	LevelInfo         // -v: config loading, resolved offsets
	LevelDebug        // -vv: parse failures, prompt decisions
	LevelTrace        // -vvv: per-expression details
)

const slogLevelTrace = slog.Level(-8)

var (
	verbosity int
	logger    *slog.Logger
)

// Initialize sets up the global logger with the specified verbosity level.
func Initialize(level int, w io.Writer) {
	verbosity = level
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slogLevel(level),
	}))
}

func slogLevel(level int) slog.Level {
	switch {
	case level >= LevelTrace:
		return slogLevelTrace
	case level >= LevelDebug:
		return slog.LevelDebug
	case level >= LevelInfo:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// Info logs at info level (-v)
func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

// Debug logs at debug level (-vv)
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// Trace logs at trace level (-vvv)
func Trace(msg string, args ...any) {
	logger.Log(context.Background(), slogLevelTrace, msg, args...)
}

// Warn logs at warn level (always visible)
func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

// Error logs at error level (always visible)
func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

// IsDebug returns true if debug-level logging is enabled
func IsDebug() bool {
	return verbosity >= LevelDebug
}

// Verbosity returns the current verbosity level
func Verbosity() int {
	return verbosity
}

func init() {
	Initialize(LevelQuiet, os.Stderr)
}
