// Package logging provides structured logging for Zenith on top of slog.
// Records go to stderr; stdout belongs to command output.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu     sync.RWMutex
	logger = newLogger(DefaultConfig())

	// Debug is true while the logger runs at debug level.
	Debug bool
)

// Config holds logger configuration.
type Config struct {
	Level     slog.Level
	JSON      bool
	Output    io.Writer // nil means stderr
	AddSource bool
}

// DefaultConfig logs warnings and errors as text.
func DefaultConfig() Config {
	return Config{Level: slog.LevelWarn}
}

// DebugConfig logs everything as JSON with source locations.
func DebugConfig() Config {
	return Config{Level: slog.LevelDebug, JSON: true, AddSource: true}
}

func newLogger(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level:       cfg.Level,
		AddSource:   cfg.AddSource,
		ReplaceAttr: maskAttr,
	}
	if cfg.JSON {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(slog.NewTextHandler(out, opts))
}

// Init replaces the package logger.
func Init(cfg Config) {
	l := newLogger(cfg)
	mu.Lock()
	logger = l
	Debug = cfg.Level <= slog.LevelDebug
	mu.Unlock()
}

// InitDebug switches to DebugConfig.
func InitDebug() {
	Init(DebugConfig())
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Info logs at INFO level.
func Info(msg string, args ...any) { Logger().Info(msg, args...) }

// DebugLog logs at DEBUG level.
func DebugLog(msg string, args ...any) { Logger().Debug(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { Logger().Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { Logger().Error(msg, args...) }

// Structured logging keys.
const (
	KeyCallID   = "call_id"
	KeyDuration = "duration_ms"
	KeyError    = "error"
	KeyDomain   = "domain"
	KeySlot     = "slot"
	KeyModel    = "model"
	KeyCount    = "count"
	KeyPath     = "path"
)
