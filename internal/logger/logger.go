// Package logger provides structured logging with per-component child loggers.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu   sync.RWMutex
	base = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
)

// New creates a logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetDefault replaces the base logger that all component loggers derive from.
func SetDefault(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	base = l
}

// Default returns the current base logger.
func Default() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// WithField returns a child of the base logger with one attribute attached.
func WithField(key string, value any) *slog.Logger {
	return Default().With(key, value)
}
