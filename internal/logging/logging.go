// Package logging configures the process-wide slog logger.
// A terminal UI owns stdout, so records go to a file or nowhere.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu       sync.Mutex
	logFile  *os.File
	levelVar = &slog.LevelVar{}
)

// Setup points the default logger at path. An empty path discards records.
// Parent directories are created as needed.
func Setup(path, level string) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	levelVar.Set(ParseLevel(level))

	var w io.Writer = io.Discard
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			slog.SetDefault(newLogger(io.Discard))
			return err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // user-chosen log path
		if err != nil {
			slog.SetDefault(newLogger(io.Discard))
			return err
		}
		logFile = f
		w = f
	}

	slog.SetDefault(newLogger(w))
	return nil
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar}))
}

// SetLevel changes the level of the default logger.
func SetLevel(level string) {
	levelVar.Set(ParseLevel(level))
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Close flushes and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
