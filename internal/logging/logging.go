package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
)

// New returns a text logger writing to w at level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
}

// Init opens path in append mode and installs a debug-level text logger as
// the slog default. An empty path selects DefaultPath. The returned closer
// releases the file.
//
// A terminal UI owns stdout and stderr, so logs always go to a file.
func Init(path string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, nil, err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := New(file, slog.LevelDebug)
	slog.SetDefault(logger)

	// Route the standard log package to the same file.
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return logger, file, nil
}

// DefaultPath returns $XDG_STATE_HOME/parkedfield/parkedfield.log, falling
// back to ~/.local/state.
func DefaultPath() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, "parkedfield", "parkedfield.log"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "state", "parkedfield", "parkedfield.log"), nil
}
