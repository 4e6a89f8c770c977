// Package logging provides file-based logging for vassist.
// Logs go to a single file ($XDG_STATE_HOME/vassist/logs/vassist.log)
// through a log/slog text handler, keeping the console free for the conversation.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/runoshun/vassist/internal/domain"
)

// Logger owns the log file and the slog.Logger writing to it.
// Fields are ordered to minimize memory padding.
type Logger struct {
	file     *os.File
	slog     *slog.Logger
	stateDir string
	mu       sync.Mutex
	level    slog.Level
}

// New creates a new Logger that writes under stateDir.
// If stateDir is empty, logging is disabled (Slog returns a discarding logger).
// The log file is opened on the first record.
func New(stateDir string, level slog.Level) *Logger {
	l := &Logger{stateDir: stateDir, level: level}
	if stateDir == "" {
		l.slog = slog.New(slog.DiscardHandler)
		return l
	}
	l.slog = slog.New(slog.NewTextHandler(l, &slog.HandlerOptions{Level: level}))
	return l
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Slog returns the structured logger.
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

// Path returns the log file path, or "" when logging is disabled.
func (l *Logger) Path() string {
	if l.stateDir == "" {
		return ""
	}
	return domain.LogPath(l.stateDir)
}

// Write appends p to the log file. It implements io.Writer for the slog handler.
func (l *Logger) Write(p []byte) (int, error) {
	f, err := l.ensureFile()
	if err != nil {
		return 0, err
	}
	return f.Write(p)
}

// ensureFile opens or returns the log file.
func (l *Logger) ensureFile() (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file, nil
	}

	path := l.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	// G302: Log files are append-only and need read access by the owner's group
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	return f, nil
}

// Close closes the log file if it was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
