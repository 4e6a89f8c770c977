// Package taskfile provides a plain-text implementation of domain.TaskFile.
// The file holds one task per line, newline-terminated, with no header and no escaping.
package taskfile

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/runoshun/vassist/internal/domain"
)

// Ensure Store implements domain.TaskFile.
var _ domain.TaskFile = (*Store)(nil)

// Store reads and writes the task list file.
// The file is accessed without locking; a single process is assumed to own it.
type Store struct {
	path string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first save.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the lines of the task file in order.
func (s *Store) Load() ([]string, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read task file: %w", err)
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan task file: %w", err)
	}
	return lines, nil
}

// Save overwrites the task file with one line per entry.
func (s *Store) Save(lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create task file directory: %w", err)
		}
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
