package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/runoshun/vassist/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	globalConfDir string // Path to global config directory (e.g., ~/.config/vassist)
}

// NewManager creates a new Manager.
func NewManager() *Manager {
	home, _ := os.UserHomeDir()
	return &Manager{globalConfDir: defaultGlobalConfigDir(home)}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(globalConfDir string) *Manager {
	return &Manager{globalConfDir: globalConfDir}
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	path := filepath.Join(m.globalConfDir, domain.ConfigFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{Path: path}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitGlobalConfig creates a global config file rendered from cfg.
func (m *Manager) InitGlobalConfig(cfg *domain.Config) error {
	if m.globalConfDir == "" {
		return errors.New("global config directory not available")
	}
	path := filepath.Join(m.globalConfDir, domain.ConfigFileName)

	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return domain.ErrConfigExists
	}

	if err := os.MkdirAll(m.globalConfDir, 0o700); err != nil {
		return err
	}
	// The file may hold API keys
	return os.WriteFile(path, []byte(domain.RenderConfigTemplate(cfg)), 0o600)
}
