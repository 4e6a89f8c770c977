package usecase

import (
	"context"

	"github.com/runoshun/vassist/internal/domain"
)

// InitConfigInput contains the input for the InitConfig use case.
type InitConfigInput struct {
	Config *domain.Config // Config supplying the rendered values
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig writes the global configuration file.
type InitConfig struct {
	configManager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager) *InitConfig {
	return &InitConfig{
		configManager: configManager,
	}
}

// Execute creates the global config file. Existing files are never overwritten.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	if in.Config == nil {
		return nil, domain.ErrConfigNil
	}

	path := uc.configManager.GetGlobalConfigInfo().Path
	if err := uc.configManager.InitGlobalConfig(in.Config); err != nil {
		return nil, err
	}

	return &InitConfigOutput{Path: path}, nil
}
