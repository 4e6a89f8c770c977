package usecase

import (
	"context"

	"github.com/runoshun/vassist/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct{}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	GlobalConfig    domain.ConfigInfo // Global config file info
	EffectiveConfig string            // Merged config rendered as TOML, secrets masked
	Warnings        []string          // Problems found while loading
}

// ShowConfig displays configuration file information and the effective configuration.
type ShowConfig struct {
	configManager domain.ConfigManager
	configLoader  domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configManager domain.ConfigManager, configLoader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
		configLoader:  configLoader,
	}
}

// Execute retrieves configuration file information.
func (uc *ShowConfig) Execute(_ context.Context, _ ShowConfigInput) (*ShowConfigOutput, error) {
	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, err
	}

	return &ShowConfigOutput{
		GlobalConfig:    uc.configManager.GetGlobalConfigInfo(),
		EffectiveConfig: domain.RenderConfigTemplate(cfg.Masked()),
		Warnings:        cfg.Warnings,
	}, nil
}
