package config

import (
	"github.com/MEMAtest/horizon-scanner-backend/pkg/config"
)

// Intelligence holds tuning for the personalized intelligence endpoint.
type Intelligence struct {
	MaxUpdateBatch int `mapstructure:"max_update_batch"`
	UpdateAgeDays  int `mapstructure:"update_age_days"`
}

// Config holds the full configuration for the API service.
type Config struct {
	App          config.App      `mapstructure:"app"`
	Logger       config.Logger   `mapstructure:"logger"`
	Database     config.Database `mapstructure:"database"`
	API          config.API      `mapstructure:"api"`
	Intelligence Intelligence    `mapstructure:"intelligence"`
}

// Load loads the API service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	if cfg.Intelligence.MaxUpdateBatch <= 0 {
		cfg.Intelligence.MaxUpdateBatch = 500
	}
	if cfg.Intelligence.UpdateAgeDays <= 0 {
		cfg.Intelligence.UpdateAgeDays = 90
	}
	return &cfg, nil
}
