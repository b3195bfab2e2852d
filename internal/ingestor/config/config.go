package config

import (
	"time"

	"github.com/MEMAtest/horizon-scanner-backend/pkg/config"
)

// Ingestor holds ingestion-specific configuration.
type Ingestor struct {
	PollSchedule       string `mapstructure:"poll_schedule"`
	MaxConcurrentFeeds int    `mapstructure:"max_concurrent_feeds"`
	MaxItemsPerFeed    int    `mapstructure:"max_items_per_feed"`
	MaxItemAgeInDays   int    `mapstructure:"max_item_age_in_days"`
	FetchDelaySeconds  int    `mapstructure:"fetch_delay_seconds"`

	RedisStreamUpdateIngestedTimeout         time.Duration `mapstructure:"redis_stream_update_ingested_timeout"`
	RedisStreamUpdateIngestedRetryInterval   time.Duration `mapstructure:"redis_stream_update_ingested_retry_interval"`
	RedisStreamUpdateIngestedMaxIdleDuration time.Duration `mapstructure:"redis_stream_update_ingested_max_idle_duration"`

	AlertSweepInterval time.Duration `mapstructure:"alert_sweep_interval"`
	AlertSweepTimeout  time.Duration `mapstructure:"alert_sweep_timeout"`
}

// Config holds the full configuration for the ingestion service.
type Config struct {
	App      config.App      `mapstructure:"app"`
	Logger   config.Logger   `mapstructure:"logger"`
	Database config.Database `mapstructure:"database"`
	Redis    config.Redis    `mapstructure:"redis"`
	Ingestor Ingestor        `mapstructure:"ingestor"`
	Gemini   config.Gemini   `mapstructure:"gemini"`
	Telegram config.Telegram `mapstructure:"telegram"`
}

// Load loads the ingestion configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
