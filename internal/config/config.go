package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/misodaily/newsdesk/internal/pipeline"
)

// Config is the environment-driven service configuration. The
// clustering and dedupe thresholds are deliberately tunable here
// rather than hard-coded so test and staging runs can narrow or widen
// event grouping without a rebuild.
type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	DatabaseURL string `envconfig:"DATABASE_URL" default:""`
	DBMinConns  int32  `envconfig:"NEWSDESK_DB_MIN_CONNS" default:"1"`
	DBMaxConns  int32  `envconfig:"NEWSDESK_DB_MAX_CONNS" default:"8"`

	TimeWindowHours      float64 `envconfig:"NEWSDESK_TIME_WINDOW_HOURS" default:"12"`
	SimilarityThreshold  float64 `envconfig:"NEWSDESK_SIMILARITY_THRESHOLD" default:"0.3"`
	TitleDedupeThreshold float64 `envconfig:"NEWSDESK_TITLE_DEDUPE_THRESHOLD" default:"0.6"`

	QueryWindowHours float64 `envconfig:"NEWSDESK_QUERY_WINDOW_HOURS" default:"24"`

	FeedTimeoutSeconds int    `envconfig:"NEWSDESK_FEED_TIMEOUT_SECONDS" default:"10"`
	FeedCategoryCap    int    `envconfig:"NEWSDESK_FEED_CATEGORY_CAP" default:"5"`
	FeedCatalogPath    string `envconfig:"NEWSDESK_FEED_CATALOG" default:""`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.TimeWindowHours <= 0 {
		return fmt.Errorf("NEWSDESK_TIME_WINDOW_HOURS must be > 0")
	}
	if c.SimilarityThreshold <= 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("NEWSDESK_SIMILARITY_THRESHOLD must be in (0,1]")
	}
	if c.TitleDedupeThreshold <= 0 || c.TitleDedupeThreshold > 1 {
		return fmt.Errorf("NEWSDESK_TITLE_DEDUPE_THRESHOLD must be in (0,1]")
	}
	if c.QueryWindowHours <= 0 {
		return fmt.Errorf("NEWSDESK_QUERY_WINDOW_HOURS must be > 0")
	}
	if c.FeedTimeoutSeconds < 1 {
		return fmt.Errorf("NEWSDESK_FEED_TIMEOUT_SECONDS must be >= 1")
	}
	if c.FeedCategoryCap < 1 {
		return fmt.Errorf("NEWSDESK_FEED_CATEGORY_CAP must be >= 1")
	}
	return nil
}

// RequireDatabase rejects configs without a DSN. Commands that touch
// Postgres call this; offline commands do not.
func (c *Config) RequireDatabase() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	return nil
}

// PipelineOptions projects the tunables into the core's option type.
func (c *Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		TimeWindowHours:      c.TimeWindowHours,
		SimilarityThreshold:  c.SimilarityThreshold,
		TitleDedupeThreshold: c.TitleDedupeThreshold,
	}
}
