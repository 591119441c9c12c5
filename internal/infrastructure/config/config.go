package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Logging   LogConfig
	Transform TransformConfig
	Metrics   MetricsConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// TransformConfig holds template transform configuration.
type TransformConfig struct {
	Engine          string `envconfig:"TRANSFORM_ENGINE" default:"gotemplate"`
	MaxContentBytes int    `envconfig:"TRANSFORM_MAX_CONTENT_BYTES" default:"10485760"`
	MaxStackMB      int    `envconfig:"TRANSFORM_MAX_STACK_MB" default:"2048"`
	DetectCharset   bool   `envconfig:"TRANSFORM_DETECT_CHARSET" default:"true"`
}

// MetricsConfig holds metrics output configuration.
type MetricsConfig struct {
	Textfile string `envconfig:"METRICS_TEXTFILE" default:""`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Transform.MaxContentBytes < 0 {
		return nil, fmt.Errorf("failed to load config: TRANSFORM_MAX_CONTENT_BYTES must not be negative")
	}
	if cfg.Transform.MaxStackMB <= 0 {
		return nil, fmt.Errorf("failed to load config: TRANSFORM_MAX_STACK_MB must be positive")
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Transform: TransformConfig{
			Engine:          "gotemplate",
			MaxContentBytes: 10 * 1024 * 1024,
			MaxStackMB:      2048,
			DetectCharset:   true,
		},
	}
}
