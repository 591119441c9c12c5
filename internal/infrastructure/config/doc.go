// Package config provides 12-factor configuration for the transform tools.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override environment variables.
//
// Configuration Sections:
//   - Logging: Log level and output format
//   - Transform: Engine choice, parse limits, stack ceiling, charset decoding
//   - Metrics: Optional Prometheus textfile output
//
// The conf object passed to templates is separate: LoadConf reads it from a
// YAML or TOML file and the transform never interprets it.
//
// Example Usage:
//
//	cfg, err := config.Load()
//	eng, err := engine.New(cfg.Transform.Engine)
//
// Environment Variables:
//   - LOG_LEVEL, LOG_DEV
//   - TRANSFORM_ENGINE, TRANSFORM_MAX_CONTENT_BYTES, TRANSFORM_MAX_STACK_MB,
//     TRANSFORM_DETECT_CHARSET
//   - METRICS_TEXTFILE
package config
