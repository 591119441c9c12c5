// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Logs are written to stderr by default; stdout belongs to rendered output.
//
// Example Usage:
//
//	logger, err := logging.New(logging.DefaultConfig())
//	logger.Warn("template transform failed", zap.Error(err))
//
//	child := logger.With(zap.String("transform_id", xfID.String()))
//	child.Debug("parsing content", zap.String("view", "css"))
package logging
