// Package logger provides a structured logging facility based on Zap.
//
// It builds a configured logger instance for the CLI commands: console
// encoding with colored levels for interactive use, JSON for runs whose
// output is collected elsewhere.
//
// # Run Correlation
//
// Batch runs process many job lines and emit one log entry per failure.
// The WithRunID helper stamps a generated run_id onto the logger so all
// entries of one invocation can be grouped after the fact.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log)
//	log.Info("Run complete")
package logger
