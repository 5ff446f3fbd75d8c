// Package telemetry provides observability for Meridian.
//
// # Components
//
//   - logging: structured log/slog configuration for the CLI and watcher
//   - metrics: Prometheus metrics for validation runs
//
// # Usage
//
//	// Configure logging
//	logger, err := logging.Setup(logging.Config{Level: "debug", Format: "json"})
//
//	// Record a validation run
//	collector := metrics.NewCollector(nil)
//	collector.RecordRun(taxonomy, duration, err)
package telemetry
