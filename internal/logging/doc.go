// Package logging provides structured logging for goveectl.
//
// This package wraps a zap logger with convenience functions for the
// logging patterns used throughout the tool. Logging is silent by
// default so command output stays clean; set GOVEECTL_LOG_LEVEL to
// enable diagnostics.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: detailed diagnostics (API requests, timings)
//   - Info: normal operations (target resolution, registry writes)
//   - Warn: non-fatal issues (per-target send failures)
//   - Error: fatal issues (corrupt registry, startup failures)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Debug("api request",
//	    zap.String("method", "PUT"),
//	    zap.String("path", "/devices/control"),
//	    zap.Int("status", 200),
//	)
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Logs go to stderr in console format, keeping stdout free for
// command output.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying
// zap logger handles synchronization automatically.
package logging
