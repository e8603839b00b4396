// Package logging provides structured logging for kvforge.
//
// This package wraps zap with convenience functions for the logging patterns
// used throughout the application. Because the TUI owns the terminal while it
// runs, logging is silent by default; it is enabled by setting the
// KVFORGE_LOG_LEVEL environment variable, and all output goes to stderr so a
// redirected stdout stays clean for the emitted mapping.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: per-keystroke state machine detail
//   - Info: session lifecycle (start, outcome, emission)
//   - Warn: non-fatal issues (unwritable preferences file)
//   - Error: fatal issues (output write failures)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Editor session finished",
//	    zap.Int("pairs", 3),
//	    zap.Bool("emitted", true),
//	)
//
// # Configuration
//
// Initialize logging at command startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
