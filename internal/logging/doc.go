// Package logging provides structured logging for the Lumibag daemon.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the controller. It provides both general logging
// functions and specialized functions for wire-layer and show-clock logging.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (datagram traces, tick overruns)
//   - Info: Normal operations (connections, playback state changes)
//   - Warn: Non-fatal issues (dropped datagrams, evicted assemblers)
//   - Error: Fatal issues (startup failures, critical errors)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Playback started",
//	    zap.String("title", "Aozora Jumping Heart"),
//	    zap.Int("track", 2),
//	)
//
// # Specialized Logging
//
// The package provides domain-specific logging functions:
//
// Wire-layer logging:
//
//	logging.LogDatagram("inbound", key, offset, length, payloadLen)
//	logging.LogDatagramDrop("malformed", raw)
//	logging.LogMessageAssembled(key, len(data))
//
// Show-clock logging:
//
//	logging.LogTickOverrun(tick, overrun)
//
// # Configuration
//
// Initialize logging at daemon startup:
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// CLI commands that want silent output by default should use
// InitializeFromEnv, which only enables logging when LUMIBAG_LOG_LEVEL
// is set.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
