// Package logging provides structured logging for hheat.
//
// This package wraps a zap logger with package-level helpers. The CLI is
// silent by default: nothing is logged unless HHEAT_LOG_LEVEL is set, so the
// status output on stdout stays byte-for-byte stable for scripts.
//
// # Log Levels
//
//   - Debug: request and response details, token cache decisions
//   - Info: logins, mutations sent to the heating node
//   - Warn: recoverable issues (unreadable token file, rejected cached token)
//   - Error: failures that end the run
//
// # Configuration
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Logs are written to stderr in zap's console format:
//
//	2026-10-15T08:12:01.004+0100  INFO  Logged in  {"username": "me@example.com"}
//
// Session tokens and passwords are never passed to the logger.
package logging
