// Package logging provides a simple leveled logging interface for the
// music server.
//
// It supports the following log levels:
//   - DEBUG: Verbose debugging information (per-path walk traces)
//   - INFO: General operational messages
//   - WARN: Warning conditions (skipped files, probe failures)
//   - ERROR: Error conditions
//   - FATAL: Fatal errors that terminate the application
//
// The log level is configured via the LOG_LEVEL environment variable,
// with DEBUG=true as a shortcut for LOG_LEVEL=debug.
package logging
