// Package startup handles application initialization, configuration loading,
// and startup/shutdown logging.
//
// This package centralizes all application configuration and provides consistent
// logging throughout the application lifecycle.
//
// # Configuration
//
// All configuration is loaded from environment variables via [LoadConfig].
// The following environment variables are supported:
//
//   - MEDIA_DIR: Path to the music library (default: /media)
//   - PORT: HTTP server port (default: 8980)
//   - FILES_URL: URL prefix under which library files are served (default: /cdn/files)
//   - MEDIA_INCLUDE_PATTERNS: Comma-separated regexes selecting song files
//     (default: .*\.flac$,.*\.mp3$,.*\.ogg$)
//   - MEDIA_EXCLUDE_PATTERNS: Comma-separated regexes rejecting song files (default: empty)
//   - COVER_INCLUDE_PATTERNS: Comma-separated regexes selecting cover images
//     (default: .*\.jpg$,.*\.png$)
//   - COVER_EXCLUDE_PATTERNS: Comma-separated regexes rejecting cover images (default: empty)
//   - GENERATE_COVERS: Generate covers from embedded video frames for albums
//     without artwork (default: true)
//   - CORS_ALLOW_ORIGIN: Value for the Access-Control-Allow-Origin header on API
//     responses; empty disables the header (default: empty)
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//   - LOG_STATIC_FILES: Log file-serving requests (default: false)
//   - LOG_HEALTH_CHECKS: Log health check requests (default: true)
//
// # Directory Setup
//
// The media directory is required: it must exist and be readable, and is never
// created by the server. Everything the server writes (generated covers) goes
// inside it, next to the source files.
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via [GetBuildInfo]:
//   - Version: Application version
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//   - GoVersion: Go compiler version
//
// # Lifecycle Logging
//
// The package provides structured logging functions for consistent output:
//   - [LogIndexerInit]: Catalog build start
//   - [LogIndexerComplete]: Catalog build timing
//   - [LogHTTPRoutes]: Registered HTTP routes (debug level)
//   - [LogServerStarted]: Server endpoints and startup duration
//   - [LogShutdownInitiated]: Graceful shutdown start
//   - [LogShutdownComplete]: Shutdown completion
//
// # Example Usage
//
//	config, err := startup.LoadConfig()
//	if err != nil {
//	    startup.LogFatal("Configuration error: %v", err)
//	}
//
//	// Build the catalog...
//	startup.LogIndexerInit(config.MediaDir)
//	// ... index ...
//	startup.LogIndexerComplete(indexDuration)
//
//	// Start server...
//	startup.LogServerStarted(startup.ServerConfig{
//	    Port:            config.Port,
//	    StartupDuration: time.Since(startTime),
//	})
//
//	// On shutdown...
//	startup.LogShutdownInitiated("SIGTERM")
//	// ... cleanup ...
//	startup.LogShutdownComplete()
package startup
