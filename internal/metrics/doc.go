// Package metrics provides Prometheus instrumentation for the music server.
//
// This package defines and exposes various metrics that can be scraped by Prometheus
// to monitor the health, performance, and behavior of the application. All metrics
// are prefixed with "music_server_" to avoid naming collisions with other applications.
//
// # Metric Categories
//
// The metrics are organized into the following categories:
//
// ## HTTP Metrics
//
// Track HTTP request performance and error rates:
//   - HTTPRequestsTotal: Counter of total requests by method, path, and status
//   - HTTPRequestDuration: Histogram of request duration by method and path
//   - HTTPRequestsInFlight: Gauge of currently processing requests
//
// ## Indexer Metrics
//
// Track the startup index run and resulting catalog size:
//   - IndexerLastRunTimestamp: Gauge of last run time
//   - IndexerLastRunDuration: Gauge of last run duration
//   - WalkErrors: Counter of unreadable paths skipped during the walk
//   - SongsIndexed, AlbumsIndexed, ArtistsIndexed: Gauges of catalog size
//
// ## Probe Metrics
//
// Monitor the ffprobe metadata collaborator:
//   - ProbeFailures: Counter of media files skipped due to probe errors
//   - ProbeDuration: Histogram of probe subprocess duration
//
// ## Cover Metrics
//
// Monitor cover discovery and fallback generation:
//   - CoversAttached: Counter of accepted cover attachments
//   - CoversGenerated: Counter of covers produced from embedded video frames
//   - CoverGenerationDuration: Histogram of generation time per album
//   - CoverlessAlbums: Gauge of albums left without artwork
//
// ## Application Info
//
// Expose build information:
//   - AppInfo: Gauge with version, commit, and Go version labels
//
// # Usage
//
// Metrics are automatically registered with the default Prometheus registry
// using promauto. To expose them, mount the promhttp.Handler() on your
// metrics endpoint:
//
//	import "github.com/prometheus/client_golang/prometheus/promhttp"
//
//	mux.Handle("/metrics", promhttp.Handler())
//
// # Recording Metrics
//
// To record metrics from other packages, import this package and use the
// exported metric variables:
//
//	import "music-server/internal/metrics"
//
//	// Increment a counter
//	metrics.HTTPRequestsTotal.WithLabelValues("GET", "/cdn/index/albums", "200").Inc()
//
//	// Observe a histogram value
//	metrics.ProbeDuration.Observe(0.123)
//
//	// Set a gauge value
//	metrics.SongsIndexed.Set(1042)
//
// # Prometheus Queries
//
// Example PromQL queries for common use cases:
//
// Request rate by endpoint:
//
//	sum(rate(music_server_http_requests_total[5m])) by (path)
//
// P95 response time:
//
//	histogram_quantile(0.95, sum(rate(music_server_http_request_duration_seconds_bucket[5m])) by (le))
//
// Error rate:
//
//	sum(rate(music_server_http_requests_total{status=~"5.."}[5m])) / sum(rate(music_server_http_requests_total[5m]))
//
// Share of the library that failed probing:
//
//	music_server_probe_failures_total / music_server_songs_indexed
//
// Albums still missing artwork:
//
//	music_server_coverless_albums
package metrics
