package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "music_server_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "music_server_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "music_server_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Indexer metrics
var (
	IndexerLastRunTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "music_server_indexer_last_run_timestamp",
			Help: "Timestamp of the last completed index run",
		},
	)

	IndexerLastRunDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "music_server_indexer_last_run_duration_seconds",
			Help: "Duration of the last completed index run in seconds",
		},
	)

	WalkErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "music_server_indexer_walk_errors_total",
			Help: "Total number of unreadable paths skipped during the directory walk",
		},
	)

	SongsIndexed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "music_server_songs_indexed",
			Help: "Number of songs in the catalog",
		},
	)

	AlbumsIndexed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "music_server_albums_indexed",
			Help: "Number of albums in the catalog",
		},
	)

	ArtistsIndexed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "music_server_artists_indexed",
			Help: "Number of artists in the catalog",
		},
	)
)

// Probe metrics
var (
	ProbeFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "music_server_probe_failures_total",
			Help: "Total number of media files skipped because probing failed",
		},
	)

	ProbeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "music_server_probe_duration_seconds",
			Help:    "Metadata probe duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)
)

// Cover metrics
var (
	CoversAttached = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "music_server_covers_attached_total",
			Help: "Total number of cover attachments accepted by albums",
		},
	)

	CoversGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "music_server_covers_generated_total",
			Help: "Total number of covers generated from embedded video frames",
		},
	)

	CoverGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "music_server_cover_generation_duration_seconds",
			Help:    "Cover generation duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	CoverlessAlbums = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "music_server_coverless_albums",
			Help: "Number of albums without cover artwork after indexing",
		},
	)
)

// Application info metric
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "music_server_app_info",
			Help: "Application information",
		},
		[]string{"version", "commit", "go_version"},
	)
)

// SetAppInfo sets the application info metric
func SetAppInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}
