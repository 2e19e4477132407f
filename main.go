package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"music-server/internal/catalog"
	"music-server/internal/cover"
	"music-server/internal/handlers"
	"music-server/internal/indexer"
	"music-server/internal/logging"
	"music-server/internal/memory"
	"music-server/internal/metrics"
	"music-server/internal/middleware"
	"music-server/internal/startup"

	"github.com/gorilla/mux"
)

func main() {
	startTime := time.Now()

	// Configure GOMEMLIMIT before any significant allocations
	memory.ConfigureFromEnv()

	// Load configuration
	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	mediaPatterns, err := indexer.CompilePatterns(config.MediaIncludePatterns, config.MediaExcludePatterns)
	if err != nil {
		startup.LogFatal("Media pattern error: %v", err)
	}
	coverPatterns, err := indexer.CompilePatterns(config.CoverIncludePatterns, config.CoverExcludePatterns)
	if err != nil {
		startup.LogFatal("Cover pattern error: %v", err)
	}

	// Initialize libvips for cover encoding. Generated covers fall back
	// to the pure-Go encoder when the library is missing.
	if config.GenerateCovers {
		if err := cover.InitVips(); err != nil {
			logging.Warn("libvips unavailable, covers use the pure-Go encoder: %v", err)
		}
		defer cover.ShutdownVips()
	}

	// Build the catalog before accepting requests
	startup.LogIndexerInit(config.MediaDir)
	cat := catalog.New()
	idx := indexer.New(cat, indexer.Config{
		BaseDir:        config.MediaDir,
		FilesURL:       config.FilesURL,
		MediaPatterns:  mediaPatterns,
		CoverPatterns:  coverPatterns,
		GenerateCovers: config.GenerateCovers,
	})

	indexStart := time.Now()
	if err := idx.Index(context.Background()); err != nil {
		startup.LogFatal("Indexing failed: %v", err)
	}
	startup.LogIndexerComplete(time.Since(indexStart))

	metrics.SetAppInfo(startup.Version, startup.Commit, startup.GoVersion)

	// Initialize handlers
	h := handlers.New(cat, idx, config)

	// Setup router
	router := setupRouter(h, config)

	// Log routes dynamically
	startup.LogHTTPRoutes(router, config.LogStaticFiles, config.LogHealthChecks)

	// Apply metrics middleware
	metricsHandler := middleware.Metrics(middleware.DefaultMetricsConfig())(router)

	// Apply logging middleware
	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogStaticFiles = config.LogStaticFiles
	loggingConfig.LogHealthChecks = config.LogHealthChecks
	loggedHandler := middleware.Logger(loggingConfig)(metricsHandler)

	// Apply compression middleware
	compressedHandler := middleware.Compression(middleware.DefaultCompressionConfig())(loggedHandler)

	// Apply CORS middleware
	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigin = config.CORSAllowOrigin
	handler := middleware.CORS(corsConfig)(compressedHandler)

	// Create server
	srv := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // No write timeout: clients stream large audio files
		IdleTimeout:  60 * time.Second,
	}

	// Start graceful shutdown handler
	go handleShutdown(srv)

	// Start server
	startup.LogServerStarted(startup.ServerConfig{
		Port:            config.Port,
		StartupDuration: time.Since(startTime),
	})
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		startup.LogFatal("Server error: %v", err)
	}
}

func setupRouter(h *handlers.Handlers, config *startup.Config) *mux.Router {
	r := mux.NewRouter()

	// Health check and version routes
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")
	r.HandleFunc("/version", h.GetVersion).Methods("GET")
	r.Handle("/metrics", h.MetricsHandler()).Methods("GET")

	// Catalog API
	index := r.PathPrefix("/cdn/index").Subrouter()
	index.HandleFunc("/albums", h.ListAlbums).Methods("GET")
	index.HandleFunc("/artists", h.ListArtists).Methods("GET")
	index.HandleFunc("/album/{album_name}", h.GetAlbum).Methods("GET")
	index.HandleFunc("/album/{album_name}/{song_name}", h.GetSong).Methods("GET")
	index.HandleFunc("/artist/{artist_name}", h.GetArtist).Methods("GET")

	// Media and cover files, mounted under the same prefix the indexer
	// bakes into song and cover URLs
	r.HandleFunc(config.FilesURL+"/{path:.*}", h.GetFile).Methods("GET")

	return r
}

func handleShutdown(srv *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	startup.LogShutdownInitiated(sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	startup.LogShutdownStep("Shutting down HTTP server")
	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Server shutdown error: %v", err)
	} else {
		startup.LogShutdownStepComplete("HTTP server stopped")
	}

	startup.LogShutdownComplete()
}
