package startup

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"music-server/internal/logging"

	"github.com/gorilla/mux"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// RouteInfo contains information about a registered route
type RouteInfo struct {
	Method string
	Path   string
	Name   string
}

// Config holds all application configuration
type Config struct {
	MediaDir string
	Port     string
	FilesURL string

	// Comma-separated regex lists classifying walked paths.
	MediaIncludePatterns string
	MediaExcludePatterns string
	CoverIncludePatterns string
	CoverExcludePatterns string

	GenerateCovers  bool
	CORSAllowOrigin string
	LogStaticFiles  bool
	LogHealthChecks bool
}

// LoadConfig loads and validates configuration from environment variables
func LoadConfig() (*Config, error) {
	printBanner()
	logSystemInfo()

	logging.Info("------------------------------------------------------------")
	logging.Info("CONFIGURATION")
	logging.Info("------------------------------------------------------------")

	mediaDir := getEnv("MEDIA_DIR", "/media")
	port := getEnv("PORT", "8980")
	filesURL := getEnv("FILES_URL", "/cdn/files")
	mediaInclude := getEnv("MEDIA_INCLUDE_PATTERNS", `.*\.flac$,.*\.mp3$,.*\.ogg$`)
	mediaExclude := getEnv("MEDIA_EXCLUDE_PATTERNS", "")
	coverInclude := getEnv("COVER_INCLUDE_PATTERNS", `.*\.jpg$,.*\.png$`)
	coverExclude := getEnv("COVER_EXCLUDE_PATTERNS", "")
	generateCovers := getEnvBool("GENERATE_COVERS", true)
	corsAllowOrigin := getEnv("CORS_ALLOW_ORIGIN", "")
	logStaticFiles := getEnvBool("LOG_STATIC_FILES", false)
	logHealthChecks := getEnvBool("LOG_HEALTH_CHECKS", true)

	logging.Info("  MEDIA_DIR:               %s", mediaDir)
	logging.Info("  PORT:                    %s", port)
	logging.Info("  FILES_URL:               %s", filesURL)
	logging.Info("  MEDIA_INCLUDE_PATTERNS:  %s", mediaInclude)
	logging.Info("  MEDIA_EXCLUDE_PATTERNS:  %s", mediaExclude)
	logging.Info("  COVER_INCLUDE_PATTERNS:  %s", coverInclude)
	logging.Info("  COVER_EXCLUDE_PATTERNS:  %s", coverExclude)
	logging.Info("  GENERATE_COVERS:         %v", generateCovers)
	logging.Info("  CORS_ALLOW_ORIGIN:       %s", corsAllowOrigin)
	logging.Info("  LOG_STATIC_FILES:        %v", logStaticFiles)
	logging.Info("  LOG_HEALTH_CHECKS:       %v", logHealthChecks)
	logging.Info("  LOG_LEVEL:               %s", logging.GetLevel())

	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("DIRECTORY SETUP")
	logging.Info("------------------------------------------------------------")

	mediaDir, err := filepath.Abs(mediaDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve media directory path: %w", err)
	}
	logging.Info("  Media directory (absolute): %s", mediaDir)

	// The media directory must be mounted; an absent library is a
	// deployment error, not something to paper over with an empty dir.
	if err := checkMediaDirectory(mediaDir); err != nil {
		return nil, fmt.Errorf("media directory error: %w", err)
	}
	logging.Info("  [OK] Media directory is readable")

	// The URL prefix ends up verbatim in every song URL.
	filesURL = strings.TrimSuffix(filesURL, "/")
	if !strings.HasPrefix(filesURL, "/") {
		return nil, fmt.Errorf("FILES_URL must start with a slash, got %q", filesURL)
	}

	config := &Config{
		MediaDir:             mediaDir,
		Port:                 port,
		FilesURL:             filesURL,
		MediaIncludePatterns: mediaInclude,
		MediaExcludePatterns: mediaExclude,
		CoverIncludePatterns: coverInclude,
		CoverExcludePatterns: coverExclude,
		GenerateCovers:       generateCovers,
		CORSAllowOrigin:      corsAllowOrigin,
		LogStaticFiles:       logStaticFiles,
		LogHealthChecks:      logHealthChecks,
	}

	logMediaTooling(generateCovers)

	return config, nil
}

// logMediaTooling reports whether the ffmpeg/ffprobe collaborators are
// reachable. Their absence is not fatal here: probing failures degrade
// to skipped files, which the indexer logs per file.
func logMediaTooling(generateCovers bool) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("MEDIA TOOLING")
	logging.Info("------------------------------------------------------------")

	if err := checkTool("ffprobe"); err != nil {
		logging.Warn("  ffprobe check failed: %v", err)
		logging.Warn("  Metadata probing will fail; the catalog will be empty")
	} else {
		logging.Info("  [OK] ffprobe is available")
	}

	if !generateCovers {
		logging.Info("  Cover generation disabled (GENERATE_COVERS=false)")
		return
	}

	if err := checkTool("ffmpeg"); err != nil {
		logging.Warn("  ffmpeg check failed: %v", err)
		logging.Warn("  Cover generation will not work")
	} else {
		logging.Info("  [OK] ffmpeg is available")
	}
}

// LogIndexerInit logs the start of the catalog build
func LogIndexerInit(mediaDir string) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("CATALOG BUILD")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Media directory: %s", mediaDir)
}

// LogIndexerComplete logs a finished catalog build
func LogIndexerComplete(duration time.Duration) {
	logging.Info("  [OK] Catalog built in %v", duration)
}

// GetRoutes extracts all registered routes from a mux.Router
func GetRoutes(router *mux.Router) ([]RouteInfo, error) {
	var routes []RouteInfo

	err := router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err != nil {
			return err
		}

		methods, err := route.GetMethods()
		if err != nil {
			// Route might not have methods specified (e.g., static file server)
			methods = []string{"*"}
		}

		name := route.GetName()

		for _, method := range methods {
			routes = append(routes, RouteInfo{
				Method: method,
				Path:   pathTemplate,
				Name:   name,
			})
		}

		return nil
	})

	return routes, err
}

// LogHTTPRoutes logs all registered HTTP routes dynamically
func LogHTTPRoutes(router *mux.Router, logStaticFiles, logHealthChecks bool) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("HTTP SERVER SETUP")
	logging.Info("------------------------------------------------------------")

	if logging.IsDebugEnabled() {
		routes, err := GetRoutes(router)
		if err != nil {
			logging.Warn("error walking routes: %v", err)
		}

		logging.Debug("  Registered routes (%d total):", len(routes))
		logging.Debug("")

		// Group routes by prefix for cleaner output
		groups := make(map[string][]RouteInfo)
		for _, route := range routes {
			prefix := getRouteGroup(route.Path)
			groups[prefix] = append(groups[prefix], route)
		}

		// Sort group keys
		groupKeys := make([]string, 0, len(groups))
		for k := range groups {
			groupKeys = append(groupKeys, k)
		}
		sort.Strings(groupKeys)

		// Print routes by group
		for _, group := range groupKeys {
			groupRoutes := groups[group]
			if group != "" {
				logging.Debug("  [%s]", group)
			} else {
				logging.Debug("  [root]")
			}

			for _, route := range groupRoutes {
				methodPadded := fmt.Sprintf("%-6s", route.Method)
				logging.Debug("    %s %s", methodPadded, route.Path)
			}
			logging.Debug("")
		}
	}

	logging.Info("  HTTP logging enabled")
	if logStaticFiles {
		logging.Info("    Static file logging: ON")
	} else {
		logging.Info("    Static file logging: OFF (set LOG_STATIC_FILES=true to enable)")
	}
	if logHealthChecks {
		logging.Info("    Health check logging: ON")
	} else {
		logging.Info("    Health check logging: OFF (set LOG_HEALTH_CHECKS=true to enable)")
	}
}

// getRouteGroup extracts a group name from a route path
func getRouteGroup(path string) string {
	// Remove leading slash
	path = strings.TrimPrefix(path, "/")

	// Get first segment
	parts := strings.SplitN(path, "/", 2)
	if len(parts) == 0 {
		return ""
	}

	first := parts[0]

	// Group the API routes one level deeper (cdn/index, cdn/files)
	if first == "cdn" && len(parts) > 1 {
		subParts := strings.SplitN(parts[1], "/", 2)
		return "cdn/" + subParts[0]
	}

	return first
}

// ServerConfig holds configuration for the server startup log
type ServerConfig struct {
	Port            string
	StartupDuration time.Duration
}

// LogServerStarted logs successful server start with all endpoint information
func LogServerStarted(config ServerConfig) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("SERVER STARTED")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Startup time:    %v", config.StartupDuration)
	logging.Info("")
	logging.Info("  Endpoints:")
	logging.Info("    API:           http://0.0.0.0:%s/cdn/index", config.Port)
	logging.Info("    Files:         http://0.0.0.0:%s/cdn/files", config.Port)
	logging.Info("    Metrics:       http://0.0.0.0:%s/metrics", config.Port)
	logging.Info("")
	logging.Info("  Local access:")
	logging.Info("    Application:   http://localhost:%s", config.Port)
	logging.Info("")
	logging.Info("  Press Ctrl+C to stop the server")
	logging.Info("------------------------------------------------------------")
	logging.Info("")
}

// LogShutdownInitiated logs shutdown start
func LogShutdownInitiated(signal string) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("SHUTDOWN INITIATED (received %s)", signal)
	logging.Info("------------------------------------------------------------")
}

// LogShutdownStep logs a shutdown step
func LogShutdownStep(step string) {
	logging.Debug("  %s...", step)
}

// LogShutdownStepComplete logs a completed shutdown step
func LogShutdownStepComplete(step string) {
	logging.Info("  [OK] %s", step)
}

// LogShutdownComplete logs shutdown completion
func LogShutdownComplete() {
	logging.Info("  [OK] Shutdown complete")
}

// LogFatal logs a fatal error and exits
func LogFatal(format string, args ...interface{}) {
	logging.Fatal(format, args...)
}

// Helper functions

func printBanner() {
	banner := `
------------------------------------------------------------
    __  ___           _         _____
   /  |/  /_  _______(_)____   / ___/___  ______   _____  _____
  / /|_/ / / / / ___/ / ___/   \__ \/ _ \/ ___/ | / / _ \/ ___/
 / /  / / /_/ (__  ) / /__    ___/ /  __/ /   | |/ /  __/ /
/_/  /_/\__,_/____/_/\___/   /____/\___/_/    |___/\___/_/

------------------------------------------------------------`
	fmt.Println(banner)
	logging.Info("  Version:    %s", Version)
	logging.Info("  Commit:     %s", Commit)
	logging.Info("  Build Time: %s", BuildTime)
	logging.Info("  Started:    %s", time.Now().Format(time.RFC1123))
	logging.Info("")
}

func logSystemInfo() {
	logging.Info("------------------------------------------------------------")
	logging.Info("SYSTEM INFORMATION")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Go version:      %s", runtime.Version())
	logging.Info("  OS/Arch:         %s/%s", runtime.GOOS, runtime.GOARCH)
	logging.Info("  CPUs available:  %d", runtime.NumCPU())
	logging.Info("  GOMAXPROCS:      %d", runtime.GOMAXPROCS(0))

	if runtime.GOMAXPROCS(0) < runtime.NumCPU() {
		logging.Info("  (Container CPU limit detected)")
	}

	if logging.IsDebugEnabled() {
		logging.Debug("  Goroutines:      %d", runtime.NumGoroutine())

		if wd, err := os.Getwd(); err == nil {
			logging.Debug("  Working dir:     %s", wd)
		}

		if hostname, err := os.Hostname(); err == nil {
			logging.Debug("  Hostname:        %s", hostname)
		}
	}

	logging.Info("")
}

func checkMediaDirectory(path string) error {
	logging.Debug("  Checking media directory: %s", path)

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("directory does not exist (is the media volume mounted?)")
	}
	if err != nil {
		return fmt.Errorf("failed to stat directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path exists but is not a directory")
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("directory is not readable: %w", err)
	}

	if logging.IsDebugEnabled() {
		fileCount := 0
		dirCount := 0
		for _, e := range entries {
			if e.IsDir() {
				dirCount++
			} else {
				fileCount++
			}
		}
		logging.Debug("    Contents: %d files, %d directories (top level)", fileCount, dirCount)
	}

	return nil
}

func checkTool(name string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s not found in PATH", name)
	}
	logging.Debug("  %s path: %s", name, path)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, "-version")
	output, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("failed to get %s version: %w", name, err)
	}

	lines := strings.Split(string(output), "\n")
	if len(lines) > 0 {
		logging.Debug("  %s version: %s", name, strings.TrimSpace(lines[0]))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logging.Warn("Invalid boolean value for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
