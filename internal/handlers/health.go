package handlers

import (
	"net/http"
	"runtime"
	"time"

	"music-server/internal/startup"
)

// HealthResponse contains the health check response
type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	Uptime        string `json:"uptime"`
	LastIndexed   string `json:"lastIndexed,omitempty"`
	IndexDuration string `json:"indexDuration,omitempty"`

	// Catalog summary
	Artists         int `json:"artists"`
	Albums          int `json:"albums"`
	Songs           int `json:"songs"`
	CoverlessAlbums int `json:"coverlessAlbums"`

	// System info
	GoVersion    string `json:"goVersion"`
	NumCPU       int    `json:"numCpu"`
	NumGoroutine int    `json:"numGoroutine"`
}

// HealthCheck returns the health status of the service. The catalog is
// built before the listener starts, so a responding server is a healthy
// one.
func (h *Handlers) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	stats := h.cat.Stats()

	response := HealthResponse{
		Status:          "healthy",
		Version:         startup.Version,
		Uptime:          time.Since(h.startTime).Round(time.Second).String(),
		Artists:         stats.Artists,
		Albums:          stats.Albums,
		Songs:           stats.Songs,
		CoverlessAlbums: stats.CoverlessAlbums,
		GoVersion:       runtime.Version(),
		NumCPU:          runtime.NumCPU(),
		NumGoroutine:    runtime.NumGoroutine(),
	}

	if last := h.status.LastIndexTime(); !last.IsZero() {
		response.LastIndexed = last.Format("2006-01-02T15:04:05Z07:00")
		response.IndexDuration = h.status.IndexDuration().String()
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, response)
}
