package handlers

import (
	"time"

	"music-server/internal/catalog"
	"music-server/internal/startup"
)

// IndexStatus reports when the catalog was last built and how long the
// build took. Satisfied by *indexer.Indexer.
type IndexStatus interface {
	LastIndexTime() time.Time
	IndexDuration() time.Duration
}

type Handlers struct {
	cat       *catalog.Catalog
	status    IndexStatus
	baseDir   string
	startTime time.Time
}

func New(cat *catalog.Catalog, status IndexStatus, config *startup.Config) *Handlers {
	return &Handlers{
		cat:       cat,
		status:    status,
		baseDir:   config.MediaDir,
		startTime: time.Now(),
	}
}
