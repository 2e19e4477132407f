package indexer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"music-server/internal/catalog"
	"music-server/internal/cover"
	"music-server/internal/logging"
	"music-server/internal/metrics"
	"music-server/internal/probe"

	"golang.org/x/sync/errgroup"
)

// Default number of concurrent cover generations. Each one runs an
// ffmpeg subprocess, so this is a subprocess budget, not a CPU one.
const defaultGenerateWorkers = 4

// Config carries everything the indexer needs to build a catalog.
type Config struct {
	// BaseDir is the root of the media library.
	BaseDir string

	// FilesURL is the URL prefix under which files in BaseDir are served.
	FilesURL string

	MediaPatterns PatternSet
	CoverPatterns PatternSet

	// GenerateCovers enables the fallback cover-generation pass for
	// albums with no discovered artwork.
	GenerateCovers bool

	// GenerateWorkers bounds the parallelism of the generation pass.
	// Zero means the default.
	GenerateWorkers int
}

// Indexer builds a catalog with a single ordered walk over the media
// directory, followed by a bounded-parallel cover-generation pass.
type Indexer struct {
	cat *catalog.Catalog
	cfg Config

	// Cover correlation state. Only the walk goroutine touches these,
	// and only in visit order.
	previousParent     string
	previousSongParent string
	previousAlbum      *catalog.Album
	foundCovers        []string

	statusMu      sync.Mutex
	lastIndexTime time.Time
	indexDuration time.Duration

	// Subprocess collaborators, replaceable in tests.
	probeFile     func(ctx context.Context, path string) (*probe.Result, error)
	generateCover func(ctx context.Context, songPath string, stream probe.Stream) (string, error)
}

// New creates an Indexer that populates cat.
func New(cat *catalog.Catalog, cfg Config) *Indexer {
	if cfg.GenerateWorkers <= 0 {
		cfg.GenerateWorkers = defaultGenerateWorkers
	}
	return &Indexer{
		cat:           cat,
		cfg:           cfg,
		probeFile:     probe.Probe,
		generateCover: cover.GenerateFromSong,
	}
}

// Index walks the media directory, fills the catalog, generates covers
// for albums that have none, and freezes the catalog for serving.
func (idx *Indexer) Index(ctx context.Context) error {
	start := time.Now()
	logging.Info("Indexing %s", idx.cfg.BaseDir)

	if err := idx.walk(ctx); err != nil {
		return fmt.Errorf("indexing %s: %w", idx.cfg.BaseDir, err)
	}

	if idx.cfg.GenerateCovers {
		idx.generateMissingCovers(ctx)
	}

	idx.cat.Freeze()

	duration := time.Since(start)
	idx.statusMu.Lock()
	idx.lastIndexTime = time.Now()
	idx.indexDuration = duration
	idx.statusMu.Unlock()

	stats := idx.cat.Stats()
	metrics.SongsIndexed.Set(float64(stats.Songs))
	metrics.AlbumsIndexed.Set(float64(stats.Albums))
	metrics.ArtistsIndexed.Set(float64(stats.Artists))
	metrics.CoverlessAlbums.Set(float64(stats.CoverlessAlbums))
	metrics.IndexerLastRunTimestamp.Set(float64(time.Now().Unix()))
	metrics.IndexerLastRunDuration.Set(duration.Seconds())

	logging.Info("Indexed %d songs in %s", stats.Songs, duration.Round(time.Millisecond))
	logging.Info("%d Albums loaded.", stats.Albums)
	logging.Info("%d Artists loaded.", stats.Artists)
	return nil
}

// LastIndexTime returns when the last index run completed.
func (idx *Indexer) LastIndexTime() time.Time {
	idx.statusMu.Lock()
	defer idx.statusMu.Unlock()
	return idx.lastIndexTime
}

// IndexDuration returns how long the last index run took.
func (idx *Indexer) IndexDuration() time.Duration {
	idx.statusMu.Lock()
	defer idx.statusMu.Unlock()
	return idx.indexDuration
}

// walk drives the single sequential pass over the media directory.
func (idx *Indexer) walk(ctx context.Context) error {
	return symWalk(idx.cfg.BaseDir, func(path string, d fs.DirEntry, err error) error {
		return idx.visit(ctx, path, d, err)
	})
}

// visit handles one walker callback: skip unreadable entries, descend
// through symlinks, and hand regular files to the correlation step.
func (idx *Indexer) visit(ctx context.Context, path string, d fs.DirEntry, err error) error {
	if err != nil {
		logging.Warn("Error accessing path %s: %v", path, err)
		metrics.WalkErrors.Inc()
		return nil
	}

	if d.Type() == os.ModeSymlink {
		// A symlinked directory walks in place under its link path; a
		// symlinked file visits itself once with its target's info.
		return symWalk(path, func(subAbs string, sub fs.DirEntry, err error) error {
			return idx.visit(ctx, subAbs, sub, err)
		})
	}

	if d.IsDir() {
		return nil
	}

	return idx.visitFile(ctx, path)
}

// visitFile runs the cover correlation state machine for one file in
// walk order.
func (idx *Indexer) visitFile(ctx context.Context, path string) error {
	parent := filepath.Dir(path)

	// Buffered covers are only candidates for albums in their own
	// directory. Once the walk moves to a new parent they are stale.
	if parent != idx.previousParent {
		idx.foundCovers = idx.foundCovers[:0]
		idx.previousParent = parent
	}

	switch {
	case idx.cfg.MediaPatterns.Match(path):
		return idx.visitSong(ctx, path, parent)
	case idx.cfg.CoverPatterns.Match(path):
		return idx.visitCover(path, parent)
	}
	return nil
}

// visitSong probes a media file and inserts it into the catalog, then
// flushes any covers that were waiting for an album in this directory.
func (idx *Indexer) visitSong(ctx context.Context, path, parent string) error {
	probeStart := time.Now()
	result, err := idx.probeFile(ctx, path)
	metrics.ProbeDuration.Observe(time.Since(probeStart).Seconds())
	if err != nil {
		logging.Warn("Skipping unreadable media file: %v", err)
		metrics.ProbeFailures.Inc()
		return nil
	}

	meta := probe.Resolve(result, path)

	url, err := idx.fileURL(path)
	if err != nil {
		return err
	}

	album := idx.cat.InsertSong(catalog.SongInput{
		Title:   meta.Title,
		Album:   meta.Album,
		Artists: meta.Artists,
		Track:   meta.Track,
		URL:     url,
		Path:    path,
	})

	idx.previousSongParent = parent
	idx.previousAlbum = album

	for _, coverPath := range idx.foundCovers {
		if err := idx.attachCover(album, coverPath); err != nil {
			return err
		}
	}
	idx.foundCovers = idx.foundCovers[:0]
	return nil
}

// visitCover either attaches a cover to the album whose songs share its
// directory, or buffers it until such an album appears.
func (idx *Indexer) visitCover(path, parent string) error {
	if idx.previousAlbum != nil && parent == idx.previousSongParent {
		return idx.attachCover(idx.previousAlbum, path)
	}
	idx.foundCovers = append(idx.foundCovers, path)
	return nil
}

// attachCover rates a cover file and offers it to the album. Albums
// keep the highest-rated cover they have been offered.
func (idx *Indexer) attachCover(album *catalog.Album, path string) error {
	rating := cover.Rate(path)
	if rating == 0 {
		return nil
	}
	url, err := idx.fileURL(path)
	if err != nil {
		return err
	}
	if album.SetCover(url, rating) {
		metrics.CoversAttached.Inc()
		logging.Debug("Attached cover %s to album %s (rating %d)", path, album.UniqueName, rating)
	}
	return nil
}

// generateMissingCovers runs the fallback pass: for every album without
// artwork, decode a frame from the first song carrying a video stream
// and attach the written JPEG through the normal rating path.
func (idx *Indexer) generateMissingCovers(ctx context.Context) {
	albums := idx.cat.CoverlessAlbums()
	if len(albums) == 0 {
		return
	}

	logging.Info("Generating covers for %d albums without artwork", len(albums))

	var group errgroup.Group
	group.SetLimit(idx.cfg.GenerateWorkers)
	for _, album := range albums {
		group.Go(func() error {
			idx.generateAlbumCover(ctx, album)
			return nil
		})
	}
	group.Wait()
}

// generateAlbumCover finds the first song of the album with a video
// stream and turns one decoded frame into the album cover. Failures
// leave the album coverless; there is no second candidate.
func (idx *Indexer) generateAlbumCover(ctx context.Context, album *catalog.Album) {
	for _, song := range album.SongSlots() {
		if song == nil {
			continue
		}

		result, err := idx.probeFile(ctx, song.Path)
		if err != nil {
			logging.Debug("Cover probe failed for %s: %v", song.Path, err)
			metrics.ProbeFailures.Inc()
			continue
		}
		stream, ok := result.VideoStream()
		if !ok {
			continue
		}

		genStart := time.Now()
		coverPath, err := idx.generateCover(ctx, song.Path, stream)
		metrics.CoverGenerationDuration.Observe(time.Since(genStart).Seconds())
		if err != nil {
			logging.Warn("Cover generation failed for album %s: %v", album.UniqueName, err)
			return
		}

		if err := idx.attachCover(album, coverPath); err != nil {
			logging.Warn("Generated cover not attached: %v", err)
			return
		}
		metrics.CoversGenerated.Inc()
		logging.Debug("Generated cover for album %s from %s", album.UniqueName, song.Path)
		return
	}
}

func (idx *Indexer) fileURL(path string) (string, error) {
	return fileURL(idx.cfg.FilesURL, idx.cfg.BaseDir, path)
}
