package catalog

import "sync"

// SongInput carries everything known about a media file before it is
// linked into the catalog.
type SongInput struct {
	Title   string
	Album   string
	Artists []string
	// Track is the parsed track number; 0 means the file carries none.
	Track int
	URL   string
	Path  string
}

// Song is a catalog song. All fields except the denormalized cover URL
// are fixed at insertion time.
type Song struct {
	Title      string
	UniqueName string
	Album      AlbumRef
	Artists    []ArtistRef
	// Track is 0 for songs without a track number.
	Track int
	// URL is the percent-encoded path to the file under the files
	// prefix.
	URL string
	// Path is the absolute filesystem path. Internal only; the API layer
	// never serializes it.
	Path string

	mu       sync.RWMutex
	coverURL string
}

// CoverURL returns the denormalized copy of the owning album's cover
// URL, or "" when the album has none.
func (s *Song) CoverURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.coverURL
}

func (s *Song) setCoverURL(url string) {
	s.mu.Lock()
	s.coverURL = url
	s.mu.Unlock()
}
