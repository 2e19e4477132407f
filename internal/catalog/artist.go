package catalog

import (
	"sort"
	"sync"
)

// ArtistRef is a lightweight reference to an artist by display name and
// catalog key.
type ArtistRef struct {
	Name       string
	UniqueName string
}

// Artist is a catalog artist. Name and UniqueName are fixed at creation;
// the album back-references grow as the walk discovers more of the
// artist's albums.
type Artist struct {
	Name       string
	UniqueName string

	mu       sync.RWMutex
	albums   map[string]*Album
	coverURL string
}

func newArtist(name, uniqueName string) *Artist {
	return &Artist{
		Name:       name,
		UniqueName: uniqueName,
		albums:     make(map[string]*Album),
	}
}

// Ref returns the artist's lightweight reference.
func (a *Artist) Ref() ArtistRef {
	return ArtistRef{Name: a.Name, UniqueName: a.UniqueName}
}

// AlbumNames returns the unique names of the artist's albums in sorted
// order.
func (a *Artist) AlbumNames() []string {
	a.mu.RLock()
	names := make([]string, 0, len(a.albums))
	for name := range a.albums {
		names = append(names, name)
	}
	a.mu.RUnlock()
	sort.Strings(names)
	return names
}

// CoverURL returns the artist's cover URL, or "" when unset. Artist
// covers are a reserved attribute; the indexing pipeline never sets one.
func (a *Artist) CoverURL() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.coverURL
}

// linkAlbum records a back-reference from the artist to one of its
// albums.
func (a *Artist) linkAlbum(album *Album) {
	a.mu.Lock()
	a.albums[album.UniqueName] = album
	a.mu.Unlock()
}
