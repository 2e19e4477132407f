package catalog

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"
)

// Catalog is the shared index of artists and albums keyed by unique
// name. A single writer populates it during the walk; after Freeze it
// serves unrestricted concurrent readers.
type Catalog struct {
	mu         sync.RWMutex
	artists    map[string]*Artist
	albums     map[string]*Album
	artistList []*Artist
	albumList  []*Album
	songCount  int
}

// Stats summarizes catalog contents.
type Stats struct {
	Artists         int
	Albums          int
	Songs           int
	CoverlessAlbums int
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		artists: make(map[string]*Artist),
		albums:  make(map[string]*Album),
	}
}

// GetOrInsertArtist resolves a display name to the artist's unique name,
// creating the artist if needed.
//
// The slug of the display name is probed first; if it is taken by a
// different display name, suffixes -1, -2, ... are probed in order until
// either an entry with the exact display name is found (idempotent
// re-insertion) or a free key appears. Distinct display names that
// sanitize identically therefore stay distinct artists.
func (c *Catalog) GetOrInsertArtist(name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getOrInsertArtistLocked(name)
}

func (c *Catalog) getOrInsertArtistLocked(name string) string {
	uniqueName := Sanitize(name)
	if found, ok := c.artists[uniqueName]; ok {
		if found.Name == name {
			return found.UniqueName
		}
		for i := 1; ; i++ {
			candidate := fmt.Sprintf("%s-%d", uniqueName, i)
			found, ok := c.artists[candidate]
			if !ok {
				uniqueName = candidate
				break
			}
			if found.Name == name {
				return found.UniqueName
			}
		}
	}
	c.artists[uniqueName] = newArtist(name, uniqueName)
	return uniqueName
}

// GetOrInsertAlbum resolves an album by display name with the same
// slug/suffix probing as artists, equality checked on the name alone.
// When the album already exists, artists from the incoming list that are
// not yet attached are appended and reciprocally linked, so an album
// accretes contributing artists across its songs. On first creation the
// album records path as the directory for generated covers.
func (c *Catalog) GetOrInsertAlbum(name string, artistNames []string, path string) *Album {
	c.mu.Lock()
	defer c.mu.Unlock()

	uniqueName := Sanitize(name)
	var found *Album
	if existing, ok := c.albums[uniqueName]; ok {
		if existing.Name == name {
			found = existing
		} else {
			for i := 1; ; i++ {
				candidate := fmt.Sprintf("%s-%d", uniqueName, i)
				existing, ok := c.albums[candidate]
				if !ok {
					uniqueName = candidate
					break
				}
				if existing.Name == name {
					found = existing
					break
				}
			}
		}
	}

	if found != nil {
		for _, artistName := range artistNames {
			if found.hasArtist(artistName) {
				continue
			}
			artistUnique := c.getOrInsertArtistLocked(artistName)
			found.addArtist(ArtistRef{Name: artistName, UniqueName: artistUnique})
			c.artists[artistUnique].linkAlbum(found)
		}
		return found
	}

	refs := make([]ArtistRef, 0, len(artistNames))
	for _, artistName := range artistNames {
		refs = append(refs, ArtistRef{Name: artistName, UniqueName: c.getOrInsertArtistLocked(artistName)})
	}
	album := newAlbum(name, uniqueName, path, refs)
	c.albums[uniqueName] = album
	for _, ref := range refs {
		c.artists[ref.UniqueName].linkAlbum(album)
	}
	return album
}

// InsertSong links a parsed media file into the catalog: the album is
// resolved or created (its path taken from the song's parent directory),
// the song's artists are resolved, the album's current cover URL is
// copied onto the song, and the song is stored at its track slot or
// appended untracked. Returns the owning album.
func (c *Catalog) InsertSong(in SongInput) *Album {
	album := c.GetOrInsertAlbum(in.Album, in.Artists, filepath.Dir(in.Path))

	refs := make([]ArtistRef, 0, len(in.Artists))
	for _, name := range in.Artists {
		refs = append(refs, ArtistRef{Name: name, UniqueName: c.GetOrInsertArtist(name)})
	}

	song := &Song{
		Title:      in.Title,
		UniqueName: Sanitize(in.Title),
		Album:      album.Ref(),
		Artists:    refs,
		Track:      in.Track,
		URL:        in.URL,
		Path:       in.Path,
		coverURL:   album.CoverURL(),
	}

	if in.Track > 0 {
		album.placeTracked(song, in.Track)
	} else {
		album.appendUntracked(song)
	}

	c.mu.Lock()
	c.songCount++
	c.mu.Unlock()
	return album
}

// Artist looks up an artist by unique name.
func (c *Catalog) Artist(uniqueName string) (*Artist, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	artist, ok := c.artists[uniqueName]
	return artist, ok
}

// Album looks up an album by unique name.
func (c *Catalog) Album(uniqueName string) (*Album, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	album, ok := c.albums[uniqueName]
	return album, ok
}

// CoverlessAlbums returns the albums that still have no cover attached.
func (c *Catalog) CoverlessAlbums() []*Album {
	c.mu.RLock()
	albums := make([]*Album, 0, len(c.albums))
	for _, album := range c.albums {
		albums = append(albums, album)
	}
	c.mu.RUnlock()

	coverless := albums[:0]
	for _, album := range albums {
		if album.CoverRating() == 0 {
			coverless = append(coverless, album)
		}
	}
	return coverless
}

// Freeze computes the sorted artist and album listings. Call once after
// all mutation is done; Artists and Albums return nothing before then.
func (c *Catalog) Freeze() {
	c.mu.Lock()
	defer c.mu.Unlock()

	artistNames := make([]string, 0, len(c.artists))
	for name := range c.artists {
		artistNames = append(artistNames, name)
	}
	sort.Strings(artistNames)
	c.artistList = make([]*Artist, 0, len(artistNames))
	for _, name := range artistNames {
		c.artistList = append(c.artistList, c.artists[name])
	}

	albumNames := make([]string, 0, len(c.albums))
	for name := range c.albums {
		albumNames = append(albumNames, name)
	}
	sort.Strings(albumNames)
	c.albumList = make([]*Album, 0, len(albumNames))
	for _, name := range albumNames {
		c.albumList = append(c.albumList, c.albums[name])
	}
}

// Artists returns all artists sorted by unique name. Callers must not
// modify the returned slice.
func (c *Catalog) Artists() []*Artist {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.artistList
}

// Albums returns all albums sorted by unique name. Callers must not
// modify the returned slice.
func (c *Catalog) Albums() []*Album {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.albumList
}

// Stats returns current catalog counts.
func (c *Catalog) Stats() Stats {
	c.mu.RLock()
	stats := Stats{
		Artists: len(c.artists),
		Albums:  len(c.albums),
		Songs:   c.songCount,
	}
	albums := make([]*Album, 0, len(c.albums))
	for _, album := range c.albums {
		albums = append(albums, album)
	}
	c.mu.RUnlock()

	for _, album := range albums {
		if album.CoverRating() == 0 {
			stats.CoverlessAlbums++
		}
	}
	return stats
}
