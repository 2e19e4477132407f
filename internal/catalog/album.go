package catalog

import "sync"

// AlbumRef is a lightweight reference to an album by display name and
// catalog key.
type AlbumRef struct {
	Name       string
	UniqueName string
}

// Album is a catalog album. Name, UniqueName, and Path are fixed at
// creation; everything else is mutated while songs and covers arrive, one
// lock-protected step at a time.
//
// The songs slice is sparse and track-indexed: slot i holds the song with
// track number i+1 or nil. Songs without a track number are appended
// after all tracked slots in discovery order.
type Album struct {
	Name       string
	UniqueName string
	// Path is the directory of the album's first indexed song. The
	// fallback cover generator writes its output there.
	Path string

	mu          sync.RWMutex
	artists     []ArtistRef
	songs       []*Song
	songsByName map[string]*Song
	coverURL    string
	coverRating uint32
	tracked     bool
}

func newAlbum(name, uniqueName, path string, artists []ArtistRef) *Album {
	return &Album{
		Name:        name,
		UniqueName:  uniqueName,
		Path:        path,
		artists:     artists,
		songsByName: make(map[string]*Song),
	}
}

// Ref returns the album's lightweight reference.
func (a *Album) Ref() AlbumRef {
	return AlbumRef{Name: a.Name, UniqueName: a.UniqueName}
}

// Artists returns a copy of the album's artist references in attachment
// order.
func (a *Album) Artists() []ArtistRef {
	a.mu.RLock()
	defer a.mu.RUnlock()
	refs := make([]ArtistRef, len(a.artists))
	copy(refs, a.artists)
	return refs
}

// hasArtist reports whether an artist with the given display name is
// already attached.
func (a *Album) hasArtist(name string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, ref := range a.artists {
		if ref.Name == name {
			return true
		}
	}
	return false
}

// addArtist appends a contributing artist reference.
func (a *Album) addArtist(ref ArtistRef) {
	a.mu.Lock()
	a.artists = append(a.artists, ref)
	a.mu.Unlock()
}

// SongSlots returns a copy of the sparse song sequence; nil entries are
// empty track slots.
func (a *Album) SongSlots() []*Song {
	a.mu.RLock()
	defer a.mu.RUnlock()
	songs := make([]*Song, len(a.songs))
	copy(songs, a.songs)
	return songs
}

// Song looks up a song by its unique name.
func (a *Album) Song(uniqueName string) (*Song, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	song, ok := a.songsByName[uniqueName]
	return song, ok
}

// SongCount returns the number of songs reachable by name.
func (a *Album) SongCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.songsByName)
}

// Tracked reports whether at least one song carries a track number.
func (a *Album) Tracked() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.tracked
}

// CoverURL returns the album's current cover URL, or "" when none is
// attached.
func (a *Album) CoverURL() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.coverURL
}

// CoverRating returns the rating of the current cover; 0 means the album
// has no cover.
func (a *Album) CoverRating() uint32 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.coverRating
}

// placeTracked stores a song at its track slot (track numbers are
// 1-based), growing the sparse sequence as needed and marking the album
// tracked. A later song with the same track number overwrites the slot;
// last writer wins.
func (a *Album) placeTracked(song *Song, track int) {
	a.mu.Lock()
	a.tracked = true
	for len(a.songs) < track {
		a.songs = append(a.songs, nil)
	}
	a.songs[track-1] = song
	a.songsByName[song.UniqueName] = song
	a.mu.Unlock()
}

// appendUntracked appends a song with no track number after all existing
// slots.
func (a *Album) appendUntracked(song *Song) {
	a.mu.Lock()
	a.songs = append(a.songs, song)
	a.songsByName[song.UniqueName] = song
	a.mu.Unlock()
}

// SetCover attaches a cover candidate. The candidate wins only with a
// rating strictly greater than the current one; on a win the new URL is
// written through to every song currently attached to the album. Returns
// whether the cover was replaced.
func (a *Album) SetCover(url string, rating uint32) bool {
	a.mu.Lock()
	if rating <= a.coverRating {
		a.mu.Unlock()
		return false
	}
	a.coverURL = url
	a.coverRating = rating
	songs := make([]*Song, 0, len(a.songsByName))
	for _, song := range a.songsByName {
		songs = append(songs, song)
	}
	a.mu.Unlock()

	// Song locks are taken one at a time, outside the album lock.
	for _, song := range songs {
		song.setCoverURL(url)
	}
	return true
}
