package handlers

import (
	"net/http"

	"music-server/internal/catalog"
	"music-server/internal/logging"

	"github.com/gorilla/mux"
)

const errNoSuchResource = "no such resource"

// albumResponse is the wire form of an album. Songs is the sparse
// track-ordered sequence: entry i names the song with track i+1 or is
// null for an empty slot, with untracked songs after all slots.
type albumResponse struct {
	Name              string    `json:"name"`
	UniqueName        string    `json:"unique_name"`
	Artists           []string  `json:"artists"`
	ArtistUniqueNames []string  `json:"artist_unique_names"`
	Songs             []*string `json:"songs"`
	CoverURL          *string   `json:"cover_url"`
	Tracked           bool      `json:"tracked"`
}

// artistResponse is the wire form of an artist. Albums holds the unique
// names of the artist's albums in sorted order.
type artistResponse struct {
	Name       string   `json:"name"`
	UniqueName string   `json:"unique_name"`
	Albums     []string `json:"albums"`
	CoverURL   *string  `json:"cover_url"`
}

// songResponse is the wire form of a song. Track is null for songs
// without a track number.
type songResponse struct {
	Title             string   `json:"title"`
	UniqueName        string   `json:"unique_name"`
	Album             string   `json:"album"`
	AlbumUniqueName   string   `json:"album_unique_name"`
	Artists           []string `json:"artists"`
	ArtistUniqueNames []string `json:"artist_unique_names"`
	Track             *int     `json:"track"`
	CoverURL          *string  `json:"cover_url"`
	URL               string   `json:"url"`
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalTrack(track int) *int {
	if track == 0 {
		return nil
	}
	return &track
}

// splitArtistRefs splits artist references into the parallel name and
// unique name arrays the API exposes.
func splitArtistRefs(refs []catalog.ArtistRef) ([]string, []string) {
	names := make([]string, 0, len(refs))
	uniqueNames := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Name)
		uniqueNames = append(uniqueNames, ref.UniqueName)
	}
	return names, uniqueNames
}

func newAlbumResponse(album *catalog.Album) albumResponse {
	names, uniqueNames := splitArtistRefs(album.Artists())

	slots := album.SongSlots()
	songs := make([]*string, 0, len(slots))
	for _, song := range slots {
		if song == nil {
			songs = append(songs, nil)
			continue
		}
		name := song.UniqueName
		songs = append(songs, &name)
	}

	return albumResponse{
		Name:              album.Name,
		UniqueName:        album.UniqueName,
		Artists:           names,
		ArtistUniqueNames: uniqueNames,
		Songs:             songs,
		CoverURL:          optionalString(album.CoverURL()),
		Tracked:           album.Tracked(),
	}
}

func newArtistResponse(artist *catalog.Artist) artistResponse {
	return artistResponse{
		Name:       artist.Name,
		UniqueName: artist.UniqueName,
		Albums:     artist.AlbumNames(),
		CoverURL:   optionalString(artist.CoverURL()),
	}
}

func newSongResponse(song *catalog.Song) songResponse {
	names, uniqueNames := splitArtistRefs(song.Artists)

	return songResponse{
		Title:             song.Title,
		UniqueName:        song.UniqueName,
		Album:             song.Album.Name,
		AlbumUniqueName:   song.Album.UniqueName,
		Artists:           names,
		ArtistUniqueNames: uniqueNames,
		Track:             optionalTrack(song.Track),
		CoverURL:          optionalString(song.CoverURL()),
		URL:               song.URL,
	}
}

// ListAlbums returns all albums sorted by unique name.
func (h *Handlers) ListAlbums(w http.ResponseWriter, _ *http.Request) {
	albums := h.cat.Albums()
	logging.Debug("Listing %d albums", len(albums))

	response := make([]albumResponse, 0, len(albums))
	for _, album := range albums {
		response = append(response, newAlbumResponse(album))
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, response)
}

// ListArtists returns all artists sorted by unique name.
func (h *Handlers) ListArtists(w http.ResponseWriter, _ *http.Request) {
	artists := h.cat.Artists()
	logging.Debug("Listing %d artists", len(artists))

	response := make([]artistResponse, 0, len(artists))
	for _, artist := range artists {
		response = append(response, newArtistResponse(artist))
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, response)
}

// GetAlbum returns a single album by unique name.
func (h *Handlers) GetAlbum(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	albumName := vars["album_name"]

	album, ok := h.cat.Album(albumName)
	if !ok {
		logging.Debug("Album %q not found", albumName)
		writeJSONError(w, errNoSuchResource, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, newAlbumResponse(album))
}

// GetArtist returns a single artist by unique name.
func (h *Handlers) GetArtist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	artistName := vars["artist_name"]

	artist, ok := h.cat.Artist(artistName)
	if !ok {
		logging.Debug("Artist %q not found", artistName)
		writeJSONError(w, errNoSuchResource, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, newArtistResponse(artist))
}

// GetSong returns a single song addressed by album and song unique name.
func (h *Handlers) GetSong(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	albumName := vars["album_name"]
	songName := vars["song_name"]

	album, ok := h.cat.Album(albumName)
	if !ok {
		logging.Debug("Album %q not found", albumName)
		writeJSONError(w, errNoSuchResource, http.StatusNotFound)
		return
	}

	song, ok := album.Song(songName)
	if !ok {
		logging.Debug("Song %q not found in album %q", songName, albumName)
		writeJSONError(w, errNoSuchResource, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, newSongResponse(song))
}
