package probe

import (
	"reflect"
	"testing"
)

func TestResolveContainerTags(t *testing.T) {
	result := &Result{
		FormatTags: map[string]string{
			"title":  "Song",
			"album":  "The Album",
			"artist": "The Artist",
			"track":  "3/10",
		},
	}

	md := Resolve(result, "/music/a/file.flac")
	if md.Title != "Song" {
		t.Errorf("Title = %q, want Song", md.Title)
	}
	if md.Album != "The Album" {
		t.Errorf("Album = %q, want The Album", md.Album)
	}
	if !reflect.DeepEqual(md.Artists, []string{"The Artist"}) {
		t.Errorf("Artists = %v, want [The Artist]", md.Artists)
	}
	if md.Track != 3 {
		t.Errorf("Track = %d, want 3", md.Track)
	}
}

func TestResolveStreamFallback(t *testing.T) {
	result := &Result{
		FormatTags: map[string]string{"title": "Song"},
		Streams: []Stream{
			{CodecType: "audio", Tags: map[string]string{"ALBUM": "Stream Album"}},
			{CodecType: "video", Tags: map[string]string{"artist": "Stream Artist", "track": "7"}},
		},
	}

	md := Resolve(result, "/music/a/file.flac")
	if md.Title != "Song" {
		t.Errorf("Container title should win, got %q", md.Title)
	}
	if md.Album != "Stream Album" {
		t.Errorf("Album should come from first stream, got %q", md.Album)
	}
	if !reflect.DeepEqual(md.Artists, []string{"Stream Artist"}) {
		t.Errorf("Artists = %v, want [Stream Artist]", md.Artists)
	}
	if md.Track != 7 {
		t.Errorf("Track = %d, want 7", md.Track)
	}
}

func TestResolveStreamOrderPrecedence(t *testing.T) {
	// The first stream carrying a field wins; later streams never
	// overwrite.
	result := &Result{
		FormatTags: map[string]string{},
		Streams: []Stream{
			{Tags: map[string]string{"album": "First"}},
			{Tags: map[string]string{"album": "Second"}},
		},
	}

	md := Resolve(result, "/music/a/file.flac")
	if md.Album != "First" {
		t.Errorf("Album = %q, want First", md.Album)
	}
}

func TestResolveTitleFallsBackToFilename(t *testing.T) {
	md := Resolve(&Result{}, "/music/a/Track07.flac")
	if md.Title != "Track07" {
		t.Errorf("Title = %q, want Track07", md.Title)
	}
	if md.Album != UnknownName {
		t.Errorf("Album = %q, want %s", md.Album, UnknownName)
	}
	if !reflect.DeepEqual(md.Artists, []string{UnknownName}) {
		t.Errorf("Artists = %v, want [%s]", md.Artists, UnknownName)
	}
	if md.Track != 0 {
		t.Errorf("Track = %d, want 0", md.Track)
	}
}

func TestResolveExtensionlessFilename(t *testing.T) {
	// The filename fallback requires a strippable extension; without one
	// the title degrades to the unknown literal.
	md := Resolve(&Result{}, "/music/a/noextension")
	if md.Title != UnknownName {
		t.Errorf("Title = %q, want %s", md.Title, UnknownName)
	}
}

func TestResolveArtistSplitting(t *testing.T) {
	tests := []struct {
		name     string
		artist   string
		expected []string
	}{
		{"ampersand and comma", "A & B, C", []string{"A", "B", "C"}},
		{"single artist", "Solo", []string{"Solo"}},
		{"comma only", "X, Y", []string{"X", "Y"}},
		{"ampersand needs spaces", "AC&DC", []string{"AC&DC"}},
		{"flexible comma spacing", "X ,  Y", []string{"X", "Y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &Result{FormatTags: map[string]string{"artist": tt.artist}}
			md := Resolve(result, "/music/a/file.flac")
			if !reflect.DeepEqual(md.Artists, tt.expected) {
				t.Errorf("Artists = %v, want %v", md.Artists, tt.expected)
			}
		})
	}
}

func TestParseTrack(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"7", 7},
		{"7/12", 7},
		{"01", 1},
		{"0", 0},
		{"0/10", 0},
		{"", 0},
		{"junk", 0},
		{"Track 5 of 12", 5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseTrack(tt.input); got != tt.expected {
				t.Errorf("parseTrack(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTitleFromFilename(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/music/a/Track07.flac", "Track07"},
		{"/music/a/a.b.c.mp3", "a.b.c"},
		{"/music/a/noext", ""},
		{"/music/a/.flac", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := titleFromFilename(tt.path); got != tt.expected {
				t.Errorf("titleFromFilename(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}
