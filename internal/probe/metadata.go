package probe

import (
	"path/filepath"
	"regexp"
	"strconv"
)

// UnknownName stands in for an artist or album that no tag resolves.
const UnknownName = "Unknown"

var (
	trackPattern       = regexp.MustCompile(`(\d+)(/\d+)?`)
	stripSuffixPattern = regexp.MustCompile(`(.+)\.[^.]+$`)
	artistSplitPattern = regexp.MustCompile(` +& +| *, +`)
)

// Metadata is the resolved song metadata for one media file.
type Metadata struct {
	Title   string
	Album   string
	Artists []string
	// Track is 0 when the file carries no usable track number.
	Track int
}

// Resolve turns a probed document into song metadata. Container tags are
// consulted first; streams fill remaining gaps in order, stopping early
// once every field is known; an absent title falls back to the filename
// with its extension stripped; artist and album fall back to "Unknown".
// The artist string splits on " & " and ", " into multiple names.
func Resolve(result *Result, path string) Metadata {
	title := tagValue(result.FormatTags, "title")
	album := tagValue(result.FormatTags, "album")
	artist := tagValue(result.FormatTags, "artist")
	track := parseTrack(tagValue(result.FormatTags, "track"))

	for _, stream := range result.Streams {
		if title != "" && album != "" && artist != "" && track != 0 {
			break
		}
		if title == "" {
			title = tagValue(stream.Tags, "title")
		}
		if album == "" {
			album = tagValue(stream.Tags, "album")
		}
		if artist == "" {
			artist = tagValue(stream.Tags, "artist")
		}
		if track == 0 {
			track = parseTrack(tagValue(stream.Tags, "track"))
		}
	}

	if title == "" {
		title = titleFromFilename(path)
	}
	if title == "" {
		title = UnknownName
	}
	if album == "" {
		album = UnknownName
	}
	if artist == "" {
		artist = UnknownName
	}

	return Metadata{
		Title:   title,
		Album:   album,
		Artists: artistSplitPattern.Split(artist, -1),
		Track:   track,
	}
}

// parseTrack extracts the numerator from track values like "7" or
// "7/12". A parsed 0 counts as absent.
func parseTrack(value string) int {
	if value == "" {
		return 0
	}
	m := trackPattern.FindStringSubmatch(value)
	if m == nil {
		return 0
	}
	track, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return track
}

// titleFromFilename strips the extension from the path's base name. A
// name with no extension yields "", pushing the caller to the unknown
// literal.
func titleFromFilename(path string) string {
	base := filepath.Base(path)
	m := stripSuffixPattern.FindStringSubmatch(base)
	if m == nil {
		return ""
	}
	return m[1]
}
