package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// Stream is one media stream as reported by ffprobe.
type Stream struct {
	CodecType string            `json:"codec_type"`
	CodecName string            `json:"codec_name"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Tags      map[string]string `json:"tags"`
}

// Result is the probed metadata document of one media file.
type Result struct {
	FormatTags map[string]string
	Streams    []Stream
}

type ffprobeOutput struct {
	Format struct {
		Tags map[string]string `json:"tags"`
	} `json:"format"`
	Streams []Stream `json:"streams"`
}

// VideoStream returns the first video stream, if any. Embedded album art
// counts: ffprobe reports attached pictures as video streams, and a
// decoded art frame is exactly what the cover generator wants.
func (r *Result) VideoStream() (Stream, bool) {
	for _, stream := range r.Streams {
		if stream.CodecType == "video" {
			return stream, true
		}
	}
	return Stream{}, false
}

// Probe runs ffprobe on path and decodes its JSON document.
func Probe(ctx context.Context, path string) (*Result, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("probe %s: %w - %s", path, err, strings.TrimSpace(stderr.String()))
	}

	result, err := parseOutput(stdout.Bytes())
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", path, err)
	}
	return result, nil
}

func parseOutput(data []byte) (*Result, error) {
	var out ffprobeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decoding ffprobe output: %w", err)
	}
	return &Result{
		FormatTags: out.Format.Tags,
		Streams:    out.Streams,
	}, nil
}

// tagValue looks up a tag by key, case-insensitively. Containers are
// inconsistent here: FLAC reports TITLE, most others title.
func tagValue(tags map[string]string, key string) string {
	if v, ok := tags[key]; ok {
		return v
	}
	for k, v := range tags {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}
