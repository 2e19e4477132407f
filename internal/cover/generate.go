package cover

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"os/exec"
	"strings"

	"music-server/internal/logging"
	"music-server/internal/probe"

	"github.com/disintegration/imaging"
)

// GeneratedSuffix is appended to a song's filename to name its generated
// cover. The name deliberately contains "cover" and "small" so the file
// is picked up like any discovered cover on later runs.
const GeneratedSuffix = "-ms1-cover-small-generated.jpg"

const (
	// coverEdge bounds the longer edge of a generated cover.
	coverEdge   = 500
	jpegQuality = 80
)

// GeneratedPath returns where the generated cover for a song file goes:
// right next to it.
func GeneratedPath(songPath string) string {
	return songPath + GeneratedSuffix
}

// IsGenerated reports whether a path names a cover this package wrote.
func IsGenerated(path string) bool {
	return strings.HasSuffix(path, GeneratedSuffix)
}

// GenerateFromSong decodes one frame from the song's video stream,
// repairs stride padding, downscales, and writes the JPEG next to the
// song. Returns the written path.
func GenerateFromSong(ctx context.Context, songPath string, stream probe.Stream) (string, error) {
	if stream.Width <= 0 || stream.Height <= 0 {
		return "", fmt.Errorf("generate cover %s: video stream has no dimensions", songPath)
	}

	raw, err := extractFrame(ctx, songPath)
	if err != nil {
		return "", err
	}

	pixels, err := repairStride(raw, stream.Width, stream.Height)
	if err != nil {
		return "", fmt.Errorf("generate cover %s: %w", songPath, err)
	}

	img := &image.NRGBA{
		Pix:    pixels,
		Stride: stream.Width * 4,
		Rect:   image.Rect(0, 0, stream.Width, stream.Height),
	}

	outPath := GeneratedPath(songPath)
	if err := encodeCover(img, outPath); err != nil {
		return "", fmt.Errorf("generate cover %s: %w", songPath, err)
	}
	return outPath, nil
}

// extractFrame asks ffmpeg for exactly one frame as packed RGBA.
func extractFrame(ctx context.Context, songPath string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-i", songPath,
		"-vframes", "1",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("decode frame %s: %w - %s", songPath, err, strings.TrimSpace(stderr.String()))
	}
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("decode frame %s: ffmpeg produced no output", songPath)
	}
	return stdout.Bytes(), nil
}

// repairStride normalizes a decoded RGBA buffer to width*height*4 bytes.
// Decoders pad rows to alignment boundaries; the excess is spread evenly
// across rows, so each row keeps its first width*4 bytes. A single
// truncation would shear the image.
func repairStride(buf []byte, width, height int) ([]byte, error) {
	expected := width * height * 4
	if len(buf) == expected {
		return buf, nil
	}
	if len(buf) < expected {
		return nil, fmt.Errorf("frame buffer too short: %d bytes for %dx%d", len(buf), width, height)
	}
	if len(buf)%height != 0 {
		return nil, fmt.Errorf("frame buffer length %d not divisible into %d rows", len(buf), height)
	}

	stride := len(buf) / height
	rowBytes := width * 4
	out := make([]byte, 0, expected)
	for row := 0; row < height; row++ {
		start := row * stride
		out = append(out, buf[start:start+rowBytes]...)
	}
	return out, nil
}

// encodeCover downscales and writes the cover JPEG, through libvips when
// available and pure-Go imaging otherwise.
func encodeCover(img *image.NRGBA, outPath string) error {
	if IsVipsAvailable() {
		data, err := vipsEncodeJpeg(img)
		if err == nil {
			return os.WriteFile(outPath, data, 0644)
		}
		logging.Debug("vips encode failed for %s, falling back to imaging: %v", outPath, err)
	}

	thumb := imaging.Fit(img, coverEdge, coverEdge, imaging.Lanczos)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("encoding jpeg: %w", err)
	}
	return os.WriteFile(outPath, buf.Bytes(), 0644)
}

// encodePNG is the lossless intermediate handed to vips.
func encodePNG(img *image.NRGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png intermediate: %w", err)
	}
	return buf.Bytes(), nil
}
