package cover

import (
	"bytes"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

func TestGeneratedPath(t *testing.T) {
	got := GeneratedPath("/media/artist/album/01 Song.flac")
	expected := "/media/artist/album/01 Song.flac-ms1-cover-small-generated.jpg"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
	if !IsGenerated(got) {
		t.Errorf("Expected IsGenerated to recognize %q", got)
	}
	if IsGenerated("/media/artist/album/cover.jpg") {
		t.Error("Expected IsGenerated to reject a plain cover path")
	}
}

func TestRepairStrideExactFit(t *testing.T) {
	buf := make([]byte, 2*2*4)
	for i := range buf {
		buf[i] = byte(i)
	}

	got, err := repairStride(buf, 2, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !bytes.Equal(got, buf) {
		t.Error("Expected exact-size buffer to pass through unchanged")
	}
}

func TestRepairStridePadded(t *testing.T) {
	// 2x2 frame with rows padded to 12 bytes instead of 8
	width, height, stride := 2, 2, 12
	buf := make([]byte, stride*height)
	for row := 0; row < height; row++ {
		for i := 0; i < width*4; i++ {
			buf[row*stride+i] = byte(row*width*4 + i)
		}
		for i := width * 4; i < stride; i++ {
			buf[row*stride+i] = 0xFF // padding that must be stripped
		}
	}

	got, err := repairStride(buf, width, height)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(got) != width*height*4 {
		t.Fatalf("Expected %d bytes, got %d", width*height*4, len(got))
	}
	for i := range got {
		if got[i] != byte(i) {
			t.Errorf("Expected byte %d at index %d, got %d", i, i, got[i])
		}
	}
}

func TestRepairStrideTooShort(t *testing.T) {
	if _, err := repairStride(make([]byte, 10), 2, 2); err == nil {
		t.Error("Expected error for undersized buffer")
	}
}

func TestRepairStrideUnevenRows(t *testing.T) {
	// 19 bytes cannot split into 2 equal rows
	if _, err := repairStride(make([]byte, 19), 2, 2); err == nil {
		t.Error("Expected error for buffer not divisible into rows")
	}
}

func TestEncodeCoverFallback(t *testing.T) {
	// vips is not initialized in tests, so this exercises the imaging path
	img := image.NewNRGBA(image.Rect(0, 0, 800, 600))
	for i := range img.Pix {
		img.Pix[i] = byte(i % 251)
	}

	outPath := filepath.Join(t.TempDir(), "song.flac"+GeneratedSuffix)
	if err := encodeCover(img, outPath); err != nil {
		t.Fatalf("Failed to encode cover: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("Failed to read generated cover: %v", err)
	}
	decoded, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Generated cover is not a decodable JPEG: %v", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() > coverEdge || bounds.Dy() > coverEdge {
		t.Errorf("Expected cover within %dx%d, got %dx%d", coverEdge, coverEdge, bounds.Dx(), bounds.Dy())
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Pix[0] = 0xAB

	data, err := encodePNG(img)
	if err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to decode png intermediate: %v", err)
	}
	if format != "png" {
		t.Errorf("Expected png format, got %s", format)
	}
	if cfg.Width != 4 || cfg.Height != 4 {
		t.Errorf("Expected 4x4, got %dx%d", cfg.Width, cfg.Height)
	}
}
