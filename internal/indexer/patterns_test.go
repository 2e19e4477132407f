package indexer

import (
	"testing"
)

func TestCompilePatternsAndMatch(t *testing.T) {
	set, err := CompilePatterns(`.*\.flac$,.*\.mp3$`, "")
	if err != nil {
		t.Fatalf("Failed to compile patterns: %v", err)
	}

	tests := []struct {
		path     string
		expected bool
	}{
		{"/media/a/song.flac", true},
		{"/media/a/song.mp3", true},
		{"/media/a/song.ogg", false},
		{"/media/a/song.flac.bak", false},
		{"/media/a/cover.jpg", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := set.Match(tt.path); got != tt.expected {
				t.Errorf("Expected Match(%q)=%v, got %v", tt.path, tt.expected, got)
			}
		})
	}
}

func TestCompilePatternsExclude(t *testing.T) {
	set, err := CompilePatterns(`.*\.jpg$`, `.*thumb.*`)
	if err != nil {
		t.Fatalf("Failed to compile patterns: %v", err)
	}

	if !set.Match("/media/a/cover.jpg") {
		t.Error("Expected cover.jpg to match")
	}
	if set.Match("/media/a/thumb-cover.jpg") {
		t.Error("Expected excluded path not to match")
	}
}

func TestCompilePatternsEmptyIncludeMatchesNothing(t *testing.T) {
	set, err := CompilePatterns("", "")
	if err != nil {
		t.Fatalf("Failed to compile patterns: %v", err)
	}
	if set.Match("/media/a/song.flac") {
		t.Error("Expected empty include list to match nothing")
	}
}

func TestCompilePatternsTrimsWhitespace(t *testing.T) {
	set, err := CompilePatterns(` .*\.png$ , .*\.jpg$ `, "")
	if err != nil {
		t.Fatalf("Failed to compile patterns: %v", err)
	}
	if !set.Match("a.png") || !set.Match("b.jpg") {
		t.Error("Expected both whitespace-padded patterns to compile and match")
	}
}

func TestCompilePatternsInvalidRegex(t *testing.T) {
	if _, err := CompilePatterns(`[unclosed`, ""); err == nil {
		t.Error("Expected error for invalid include pattern")
	}
	if _, err := CompilePatterns(`.*\.jpg$`, `[unclosed`); err == nil {
		t.Error("Expected error for invalid exclude pattern")
	}
}
