package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
)

func newFileTestHandlers(t *testing.T) (*Handlers, string) {
	t.Helper()
	baseDir := t.TempDir()
	h := New(buildTestCatalog(), stubIndexStatus{}, testConfig(baseDir))
	return h, baseDir
}

func writeTestFile(t *testing.T, baseDir, rel, content string) {
	t.Helper()
	full := filepath.Join(baseDir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
}

func TestGetFileServesContent(t *testing.T) {
	h, baseDir := newFileTestHandlers(t)
	writeTestFile(t, baseDir, "Abbey Road/01 Come Together.flac", "fLaC-data")

	req := httptest.NewRequest(http.MethodGet, "/cdn/files/Abbey%20Road/01%20Come%20Together.flac", http.NoBody)
	req = mux.SetURLVars(req, map[string]string{"path": "Abbey Road/01 Come Together.flac"})
	w := httptest.NewRecorder()

	h.GetFile(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	if body := w.Body.String(); body != "fLaC-data" {
		t.Errorf("Expected file content, got %q", body)
	}

	if ar := w.Header().Get("Accept-Ranges"); ar != "bytes" {
		t.Errorf("Expected Accept-Ranges bytes, got %q", ar)
	}
}

func TestGetFileRangeRequest(t *testing.T) {
	h, baseDir := newFileTestHandlers(t)
	writeTestFile(t, baseDir, "album/track.mp3", "0123456789")

	req := httptest.NewRequest(http.MethodGet, "/cdn/files/album/track.mp3", http.NoBody)
	req = mux.SetURLVars(req, map[string]string{"path": "album/track.mp3"})
	req.Header.Set("Range", "bytes=2-5")
	w := httptest.NewRecorder()

	h.GetFile(w, req)

	if w.Code != http.StatusPartialContent {
		t.Fatalf("Expected status 206, got %d", w.Code)
	}

	if body := w.Body.String(); body != "2345" {
		t.Errorf("Expected partial content 2345, got %q", body)
	}
}

func TestGetFileNotFound(t *testing.T) {
	h, _ := newFileTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/cdn/files/missing.flac", http.NoBody)
	req = mux.SetURLVars(req, map[string]string{"path": "missing.flac"})
	w := httptest.NewRecorder()

	h.GetFile(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestGetFileTraversalBlocked(t *testing.T) {
	h, baseDir := newFileTestHandlers(t)

	// A real file one level above the media dir
	secret := filepath.Join(filepath.Dir(baseDir), "secret.txt")
	if err := os.WriteFile(secret, []byte("secret"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"Parent escape", "../secret.txt"},
		{"Deep escape", "../../etc/passwd"},
		{"Escape inside subdirectory", "album/../../secret.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/cdn/files/x", http.NoBody)
			req = mux.SetURLVars(req, map[string]string{"path": tt.path})
			w := httptest.NewRecorder()

			h.GetFile(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400 for %q, got %d", tt.path, w.Code)
			}
		})
	}
}

func TestIsSubPath(t *testing.T) {
	tests := []struct {
		name     string
		parent   string
		child    string
		expected bool
	}{
		{"Direct child", "/media", "/media/track.flac", true},
		{"Nested child", "/media", "/media/album/track.flac", true},
		{"Parent itself", "/media", "/media", true},
		{"Sibling with shared prefix", "/media", "/media2/track.flac", false},
		{"Outside", "/media", "/etc/passwd", false},
		{"Parent directory", "/media", "/", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := isSubPath(tt.parent, tt.child)
			if result != tt.expected {
				t.Errorf("isSubPath(%q, %q) = %v, want %v", tt.parent, tt.child, result, tt.expected)
			}
		})
	}
}
