package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
)

// GetFile serves a media or cover file from the base directory. Range
// requests are honored so players can seek.
func (h *Handlers) GetFile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	filePath := vars["path"]

	fullPath := filepath.Join(h.baseDir, filePath)

	// Security check
	absPath, err := filepath.Abs(fullPath)
	if err != nil || !isSubPath(h.baseDir, absPath) {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	http.ServeFile(w, r, absPath)
}

// isSubPath reports whether child is parent or lies under it. The
// comparison is separator-aware so /media2 does not pass for /media.
func isSubPath(parent, child string) bool {
	parent, _ = filepath.Abs(parent)
	child, _ = filepath.Abs(child)
	if child == parent {
		return true
	}
	return strings.HasPrefix(child, parent+string(filepath.Separator))
}
