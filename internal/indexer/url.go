package indexer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// fileURL builds the public URL for a file under the base directory:
// the configured prefix joined with the percent-encoded relative path.
func fileURL(filesURL, baseDir, path string) (string, error) {
	rel, err := filepath.Rel(baseDir, path)
	if err != nil {
		return "", fmt.Errorf("relativize %s: %w", path, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s is outside the media directory", path)
	}
	return filesURL + "/" + encodePath(filepath.ToSlash(rel)), nil
}

// encodePath percent-encodes every byte outside [A-Za-z0-9/-_.+] as
// uppercase %XX. Slashes stay literal so the result remains a path;
// net/url has no escaping mode with exactly this safe set.
func encodePath(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if urlSafeByte(c) {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

func urlSafeByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '/', c == '-', c == '_', c == '.', c == '+':
		return true
	}
	return false
}
