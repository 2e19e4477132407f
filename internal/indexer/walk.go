package indexer

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// symWalk walks the tree rooted at absPath, resolving the root through
// symlinks first so a linked media directory walks like a real one.
// Visited paths are reported under the original prefix, not the resolved
// one, keeping catalog paths stable across mount layouts.
func symWalk(absPath string, fn fs.WalkDirFunc) error {
	eval, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", absPath, err)
	}
	return filepath.WalkDir(eval, func(subAbs string, d fs.DirEntry, err error) error {
		subAbs = strings.Replace(subAbs, eval, absPath, 1)
		return fn(subAbs, d, err)
	})
}
