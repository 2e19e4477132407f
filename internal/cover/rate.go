package cover

import (
	"os"
	"path/filepath"
	"strings"
)

// Rate scores a cover candidate file. 0 means unusable (missing or
// empty); otherwise the base score 1 gains +100 when the filename
// contains "cover" and a further +20 when it also contains "small".
// Matching is case-sensitive and looks at the base name only.
func Rate(path string) uint32 {
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		return 0
	}
	return rateName(filepath.Base(path))
}

func rateName(name string) uint32 {
	rating := uint32(1)
	if strings.Contains(name, "cover") {
		rating += 100
		if strings.Contains(name, "small") {
			rating += 20
		}
	}
	return rating
}
