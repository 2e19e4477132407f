package catalog

import "strings"

// Sanitize maps a display name to its URL-safe slug: every character
// outside [A-Za-z0-9] becomes '-', then ASCII letters are lowercased.
// The replacement is per-rune, so a multi-byte character collapses to a
// single dash.
func Sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, name)
}
