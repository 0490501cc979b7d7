// Package stringsx holds small string helpers shared across commands.
package stringsx

import "strings"

// FirstNonEmpty returns the first string in vals that is non-empty when
// trimmed, with surrounding whitespace removed.
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
