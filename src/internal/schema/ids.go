package schema

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NewID returns a fresh random citation id.
func NewID() string { return uuid.NewString() }

var (
	nonAlnum     = regexp.MustCompile(`[^a-z0-9]+`)
	dashCollapse = regexp.MustCompile(`-+`)
)

// Slugify generates an id-friendly slug from a title and optional year:
// "Café Life" + 2023 -> "cafe-life-2023". Accented characters reduce to
// their ASCII base; anything else non-alphanumeric becomes a hyphen.
func Slugify(title string, year *int) string {
	t := strings.ToLower(strings.TrimSpace(stripMarks(title)))
	t = nonAlnum.ReplaceAllString(t, "-")
	t = dashCollapse.ReplaceAllString(t, "-")
	t = strings.Trim(t, "-")
	if year != nil {
		return fmt.Sprintf("%s-%d", t, *year)
	}
	return t
}

// stripMarks decomposes accented characters and drops the combining marks.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
