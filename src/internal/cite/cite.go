// Package cite renders bibliographic records as formatted citation strings
// in APA and IEEE styles, and collects them into bibliographies.
package cite

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"citekit/src/internal/dates"
	"citekit/src/internal/names"
)

var (
	// ErrDuplicateID is returned when a citation id is already present in a
	// bibliography.
	ErrDuplicateID = errors.New("duplicate citation id")
	// ErrUnsupportedStyle is returned when a media kind has no rendering for
	// the requested style.
	ErrUnsupportedStyle = errors.New("unsupported style for media kind")
)

// Typographic quotation marks around quoted chapter titles.
const (
	leftQuote  = "“"
	rightQuote = "”"
)

// enDash joins numeric ranges such as page spans.
const enDash = "–"

// Style selects a citation style.
type Style int

const (
	StyleAPA Style = iota
	StyleIEEE
)

func (s Style) String() string {
	switch s {
	case StyleAPA:
		return "apa"
	case StyleIEEE:
		return "ieee"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

// ParseStyle maps "apa" or "ieee" (any case) to a Style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "apa":
		return StyleAPA, nil
	case "ieee":
		return StyleIEEE, nil
	default:
		return 0, fmt.Errorf("unknown style %q", s)
	}
}

// Kind identifies a media kind.
type Kind int

const (
	KindBook Kind = iota
	KindOnlineManual
	KindOnlineVideo
	KindConferencePaper
	KindConferenceProceedings
)

func (k Kind) String() string {
	switch k {
	case KindBook:
		return "book"
	case KindOnlineManual:
		return "online manual"
	case KindOnlineVideo:
		return "online video"
	case KindConferencePaper:
		return "conference paper"
	case KindConferenceProceedings:
		return "conference proceedings"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Citation is the closed set of citable media. Only the types in this
// package implement it; adding a kind means touching every exhaustive
// switch over kinds.
type Citation interface {
	ID() string
	Title() string
	Author() names.Author
	Published() (dates.PublishDate, bool)
	Kind() Kind
	FormatAPA() (string, error)
	FormatIEEE() (string, error)
	sealed()
}

// Format renders c in the requested style.
func Format(c Citation, style Style) (string, error) {
	switch style {
	case StyleAPA:
		return c.FormatAPA()
	case StyleIEEE:
		return c.FormatIEEE()
	default:
		return "", fmt.Errorf("unknown style %d", int(style))
	}
}

// common carries the fields every media kind shares.
type common struct {
	id        string
	title     string
	author    names.Author
	published *dates.PublishDate
}

func (c common) ID() string           { return c.id }
func (c common) Title() string        { return c.title }
func (c common) Author() names.Author { return c.author }

// Published returns the publication date; ok is false when it is unknown.
func (c common) Published() (dates.PublishDate, bool) {
	if c.published == nil {
		return dates.PublishDate{}, false
	}
	return *c.published, true
}

func (common) sealed() {}

// clonePtr copies an optional field so the record cannot be reached through
// the caller's pointer after construction.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// joinParts assembles a citation from sentence parts, each carrying its own
// punctuation.
func joinParts(parts []string) string { return strings.Join(parts, " ") }

// ensurePeriod appends a final period unless s already ends with one.
func ensurePeriod(s string) string {
	if strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}

// unsupported reports a style/kind combination that has no rendering.
func unsupported(k Kind, s Style) error {
	return fmt.Errorf("%w: %s in %s", ErrUnsupportedStyle, k, s)
}

// PageRange is an inclusive span of pages. Bounds are non-negative by
// contract.
type PageRange struct {
	Start int
	End   int
}

// String renders "11–42".
func (p PageRange) String() string {
	return strconv.Itoa(p.Start) + enDash + strconv.Itoa(p.End)
}
