package cite

import (
	"fmt"
	"slices"
	"time"

	"citekit/src/internal/dates"
)

// Bibliography owns an ordered collection of citations with unique ids. The
// zero value is ready to use. It is not safe for concurrent use.
type Bibliography struct {
	citations []Citation
}

// NewBibliography returns an empty bibliography.
func NewBibliography() *Bibliography { return &Bibliography{} }

// Add appends c to the collection. Adding an id that is already present
// fails with ErrDuplicateID and leaves the collection unchanged.
func (b *Bibliography) Add(c Citation) error {
	for _, have := range b.citations {
		if have.ID() == c.ID() {
			return fmt.Errorf("%w: %s", ErrDuplicateID, c.ID())
		}
	}
	b.citations = append(b.citations, c)
	return nil
}

// Get returns the citation with the given id.
func (b *Bibliography) Get(id string) (Citation, bool) {
	for _, c := range b.citations {
		if c.ID() == id {
			return c, true
		}
	}
	return nil, false
}

// Citations returns the collection in its current order.
func (b *Bibliography) Citations() []Citation {
	out := make([]Citation, len(b.citations))
	copy(out, b.citations)
	return out
}

// Remove deletes the citation with the given id, keeping the order of the
// rest, and reports whether anything was removed.
func (b *Bibliography) Remove(id string) bool {
	for i, c := range b.citations {
		if c.ID() == id {
			b.citations = append(b.citations[:i], b.citations[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of citations.
func (b *Bibliography) Len() int { return len(b.citations) }

// SortByPublishDate orders citations newest first. The sort is stable, so
// equal dates and undated citations keep their insertion order; undated
// citations sort last.
func (b *Bibliography) SortByPublishDate() {
	slices.SortStableFunc(b.citations, func(x, y Citation) int {
		return sortDate(y).Compare(sortDate(x))
	})
}

// sortDate substitutes year zero, January for a missing publish date, which
// orders before every real date.
func sortDate(c Citation) dates.PublishDate {
	if d, ok := c.Published(); ok {
		return d
	}
	key, _ := dates.YearMonth(0, time.January)
	return key
}
