package cite

import (
	"fmt"

	"citekit/src/internal/dates"
	"citekit/src/internal/editions"
	"citekit/src/internal/names"
)

// Book is a printed or digital book, or a single chapter of one.
type Book struct {
	common
	chapter string
	edition *editions.Edition
	doi     string
	pages   *PageRange
}

// BookParams collects the fields for NewBook. ID, Title, and Author make a
// useful record; everything else is optional.
type BookParams struct {
	ID        string
	Title     string
	Author    names.Author
	Published *dates.PublishDate
	Chapter   string
	Edition   *editions.Edition
	DOI       string
	Pages     *PageRange
}

// NewBook builds an immutable book record.
func NewBook(p BookParams) *Book {
	return &Book{
		common: common{
			id:        p.ID,
			title:     p.Title,
			author:    p.Author,
			published: clonePtr(p.Published),
		},
		chapter: p.Chapter,
		edition: clonePtr(p.Edition),
		doi:     p.DOI,
		pages:   clonePtr(p.Pages),
	}
}

func (b *Book) Kind() Kind { return KindBook }

// Chapter returns the cited chapter title ("" when the whole book is cited).
func (b *Book) Chapter() string { return b.chapter }

// Edition returns the edition descriptor; ok is false when absent.
func (b *Book) Edition() (editions.Edition, bool) {
	if b.edition == nil {
		return editions.Edition{}, false
	}
	return *b.edition, true
}

// DOI returns the DOI ("" when absent).
func (b *Book) DOI() string { return b.doi }

// Pages returns the cited page span; ok is false when absent.
func (b *Book) Pages() (PageRange, bool) {
	if b.pages == nil {
		return PageRange{}, false
	}
	return *b.pages, true
}

// titleUnit renders the title, quoting the chapter when one is cited:
// “The Middle Years,” in A Great Paper.
func (b *Book) titleUnit() string {
	if b.chapter == "" {
		return b.title
	}
	return leftQuote + b.chapter + "," + rightQuote + " in " + b.title
}

// FormatIEEE renders e.g. "J. Smith, A Great Paper. 2023."
func (b *Book) FormatIEEE() (string, error) {
	var parts []string
	if s, ok := b.author.IEEE(); ok {
		parts = append(parts, s+",")
	}
	title := b.titleUnit()
	if b.edition != nil {
		title += ", " + b.edition.IEEE()
	}
	parts = append(parts, ensurePeriod(title))
	if b.published != nil {
		parts = append(parts, b.published.IEEE()+".")
	}
	if b.pages != nil {
		parts = append(parts, "pp. "+b.pages.String()+".")
	}
	if b.doi != "" {
		parts = append(parts, "doi: "+b.doi+".")
	}
	return joinParts(parts), nil
}

// FormatAPA renders e.g. "Smith, J. (2023). A Great Paper."
func (b *Book) FormatAPA() (string, error) {
	var parts []string
	if s, ok := b.author.APA(); ok {
		parts = append(parts, ensurePeriod(s))
	}
	if b.published != nil {
		parts = append(parts, fmt.Sprintf("(%d).", b.published.Year()))
	}
	title := b.titleUnit()
	if b.edition != nil {
		title += " " + b.edition.APA()
	}
	parts = append(parts, ensurePeriod(title))
	if b.pages != nil {
		parts = append(parts, "(pp. "+b.pages.String()+").")
	}
	if b.doi != "" {
		parts = append(parts, "https://doi.org/"+b.doi)
	}
	return joinParts(parts), nil
}
