package cite

import (
	"citekit/src/internal/dates"
	"citekit/src/internal/editions"
	"citekit/src/internal/names"
)

type availabilityKind int

const (
	availNone availabilityKind = iota
	availDOI
	availURL
	availProvider
)

// Availability says where an online manual can be retrieved: nowhere, by
// DOI, at a URL, or through a library database provider.
type Availability struct {
	kind  availabilityKind
	value string
}

// NotAvailable marks a manual with no retrieval location.
func NotAvailable() Availability { return Availability{} }

// AvailableDOI marks a manual retrievable through a DOI.
func AvailableDOI(doi string) Availability {
	return Availability{kind: availDOI, value: doi}
}

// AvailableURL marks a manual retrievable at a URL.
func AvailableURL(url string) Availability {
	return Availability{kind: availURL, value: url}
}

// AvailableFrom marks a manual retrievable through a library database
// provider.
func AvailableFrom(provider string) Availability {
	return Availability{kind: availProvider, value: provider}
}

// location returns the retrieval location as it appears in a citation
// ("" when there is none).
func (a Availability) location() string {
	switch a.kind {
	case availDOI:
		return "https://doi.org/" + a.value
	case availURL, availProvider:
		return a.value
	default:
		return ""
	}
}

// OnlineManual is a technical manual or report published online.
type OnlineManual struct {
	common
	edition      *editions.Edition
	accessed     dates.AccessDate
	availability Availability
}

// OnlineManualParams collects the fields for NewOnlineManual. Accessed is
// required; the other optional fields may be left zero.
type OnlineManualParams struct {
	ID           string
	Title        string
	Author       names.Author
	Published    *dates.PublishDate
	Edition      *editions.Edition
	Accessed     dates.AccessDate
	Availability Availability
}

// NewOnlineManual builds an immutable online-manual record.
func NewOnlineManual(p OnlineManualParams) *OnlineManual {
	return &OnlineManual{
		common: common{
			id:        p.ID,
			title:     p.Title,
			author:    p.Author,
			published: clonePtr(p.Published),
		},
		edition:      clonePtr(p.Edition),
		accessed:     p.Accessed,
		availability: p.Availability,
	}
}

func (m *OnlineManual) Kind() Kind { return KindOnlineManual }

// Edition returns the version descriptor; ok is false when absent.
func (m *OnlineManual) Edition() (editions.Edition, bool) {
	if m.edition == nil {
		return editions.Edition{}, false
	}
	return *m.edition, true
}

// Accessed returns the day the manual was last retrieved.
func (m *OnlineManual) Accessed() dates.AccessDate { return m.accessed }

// Availability returns the retrieval location descriptor.
func (m *OnlineManual) Availability() Availability { return m.availability }

// FormatIEEE renders e.g. "L. Breimann. Manual on Using Random Forests v4.0.
// (2003). Accessed: Apr. 16, 2014. [Online]. Available: http://…"
func (m *OnlineManual) FormatIEEE() (string, error) {
	var parts []string
	if s, ok := m.author.IEEE(); ok {
		parts = append(parts, ensurePeriod(s))
	}
	title := m.title
	if m.edition != nil {
		title += " " + m.edition.IEEE()
	}
	parts = append(parts, ensurePeriod(title))
	if m.published != nil {
		parts = append(parts, "("+m.published.IEEE()+").")
	}
	parts = append(parts, "Accessed: "+m.accessed.IEEE()+".", "[Online].")
	if loc := m.availability.location(); loc != "" {
		parts = append(parts, "Available: "+loc)
	}
	return joinParts(parts), nil
}

// FormatAPA renders e.g. "Breimann, L. (2003). Manual on Using Random
// Forests (v4.0). http://…"
func (m *OnlineManual) FormatAPA() (string, error) {
	var parts []string
	if s, ok := m.author.APA(); ok {
		parts = append(parts, ensurePeriod(s))
	}
	if m.published != nil {
		parts = append(parts, "("+m.published.APA()+").")
	}
	title := m.title
	if m.edition != nil {
		title += " " + m.edition.APA()
	}
	parts = append(parts, ensurePeriod(title))
	if loc := m.availability.location(); loc != "" {
		parts = append(parts, loc)
	}
	return joinParts(parts), nil
}
