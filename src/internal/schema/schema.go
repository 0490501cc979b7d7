// Package schema defines the serializable record shape for stored citations
// and maps records into the citation engine's types.
package schema

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"citekit/src/internal/cite"
	"citekit/src/internal/dates"
	"citekit/src/internal/editions"
	"citekit/src/internal/names"
)

// Record kinds as stored on disk.
const (
	KindBook        = "book"
	KindManual      = "manual"
	KindVideo       = "video"
	KindPaper       = "paper"
	KindProceedings = "proceedings"
)

// Kinds lists every valid record kind.
func Kinds() []string {
	return []string{KindBook, KindManual, KindVideo, KindPaper, KindProceedings}
}

// Record is a single citation as stored on disk as YAML. Kind decides which
// of the optional field groups apply.
type Record struct {
	ID        string  `yaml:"id" json:"id"`
	Kind      string  `yaml:"kind" json:"kind"`
	Title     string  `yaml:"title" json:"title"`
	Authors   Authors `yaml:"authors,omitempty" json:"authors,omitempty"`
	Published *Date   `yaml:"published,omitempty" json:"published,omitempty"`

	// book fields
	Chapter string     `yaml:"chapter,omitempty" json:"chapter,omitempty"`
	Edition *Edition   `yaml:"edition,omitempty" json:"edition,omitempty"`
	DOI     string     `yaml:"doi,omitempty" json:"doi,omitempty"`
	Pages   *PageRange `yaml:"pages,omitempty" json:"pages,omitempty"`

	// online fields
	Accessed string `yaml:"accessed,omitempty" json:"accessed,omitempty"`
	URL      string `yaml:"url,omitempty" json:"url,omitempty"`
	Provider string `yaml:"provider,omitempty" json:"provider,omitempty"`

	// video fields
	Channel  string `yaml:"channel,omitempty" json:"channel,omitempty"`
	Platform string `yaml:"platform,omitempty" json:"platform,omitempty"`

	// conference fields
	Conference *Conference `yaml:"conference,omitempty" json:"conference,omitempty"`
}

// Date is a stored publish date; Month and Day are 0 when unknown.
type Date struct {
	Year  int `yaml:"year" json:"year"`
	Month int `yaml:"month,omitempty" json:"month,omitempty"`
	Day   int `yaml:"day,omitempty" json:"day,omitempty"`
}

// Edition is a stored version/edition descriptor. Exactly one shape should
// be set; when several are, SemVer wins over volumes, volumes over numbered
// editions.
type Edition struct {
	Number      int    `yaml:"number,omitempty" json:"number,omitempty"`
	Digital     bool   `yaml:"digital,omitempty" json:"digital,omitempty"`
	Volume      int    `yaml:"volume,omitempty" json:"volume,omitempty"`
	VolumeStart int    `yaml:"volume_start,omitempty" json:"volume_start,omitempty"`
	VolumeEnd   int    `yaml:"volume_end,omitempty" json:"volume_end,omitempty"`
	SemVer      string `yaml:"semver,omitempty" json:"semver,omitempty"`
}

// PageRange is a stored page span.
type PageRange struct {
	Start int `yaml:"start" json:"start"`
	End   int `yaml:"end" json:"end"`
}

// Conference carries the venue fields of the conference kinds. Date is
// YYYY-MM-DD.
type Conference struct {
	Name   string `yaml:"name,omitempty" json:"name,omitempty"`
	Venue  string `yaml:"venue,omitempty" json:"venue,omitempty"`
	Volume string `yaml:"volume,omitempty" json:"volume,omitempty"`
	Number string `yaml:"number,omitempty" json:"number,omitempty"`
	Date   string `yaml:"date,omitempty" json:"date,omitempty"`
}

// Author is one contributor: a person (surname plus optional first and
// middle names) or, when only Org is set, an organization.
type Author struct {
	Surname string `yaml:"surname,omitempty" json:"surname,omitempty"`
	First   string `yaml:"first,omitempty" json:"first,omitempty"`
	Middle  string `yaml:"middle,omitempty" json:"middle,omitempty"`
	Org     string `yaml:"org,omitempty" json:"org,omitempty"`
}

// Authors is a contributor list that unmarshals from several YAML shapes:
// - a single string (an organization name)
// - a sequence of strings (person names, "Surname, First Middle")
// - a mapping (a single Author object)
// - a sequence of Author mappings
type Authors []Author

func (as *Authors) UnmarshalYAML(value *yaml.Node) error {
	if value == nil {
		*as = nil
		return nil
	}
	switch value.Kind {
	case yaml.ScalarNode:
		s := strings.TrimSpace(value.Value)
		if s == "" || s == "null" {
			*as = nil
			return nil
		}
		*as = Authors{{Org: s}}
		return nil
	case yaml.SequenceNode:
		var out Authors
		for _, n := range value.Content {
			if n.Kind == yaml.ScalarNode {
				s := strings.TrimSpace(n.Value)
				if s == "" {
					continue
				}
				p, err := names.Parse(s)
				if err != nil {
					return fmt.Errorf("author %q: %w", s, err)
				}
				out = append(out, Author{Surname: p.Surname(), First: p.First(), Middle: p.Middle()})
				continue
			}
			if n.Kind == yaml.MappingNode {
				var au Author
				if err := n.Decode(&au); err != nil {
					return err
				}
				if au != (Author{}) {
					out = append(out, au)
				}
			}
		}
		*as = out
		return nil
	case yaml.MappingNode:
		var au Author
		if err := value.Decode(&au); err != nil {
			return err
		}
		if au == (Author{}) {
			*as = nil
			return nil
		}
		*as = Authors{au}
		return nil
	default:
		*as = nil
		return nil
	}
}

// Author maps the contributor list into the engine's author type. An
// organization must be the only contributor.
func (as Authors) Author() (names.Author, error) {
	if len(as) == 0 {
		return names.Author{}, nil
	}
	if len(as) == 1 && as[0].Org != "" {
		return names.Organization(as[0].Org), nil
	}
	people := make([]names.PersonName, 0, len(as))
	for _, a := range as {
		if a.Org != "" {
			return names.Author{}, fmt.Errorf("author %q: an organization must be the only author", a.Org)
		}
		p, err := a.person()
		if err != nil {
			return names.Author{}, err
		}
		people = append(people, p)
	}
	return names.Persons(people...), nil
}

func (a Author) person() (names.PersonName, error) {
	if a.Middle != "" && a.First == "" {
		return names.PersonName{}, fmt.Errorf("author %q: a middle name requires a first name", a.Surname)
	}
	switch {
	case a.Middle != "":
		return names.FirstMiddleLast(a.First, a.Middle, a.Surname)
	case a.First != "":
		return names.FirstLast(a.First, a.Surname)
	default:
		return names.Last(a.Surname)
	}
}

// Validate applies the structural rules every stored record must satisfy.
func (r *Record) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("id is required")
	}
	switch r.Kind {
	case KindBook, KindManual, KindVideo, KindPaper, KindProceedings:
	default:
		return fmt.Errorf("invalid kind: %s", r.Kind)
	}
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	if (r.Kind == KindManual || r.Kind == KindVideo) && strings.TrimSpace(r.Accessed) == "" {
		return errors.New("accessed is required for online records")
	}
	if r.Kind == KindVideo && strings.TrimSpace(r.Channel) == "" {
		return errors.New("channel is required for video records")
	}
	return nil
}

// Citation maps the record into the engine's types. All engine validation
// applies: bad dates, empty name components, and unknown kinds are errors.
func (r *Record) Citation() (cite.Citation, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	author, err := r.Authors.Author()
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", r.ID, err)
	}
	published, err := r.publishDate()
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", r.ID, err)
	}
	switch r.Kind {
	case KindBook:
		edition, err := r.editionDescriptor()
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", r.ID, err)
		}
		var pages *cite.PageRange
		if r.Pages != nil {
			pages = &cite.PageRange{Start: r.Pages.Start, End: r.Pages.End}
		}
		return cite.NewBook(cite.BookParams{
			ID:        r.ID,
			Title:     r.Title,
			Author:    author,
			Published: published,
			Chapter:   r.Chapter,
			Edition:   edition,
			DOI:       r.DOI,
			Pages:     pages,
		}), nil
	case KindManual:
		accessed, err := dates.ParseISO(r.Accessed)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", r.ID, err)
		}
		edition, err := r.editionDescriptor()
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", r.ID, err)
		}
		return cite.NewOnlineManual(cite.OnlineManualParams{
			ID:           r.ID,
			Title:        r.Title,
			Author:       author,
			Published:    published,
			Edition:      edition,
			Accessed:     accessed,
			Availability: r.availability(),
		}), nil
	case KindVideo:
		accessed, err := dates.ParseISO(r.Accessed)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", r.ID, err)
		}
		return cite.NewOnlineVideo(cite.OnlineVideoParams{
			ID:        r.ID,
			Title:     r.Title,
			Author:    author,
			Channel:   r.Channel,
			Platform:  r.Platform,
			Published: published,
			Accessed:  accessed,
			URL:       r.URL,
		}), nil
	case KindPaper:
		details, err := r.conferenceDetails()
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", r.ID, err)
		}
		return cite.NewConferencePaper(cite.ConferencePaperParams{
			ID:        r.ID,
			Title:     r.Title,
			Author:    author,
			Published: published,
			Details:   details,
		}), nil
	case KindProceedings:
		details, err := r.conferenceDetails()
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", r.ID, err)
		}
		return cite.NewConferenceProceedings(cite.ConferenceProceedingsParams{
			ID:        r.ID,
			Title:     r.Title,
			Author:    author,
			Published: published,
			Details:   details,
		}), nil
	default:
		return nil, fmt.Errorf("record %s: unknown kind %q", r.ID, r.Kind)
	}
}

func (r *Record) publishDate() (*dates.PublishDate, error) {
	if r.Published == nil {
		return nil, nil
	}
	p := r.Published
	var d dates.PublishDate
	var err error
	switch {
	case p.Month == 0 && p.Day == 0:
		d, err = dates.Year(p.Year)
	case p.Day == 0:
		d, err = dates.YearMonth(p.Year, time.Month(p.Month))
	default:
		d, err = dates.YearMonthDay(p.Year, time.Month(p.Month), p.Day)
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Record) editionDescriptor() (*editions.Edition, error) {
	if r.Edition == nil {
		return nil, nil
	}
	e := r.Edition
	var (
		desc editions.Edition
		err  error
	)
	switch {
	case e.SemVer != "":
		desc, err = editions.ParseSemVer(e.SemVer)
	case e.VolumeStart != 0 || e.VolumeEnd != 0:
		desc = editions.VolumeRange(e.VolumeStart, e.VolumeEnd)
	case e.Volume != 0:
		desc = editions.Volume(e.Volume)
	case e.Number != 0 && e.Digital:
		desc = editions.Digital(e.Number)
	case e.Number != 0:
		desc = editions.Numbered(e.Number)
	default:
		err = errors.New("edition: no shape set")
	}
	if err != nil {
		return nil, err
	}
	return &desc, nil
}

// availability resolves a manual's retrieval location; a DOI wins over a
// URL, a URL over a provider.
func (r *Record) availability() cite.Availability {
	switch {
	case r.DOI != "":
		return cite.AvailableDOI(r.DOI)
	case r.URL != "":
		return cite.AvailableURL(r.URL)
	case r.Provider != "":
		return cite.AvailableFrom(r.Provider)
	default:
		return cite.NotAvailable()
	}
}

func (r *Record) conferenceDetails() (cite.ConferenceDetails, error) {
	if r.Conference == nil {
		return cite.ConferenceDetails{}, nil
	}
	c := r.Conference
	var when time.Time
	if s := strings.TrimSpace(c.Date); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return cite.ConferenceDetails{}, fmt.Errorf("conference date %q: %w", c.Date, err)
		}
		when = t
	}
	return cite.ConferenceDetails{
		Venue:          c.Venue,
		Volume:         c.Volume,
		Number:         c.Number,
		ConferenceName: c.Name,
		ConferenceDate: when,
	}, nil
}
