package cite

import (
	"time"

	"citekit/src/internal/dates"
	"citekit/src/internal/names"
)

// ConferenceDetails carries the venue fields shared by the conference kinds.
// Blank strings and the zero time mean "not recorded".
type ConferenceDetails struct {
	Venue          string
	Volume         string
	Number         string
	ConferenceName string
	ConferenceDate time.Time
}

// ConferencePaper is a conference paper retrieved online. It is a data
// carrier only: neither style renders it yet, and both formatters say so.
type ConferencePaper struct {
	common
	details ConferenceDetails
}

// ConferencePaperParams collects the fields for NewConferencePaper.
type ConferencePaperParams struct {
	ID        string
	Title     string
	Author    names.Author
	Published *dates.PublishDate
	Details   ConferenceDetails
}

// NewConferencePaper builds an immutable conference-paper record.
func NewConferencePaper(p ConferencePaperParams) *ConferencePaper {
	return &ConferencePaper{
		common: common{
			id:        p.ID,
			title:     p.Title,
			author:    p.Author,
			published: clonePtr(p.Published),
		},
		details: p.Details,
	}
}

func (c *ConferencePaper) Kind() Kind { return KindConferencePaper }

// Details returns the venue fields.
func (c *ConferencePaper) Details() ConferenceDetails { return c.details }

func (c *ConferencePaper) FormatAPA() (string, error) {
	return "", unsupported(KindConferencePaper, StyleAPA)
}

func (c *ConferencePaper) FormatIEEE() (string, error) {
	return "", unsupported(KindConferencePaper, StyleIEEE)
}

// ConferenceProceedings is a full volume of conference proceedings retrieved
// online. Like ConferencePaper it is a data carrier only.
type ConferenceProceedings struct {
	common
	details ConferenceDetails
}

// ConferenceProceedingsParams collects the fields for
// NewConferenceProceedings.
type ConferenceProceedingsParams struct {
	ID        string
	Title     string
	Author    names.Author
	Published *dates.PublishDate
	Details   ConferenceDetails
}

// NewConferenceProceedings builds an immutable proceedings record.
func NewConferenceProceedings(p ConferenceProceedingsParams) *ConferenceProceedings {
	return &ConferenceProceedings{
		common: common{
			id:        p.ID,
			title:     p.Title,
			author:    p.Author,
			published: clonePtr(p.Published),
		},
		details: p.Details,
	}
}

func (c *ConferenceProceedings) Kind() Kind { return KindConferenceProceedings }

// Details returns the venue fields.
func (c *ConferenceProceedings) Details() ConferenceDetails { return c.details }

func (c *ConferenceProceedings) FormatAPA() (string, error) {
	return "", unsupported(KindConferenceProceedings, StyleAPA)
}

func (c *ConferenceProceedings) FormatIEEE() (string, error) {
	return "", unsupported(KindConferenceProceedings, StyleIEEE)
}
