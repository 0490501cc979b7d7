package schema

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"citekit/src/internal/cite"
	"citekit/src/internal/dates"
	"citekit/src/internal/names"
)

func TestSlugify(t *testing.T) {
	y := 2020
	cases := []struct {
		in   string
		year *int
		want string
	}{
		{"Hello, World!", nil, "hello-world"},
		{" Go  &  YAML ", &y, "go-yaml-2020"},
		{"  multiple---dashes__here ", nil, "multiple-dashes-here"},
		{"Café Münü", nil, "cafe-munu"},
		{"Ólafur's Saga", &y, "olafur-s-saga-2020"},
	}
	for _, c := range cases {
		got := Slugify(c.in, c.year)
		if got != c.want {
			t.Fatalf("Slugify(%q)=%q want %q", c.in, got, c.want)
		}
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	if a == "" || a == b {
		t.Fatalf("NewID: want distinct non-empty ids, got %q and %q", a, b)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		rec  Record
		ok   bool
	}{
		{"book ok", Record{ID: "x", Kind: KindBook, Title: "T"}, true},
		{"missing id", Record{Kind: KindBook, Title: "T"}, false},
		{"bad kind", Record{ID: "x", Kind: "magazine", Title: "T"}, false},
		{"missing title", Record{ID: "x", Kind: KindBook}, false},
		{"manual needs accessed", Record{ID: "x", Kind: KindManual, Title: "T"}, false},
		{"manual ok", Record{ID: "x", Kind: KindManual, Title: "T", Accessed: "2024-01-02"}, true},
		{"video needs channel", Record{ID: "x", Kind: KindVideo, Title: "T", Accessed: "2024-01-02"}, false},
		{"video ok", Record{ID: "x", Kind: KindVideo, Title: "T", Accessed: "2024-01-02", Channel: "c"}, true},
		{"paper ok", Record{ID: "x", Kind: KindPaper, Title: "T"}, true},
	}
	for _, c := range cases {
		err := c.rec.Validate()
		if c.ok && err != nil {
			t.Fatalf("%s: unexpected error %v", c.name, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("%s: want error", c.name)
		}
	}
}

func TestAuthorsUnmarshalShapes(t *testing.T) {
	cases := []struct {
		name string
		src  string
		apa  string
	}{
		{"scalar org", `authors: ACME Publishing`, "ACME Publishing"},
		{"string list", "authors:\n  - Doe, Jane Q\n  - Smith, John\n", "Doe, J. Q. & Smith, J."},
		{"mapping list", "authors:\n  - surname: Doe\n    first: Jane\n  - surname: Smith\n    first: John\n", "Doe, J. & Smith, J."},
		{"single mapping", "authors:\n  surname: Doe\n  first: Jane\n", "Doe, J."},
	}
	for _, c := range cases {
		var rec Record
		if err := yaml.Unmarshal([]byte(c.src), &rec); err != nil {
			t.Fatalf("%s: unmarshal: %v", c.name, err)
		}
		author, err := rec.Authors.Author()
		if err != nil {
			t.Fatalf("%s: Author(): %v", c.name, err)
		}
		got, ok := author.APA()
		if !ok || got != c.apa {
			t.Fatalf("%s: want %q, got (%q, %v)", c.name, c.apa, got, ok)
		}
	}
}

func TestAuthorsRejectBadShapes(t *testing.T) {
	mixed := Authors{{Surname: "Doe", First: "Jane"}, {Org: "ACME"}}
	if _, err := mixed.Author(); err == nil {
		t.Fatalf("org among persons: want error")
	}
	middleOnly := Authors{{Surname: "Doe", Middle: "Q"}}
	if _, err := middleOnly.Author(); err == nil {
		t.Fatalf("middle without first: want error")
	}
	empty := Authors{{}}
	if _, err := empty.Author(); !errors.Is(err, names.ErrEmptyNameComponent) {
		t.Fatalf("empty author: want ErrEmptyNameComponent, got %v", err)
	}
}

func bookRecord() Record {
	return Record{
		ID:      "a-great-paper-2023",
		Kind:    KindBook,
		Title:   "A Great Paper",
		Authors: Authors{{Surname: "Smith", First: "John"}},
		Published: &Date{
			Year: 2023,
		},
	}
}

func TestRecordCitationBook(t *testing.T) {
	rec := bookRecord()
	rec.Edition = &Edition{Number: 2}
	rec.Pages = &PageRange{Start: 11, End: 42}
	rec.DOI = "10.1000/182"
	c, err := rec.Citation()
	if err != nil {
		t.Fatalf("Citation: %v", err)
	}
	if c.Kind() != cite.KindBook || c.ID() != "a-great-paper-2023" {
		t.Fatalf("kind/id: got %v %q", c.Kind(), c.ID())
	}
	apa, err := c.FormatAPA()
	if err != nil {
		t.Fatalf("FormatAPA: %v", err)
	}
	want := "Smith, J. (2023). A Great Paper (2nd ed.). (pp. 11–42). https://doi.org/10.1000/182"
	if apa != want {
		t.Fatalf("FormatAPA: want %q, got %q", want, apa)
	}
}

func TestRecordCitationManual(t *testing.T) {
	rec := Record{
		ID:       "forests",
		Kind:     KindManual,
		Title:    "Manual on Random Forests",
		Authors:  Authors{{Surname: "Breimann", First: "Leo"}},
		Accessed: "2014-04-16",
		URL:      "http://example.com/forests.pdf",
		Edition:  &Edition{SemVer: "4.0"},
	}
	c, err := rec.Citation()
	if err != nil {
		t.Fatalf("Citation: %v", err)
	}
	ieee, err := c.FormatIEEE()
	if err != nil {
		t.Fatalf("FormatIEEE: %v", err)
	}
	want := "L. Breimann. Manual on Random Forests v4.0. Accessed: Apr. 16, 2014. " +
		"[Online]. Available: http://example.com/forests.pdf"
	if ieee != want {
		t.Fatalf("FormatIEEE: want %q, got %q", want, ieee)
	}
}

func TestRecordCitationVideo(t *testing.T) {
	rec := Record{
		ID:        "tribute",
		Kind:      KindVideo,
		Title:     "Tribute to anomalocaris",
		Channel:   "scorpiopede",
		Accessed:  "2025-10-01",
		URL:       "https://www.youtube.com/watch?v=6YsNRnZRgg8",
		Published: &Date{Year: 2009, Month: 4, Day: 4},
	}
	c, err := rec.Citation()
	if err != nil {
		t.Fatalf("Citation: %v", err)
	}
	apa, err := c.FormatAPA()
	if err != nil {
		t.Fatalf("FormatAPA: %v", err)
	}
	want := "scorpiopede. (2009, April 4). Tribute to anomalocaris [Video]. YouTube. " +
		"Retrieved October 1, 2025, from https://www.youtube.com/watch?v=6YsNRnZRgg8"
	if apa != want {
		t.Fatalf("FormatAPA: want %q, got %q", want, apa)
	}
}

func TestRecordCitationConference(t *testing.T) {
	rec := Record{
		ID:    "qcon-talk",
		Kind:  KindPaper,
		Title: "Scaling Things",
		Conference: &Conference{
			Name:  "QCon",
			Venue: "Lisbon",
			Date:  "2019-06-02",
		},
	}
	c, err := rec.Citation()
	if err != nil {
		t.Fatalf("Citation: %v", err)
	}
	if _, err := c.FormatIEEE(); !errors.Is(err, cite.ErrUnsupportedStyle) {
		t.Fatalf("conference FormatIEEE: want ErrUnsupportedStyle, got %v", err)
	}
	paper, ok := c.(*cite.ConferencePaper)
	if !ok {
		t.Fatalf("want *cite.ConferencePaper, got %T", c)
	}
	details := paper.Details()
	if details.ConferenceName != "QCon" || details.Venue != "Lisbon" {
		t.Fatalf("details: %+v", details)
	}
	if details.ConferenceDate.IsZero() {
		t.Fatalf("conference date not parsed")
	}
}

func TestRecordCitationErrors(t *testing.T) {
	badDate := bookRecord()
	badDate.Published = &Date{Year: 2023, Month: 2, Day: 30}
	if _, err := badDate.Citation(); !errors.Is(err, dates.ErrInvalidDayForMonth) {
		t.Fatalf("bad date: want ErrInvalidDayForMonth, got %v", err)
	}

	badYear := bookRecord()
	badYear.Published = &Date{Year: -3}
	if _, err := badYear.Citation(); !errors.Is(err, dates.ErrOutOfRangeYear) {
		t.Fatalf("bad year: want ErrOutOfRangeYear, got %v", err)
	}

	dayNoMonth := bookRecord()
	dayNoMonth.Published = &Date{Year: 2023, Day: 4}
	if _, err := dayNoMonth.Citation(); !errors.Is(err, dates.ErrInvalidMonth) {
		t.Fatalf("day without month: want ErrInvalidMonth, got %v", err)
	}

	badAccessed := Record{ID: "m", Kind: KindManual, Title: "T", Accessed: "16/04/2014"}
	if _, err := badAccessed.Citation(); err == nil {
		t.Fatalf("bad accessed: want error")
	}

	emptyEdition := bookRecord()
	emptyEdition.Edition = &Edition{}
	if _, err := emptyEdition.Citation(); err == nil || !strings.Contains(err.Error(), "edition") {
		t.Fatalf("empty edition: want edition error, got %v", err)
	}
}
