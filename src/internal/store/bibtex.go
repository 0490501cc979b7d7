package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"citekit/src/internal/editions"
	"citekit/src/internal/schema"
	"citekit/src/internal/stringsx"
)

// ExportBibTeX reads every stored record and writes a consolidated BibTeX
// file to target (default data/citations.bib). It returns the path written.
func ExportBibTeX(target string) (string, error) {
	records, err := ReadAll()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(target) == "" {
		target = rooted(BibFile)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", err
	}
	// Deterministic order: by kind then title then id.
	sort.Slice(records, func(i, j int) bool {
		ri, rj := records[i], records[j]
		if ri.Kind != rj.Kind {
			return ri.Kind < rj.Kind
		}
		ti := strings.ToLower(strings.TrimSpace(ri.Title))
		tj := strings.ToLower(strings.TrimSpace(rj.Title))
		if ti != tj {
			return ti < tj
		}
		return ri.ID < rj.ID
	})
	var buf bytes.Buffer
	for _, rec := range records {
		buf.WriteString(RecordToBibTeX(rec))
	}
	if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	return target, nil
}

// RecordToBibTeX converts a record into a BibTeX entry string. Books with a
// chapter become @inbook, manuals @manual, conference kinds @inproceedings
// or @proceedings, and everything else @misc.
func RecordToBibTeX(rec schema.Record) string {
	typ := bibTypeFor(rec)
	key := bibKeyFor(rec)
	w := func(k, v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		return fmt.Sprintf("  %s = {%s},\n", k, escapeBib(v))
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "@%s{%s,\n", typ, key)
	b.WriteString(w("author", bibAuthors(rec)))
	if typ == "inbook" {
		b.WriteString(w("title", rec.Chapter))
		b.WriteString(w("booktitle", rec.Title))
	} else {
		b.WriteString(w("title", rec.Title))
	}
	switch rec.Kind {
	case schema.KindBook:
		b.WriteString(w("edition", bibEdition(rec.Edition)))
		b.WriteString(w("volume", bibVolume(rec.Edition)))
		if rec.Pages != nil {
			b.WriteString(w("pages", fmt.Sprintf("%d--%d", rec.Pages.Start, rec.Pages.End)))
		}
		b.WriteString(w("doi", rec.DOI))
	case schema.KindManual:
		b.WriteString(w("edition", bibEdition(rec.Edition)))
		b.WriteString(w("doi", rec.DOI))
		b.WriteString(w("url", rec.URL))
		if rec.URL == "" && rec.DOI == "" {
			b.WriteString(w("howpublished", rec.Provider))
		}
	case schema.KindVideo:
		b.WriteString(w("howpublished", rec.Platform))
		b.WriteString(w("url", rec.URL))
	case schema.KindPaper, schema.KindProceedings:
		if rec.Conference != nil {
			if rec.Kind == schema.KindPaper {
				b.WriteString(w("booktitle", rec.Conference.Name))
			} else {
				b.WriteString(w("organization", rec.Conference.Name))
			}
			b.WriteString(w("address", rec.Conference.Venue))
			b.WriteString(w("volume", rec.Conference.Volume))
			b.WriteString(w("number", rec.Conference.Number))
		}
	}
	if rec.Published != nil {
		b.WriteString(w("year", fmt.Sprintf("%d", rec.Published.Year)))
		if rec.Published.Month != 0 && rec.Published.Day != 0 {
			b.WriteString(w("date", fmt.Sprintf("%04d-%02d-%02d",
				rec.Published.Year, rec.Published.Month, rec.Published.Day)))
		}
	}
	if strings.TrimSpace(rec.Accessed) != "" {
		b.WriteString(w("note", "Accessed: "+rec.Accessed))
	}
	// Close the entry; drop the trailing comma.
	out := b.String()
	out = strings.TrimRight(out, "\n")
	out = strings.TrimRight(out, ",")
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	out += "}\n\n"
	return out
}

func escapeBib(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "{", "\\{")
	s = strings.ReplaceAll(s, "}", "\\}")
	return strings.TrimSpace(s)
}

// bibAuthors renders the contributor list the BibTeX way: "Surname, First
// Middle" joined with " and ". Videos credit the channel.
func bibAuthors(rec schema.Record) string {
	if rec.Kind == schema.KindVideo {
		return strings.TrimSpace(rec.Channel)
	}
	if len(rec.Authors) == 0 {
		return ""
	}
	parts := make([]string, 0, len(rec.Authors))
	for _, a := range rec.Authors {
		if org := strings.TrimSpace(a.Org); org != "" {
			parts = append(parts, org)
			continue
		}
		name := strings.TrimSpace(a.Surname)
		given := strings.TrimSpace(strings.Join([]string{a.First, a.Middle}, " "))
		if name == "" {
			name = given
		} else if given != "" {
			name = name + ", " + given
		}
		if name != "" {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, " and ")
}

func bibEdition(e *schema.Edition) string {
	if e == nil {
		return ""
	}
	switch {
	case e.SemVer != "":
		if desc, err := editions.ParseSemVer(e.SemVer); err == nil {
			return desc.IEEE()
		}
		return e.SemVer
	case e.Number != 0 && e.Digital:
		return editions.Ordinal(e.Number) + " digital"
	case e.Number != 0:
		return editions.Ordinal(e.Number)
	}
	return ""
}

func bibVolume(e *schema.Edition) string {
	if e == nil {
		return ""
	}
	switch {
	case e.VolumeStart != 0 || e.VolumeEnd != 0:
		return fmt.Sprintf("%d--%d", e.VolumeStart, e.VolumeEnd)
	case e.Volume != 0:
		return fmt.Sprintf("%d", e.Volume)
	}
	return ""
}

func bibTypeFor(rec schema.Record) string {
	switch rec.Kind {
	case schema.KindBook:
		if strings.TrimSpace(rec.Chapter) != "" {
			return "inbook"
		}
		return "book"
	case schema.KindManual:
		return "manual"
	case schema.KindPaper:
		return "inproceedings"
	case schema.KindProceedings:
		return "proceedings"
	default:
		return "misc"
	}
}

func bibKeyFor(rec schema.Record) string {
	return stringsx.FirstNonEmpty(strings.ToLower(rec.ID), schema.Slugify(rec.Title, nil), "record")
}
