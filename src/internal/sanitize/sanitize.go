// Package sanitize applies conservative cleanup to user-supplied record
// fields before they are validated and stored.
package sanitize

import (
	"net/url"
	"strings"

	"citekit/src/internal/schema"
)

// CleanString trims and removes ASCII control characters except
// tab/newline/carriage return up to max runes (if max <= 0, no truncation).
func CleanString(s string, max int) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	// remove controls except \n, \t, \r
	var b strings.Builder
	for _, r := range s {
		if r == '\n' || r == '\t' || r == '\r' || (r >= 0x20 && r != 0x7f) {
			b.WriteRune(r)
			if max > 0 && b.Len() >= max {
				break
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// CleanURL returns a validated http/https URL or empty string.
func CleanURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	// remove embedded whitespace
	u.Path = strings.ReplaceAll(u.Path, " ", "%20")
	return u.String()
}

// CleanAuthors sanitizes contributor names, dropping entries left empty.
func CleanAuthors(authors schema.Authors) schema.Authors {
	if len(authors) == 0 {
		return nil
	}
	const max = 256
	out := make(schema.Authors, 0, len(authors))
	for _, a := range authors {
		cleaned := schema.Author{
			Surname: CleanString(a.Surname, max),
			First:   CleanString(a.First, max),
			Middle:  CleanString(a.Middle, max),
			Org:     CleanString(a.Org, max),
		}
		if cleaned == (schema.Author{}) {
			continue
		}
		out = append(out, cleaned)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// CleanRecord applies conservative sanitization to all strings in the record.
func CleanRecord(rec *schema.Record) {
	if rec == nil {
		return
	}
	rec.ID = CleanString(rec.ID, 64)
	rec.Kind = CleanString(rec.Kind, 32)
	rec.Title = CleanString(rec.Title, 512)
	rec.Chapter = CleanString(rec.Chapter, 512)
	rec.DOI = CleanString(rec.DOI, 128)
	rec.URL = CleanURL(rec.URL)
	rec.Provider = CleanString(rec.Provider, 256)
	rec.Accessed = CleanString(rec.Accessed, 32)
	rec.Channel = CleanString(rec.Channel, 256)
	rec.Platform = CleanString(rec.Platform, 128)
	rec.Authors = CleanAuthors(rec.Authors)
	if rec.Conference != nil {
		rec.Conference.Name = CleanString(rec.Conference.Name, 256)
		rec.Conference.Venue = CleanString(rec.Conference.Venue, 256)
		rec.Conference.Volume = CleanString(rec.Conference.Volume, 64)
		rec.Conference.Number = CleanString(rec.Conference.Number, 64)
		rec.Conference.Date = CleanString(rec.Conference.Date, 32)
	}
}
