// Package addcmd builds the "add" subcommands, one per record kind. Each
// subcommand assembles a schema.Record from flags, maps it through the
// citation engine to validate it, and writes it to the store.
package addcmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"citekit/src/internal/dates"
	"citekit/src/internal/names"
	"citekit/src/internal/sanitize"
	"citekit/src/internal/schema"
	"citekit/src/internal/store"
	"citekit/src/internal/stringsx"
)

type CommitFunc func(paths []string, message string) error

type Builder struct {
	Commit CommitFunc
}

func New(commit CommitFunc) Builder { return Builder{Commit: commit} }

const (
	msgWrote       = "wrote %s\n"
	msgAddCitation = "add citation: %s"
)

// recordFlags carries the flags every add subcommand accepts.
type recordFlags struct {
	id      string
	title   string
	authors []string
	org     string
	year    int
	month   int
	day     int
	commit  bool
}

func (f *recordFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&f.id, "id", "", "citation id (default: title slug plus year)")
	c.Flags().StringVar(&f.title, "title", "", "work title")
	c.Flags().StringArrayVar(&f.authors, "author", nil, "contributor as 'Surname, First Middle' (repeatable)")
	c.Flags().StringVar(&f.org, "org", "", "organization author (instead of --author)")
	c.Flags().IntVar(&f.year, "year", 0, "publication year")
	c.Flags().IntVar(&f.month, "month", 0, "publication month (1-12)")
	c.Flags().IntVar(&f.day, "day", 0, "publication day of month")
	c.Flags().BoolVar(&f.commit, "commit", false, "git commit the written record")
}

func (f *recordFlags) record(kind string) (schema.Record, error) {
	rec := schema.Record{ID: f.id, Kind: kind, Title: f.title}
	authors, err := parseAuthors(f.authors, f.org)
	if err != nil {
		return schema.Record{}, err
	}
	rec.Authors = authors
	if f.year != 0 || f.month != 0 || f.day != 0 {
		rec.Published = &schema.Date{Year: f.year, Month: f.month, Day: f.day}
	}
	return rec, nil
}

func parseAuthors(people []string, org string) (schema.Authors, error) {
	if strings.TrimSpace(org) != "" {
		if len(people) > 0 {
			return nil, fmt.Errorf("--org cannot be combined with --author")
		}
		return schema.Authors{{Org: strings.TrimSpace(org)}}, nil
	}
	var out schema.Authors
	for _, raw := range people {
		p, err := names.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("author %q: %w", raw, err)
		}
		out = append(out, schema.Author{Surname: p.Surname(), First: p.First(), Middle: p.Middle()})
	}
	return out, nil
}

// Book returns the "add book" subcommand.
func (b Builder) Book() *cobra.Command {
	var rf recordFlags
	var chapter, vols, semver, doi, pages string
	var edition, volume int
	var digital bool
	c := &cobra.Command{
		Use:          "book",
		Short:        "Add a book or book chapter",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := rf.record(schema.KindBook)
			if err != nil {
				return err
			}
			rec.Chapter = chapter
			rec.DOI = doi
			if rec.Edition, err = editionFlags(edition, digital, volume, vols, semver); err != nil {
				return err
			}
			if rec.Pages, err = parsePages(pages); err != nil {
				return err
			}
			return b.writeCommitPrint(cmd, rec, rf.commit)
		},
	}
	rf.register(c)
	c.Flags().StringVar(&chapter, "chapter", "", "chapter title (the work title becomes its container)")
	c.Flags().IntVar(&edition, "edition", 0, "numbered edition (2 renders as 2nd ed.)")
	c.Flags().BoolVar(&digital, "digital", false, "mark the numbered edition digital")
	c.Flags().IntVar(&volume, "volume", 0, "single volume number")
	c.Flags().StringVar(&vols, "vols", "", "volume range as start-end (1-3)")
	c.Flags().StringVar(&semver, "semver", "", "semantic version (4, 4.0, or 4.0.1)")
	c.Flags().StringVar(&doi, "doi", "", "DOI")
	c.Flags().StringVar(&pages, "pages", "", "page range as start-end (11-42)")
	return c
}

// Manual returns the "add manual" subcommand.
func (b Builder) Manual() *cobra.Command {
	var rf recordFlags
	var accessed, urlStr, doi, provider, semver string
	var edition int
	var digital bool
	c := &cobra.Command{
		Use:          "manual",
		Short:        "Add an online manual or technical documentation",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := rf.record(schema.KindManual)
			if err != nil {
				return err
			}
			rec.Accessed = stringsx.FirstNonEmpty(accessed, dates.Today().ISO())
			rec.URL = urlStr
			rec.DOI = doi
			rec.Provider = provider
			if rec.Edition, err = editionFlags(edition, digital, 0, "", semver); err != nil {
				return err
			}
			return b.writeCommitPrint(cmd, rec, rf.commit)
		},
	}
	rf.register(c)
	c.Flags().StringVar(&accessed, "accessed", "", "access date YYYY-MM-DD (default today)")
	c.Flags().StringVar(&urlStr, "url", "", "retrieval URL")
	c.Flags().StringVar(&doi, "doi", "", "DOI (wins over --url)")
	c.Flags().StringVar(&provider, "provider", "", "provider name when no public URL exists")
	c.Flags().IntVar(&edition, "edition", 0, "numbered edition")
	c.Flags().BoolVar(&digital, "digital", false, "mark the numbered edition digital")
	c.Flags().StringVar(&semver, "semver", "", "semantic version (4, 4.0, or 4.0.1)")
	return c
}

// Video returns the "add video" subcommand.
func (b Builder) Video() *cobra.Command {
	var rf recordFlags
	var channel, platform, urlStr, accessed string
	c := &cobra.Command{
		Use:          "video",
		Short:        "Add an online video",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := rf.record(schema.KindVideo)
			if err != nil {
				return err
			}
			rec.Channel = channel
			rec.Platform = platform
			rec.URL = urlStr
			rec.Accessed = stringsx.FirstNonEmpty(accessed, dates.Today().ISO())
			return b.writeCommitPrint(cmd, rec, rf.commit)
		},
	}
	rf.register(c)
	c.Flags().StringVar(&channel, "channel", "", "channel or uploader name")
	c.Flags().StringVar(&platform, "platform", "", "hosting platform (default YouTube)")
	c.Flags().StringVar(&urlStr, "url", "", "video URL")
	c.Flags().StringVar(&accessed, "accessed", "", "access date YYYY-MM-DD (default today)")
	return c
}

// Paper returns the "add paper" subcommand.
func (b Builder) Paper() *cobra.Command {
	return b.conferenceCmd("paper", schema.KindPaper, "Add a conference paper record")
}

// Proceedings returns the "add proceedings" subcommand.
func (b Builder) Proceedings() *cobra.Command {
	return b.conferenceCmd("proceedings", schema.KindProceedings, "Add a conference proceedings record")
}

func (b Builder) conferenceCmd(use, kind, short string) *cobra.Command {
	var rf recordFlags
	var name, venue, volume, number, date string
	c := &cobra.Command{
		Use:          use,
		Short:        short,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := rf.record(kind)
			if err != nil {
				return err
			}
			if name != "" || venue != "" || volume != "" || number != "" || date != "" {
				rec.Conference = &schema.Conference{
					Name:   name,
					Venue:  venue,
					Volume: volume,
					Number: number,
					Date:   date,
				}
			}
			return b.writeCommitPrint(cmd, rec, rf.commit)
		},
	}
	rf.register(c)
	c.Flags().StringVar(&name, "conference", "", "conference name")
	c.Flags().StringVar(&venue, "venue", "", "venue")
	c.Flags().StringVar(&volume, "volume", "", "volume")
	c.Flags().StringVar(&number, "number", "", "number")
	c.Flags().StringVar(&date, "date", "", "conference date YYYY-MM-DD")
	return c
}

func editionFlags(number int, digital bool, volume int, vols, semver string) (*schema.Edition, error) {
	e := schema.Edition{Number: number, Digital: digital, Volume: volume, SemVer: strings.TrimSpace(semver)}
	if strings.TrimSpace(vols) != "" {
		start, end, err := splitRange(vols)
		if err != nil {
			return nil, fmt.Errorf("--vols: %w", err)
		}
		e.VolumeStart, e.VolumeEnd = start, end
	}
	if e == (schema.Edition{}) {
		return nil, nil
	}
	return &e, nil
}

func parsePages(s string) (*schema.PageRange, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	start, end, err := splitRange(s)
	if err != nil {
		return nil, fmt.Errorf("--pages: %w", err)
	}
	return &schema.PageRange{Start: start, End: end}, nil
}

func splitRange(s string) (int, int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want start-end, got %q", s)
	}
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func (b Builder) writeCommitPrint(cmd *cobra.Command, rec schema.Record, doCommit bool) error {
	sanitize.CleanRecord(&rec)
	if strings.TrimSpace(rec.ID) == "" {
		rec.ID = defaultID(rec)
	}
	// Map through the engine so bad dates, names, and editions are rejected
	// before anything is written.
	if _, err := rec.Citation(); err != nil {
		return err
	}
	path, err := store.WriteRecord(rec)
	if err != nil {
		return err
	}
	if doCommit {
		if err := b.Commit([]string{path}, fmt.Sprintf(msgAddCitation, rec.ID)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), msgWrote, path)
	return err
}

func defaultID(rec schema.Record) string {
	var year *int
	if rec.Published != nil && rec.Published.Year != 0 {
		y := rec.Published.Year
		year = &y
	}
	if s := schema.Slugify(rec.Title, year); s != "" {
		return s
	}
	return schema.NewID()
}
