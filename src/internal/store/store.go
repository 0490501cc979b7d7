// Package store persists citation records as one YAML file each under a
// data directory and derives JSON metadata indexes from them.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"citekit/src/internal/cite"
	"citekit/src/internal/schema"
)

const (
	CitationsDir = "data/citations"
	MetadataDir  = "data/metadata"
	AuthorsJSON  = "data/metadata/authors.json"
	TitlesJSON   = "data/metadata/titles.json"
	BibFile      = "data/citations.bib"
)

// Root is the directory every store path is resolved against. The CLI
// overrides it with --dir; tests point it at a temp directory.
var Root = "."

// ErrNotFound reports that no stored record has the requested id.
var ErrNotFound = errors.New("citation not found")

// rooted resolves a repo-relative location against Root.
func rooted(rel string) string { return filepath.Join(Root, filepath.FromSlash(rel)) }

// ensureMetaDir creates the metadata directory if missing.
func ensureMetaDir() error { return os.MkdirAll(rooted(MetadataDir), 0o755) }

// recordPath returns the repo-relative path of the YAML file for a record.
func recordPath(rec schema.Record) string {
	return filepath.ToSlash(filepath.Join(CitationsDir, SegmentForKind(rec.Kind), rec.ID+".yaml"))
}

// writeJSON writes the given value to the target JSON file with indentation.
func writeJSON(rel string, v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	target := rooted(rel)
	if err := os.WriteFile(target, b, 0o644); err != nil {
		return "", err
	}
	return target, nil
}

// SegmentForKind maps a record kind to its subdirectory under data/citations.
// Unknown kinds fall back to "citation".
func SegmentForKind(kind string) string {
	k := strings.ToLower(strings.TrimSpace(kind))
	switch k {
	case schema.KindBook, schema.KindManual, schema.KindVideo, schema.KindPaper, schema.KindProceedings:
		return k
	default:
		return "citation"
	}
}

// WriteRecord validates and writes the record YAML to
// data/citations/<segment>/<id>.yaml. A missing id is filled with a fresh
// UUID before validation.
func WriteRecord(rec schema.Record) (string, error) {
	if strings.TrimSpace(rec.ID) == "" {
		rec.ID = schema.NewID()
	}
	if err := rec.Validate(); err != nil {
		return "", err
	}
	subdir := rooted(filepath.Join(CitationsDir, SegmentForKind(rec.Kind)))
	if err := os.MkdirAll(subdir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(subdir, rec.ID+".yaml")
	buf, err := yaml.Marshal(rec)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// ReadAll loads, validates, and returns all records under data/citations,
// sorted by id.
func ReadAll() ([]schema.Record, error) {
	var records []schema.Record
	dir := rooted(CitationsDir)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return records, nil
	}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var rec schema.Record
		if err := yaml.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("invalid record in %s: %w", path, err)
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

// ReadBibliography maps every stored record into the citation engine and
// collects the results. Invalid records and duplicate ids are errors.
func ReadBibliography() (*cite.Bibliography, error) {
	records, err := ReadAll()
	if err != nil {
		return nil, err
	}
	bib := cite.NewBibliography()
	for _, rec := range records {
		c, err := rec.Citation()
		if err != nil {
			return nil, err
		}
		if err := bib.Add(c); err != nil {
			return nil, err
		}
	}
	return bib, nil
}

// Remove deletes the record file with the given id wherever it lives under
// data/citations and returns the deleted path.
func Remove(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("%w: empty id", ErrNotFound)
	}
	dir := rooted(CitationsDir)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	var found string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != id+".yaml" {
			return nil
		}
		found = path
		return fs.SkipAll
	})
	if err != nil {
		return "", err
	}
	if found == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := os.Remove(found); err != nil {
		return "", err
	}
	return found, nil
}

// BuildAuthorIndex writes data/metadata/authors.json mapping author key to
// the YAML paths of the records they contributed to. The key is
// "Surname, First" when both are present, otherwise the non-empty component
// or the organization name.
func BuildAuthorIndex(records []schema.Record) (string, error) {
	if err := ensureMetaDir(); err != nil {
		return "", err
	}
	index := map[string][]string{}
	for _, rec := range records {
		path := recordPath(rec)
		seen := map[string]bool{}
		for _, au := range rec.Authors {
			key := authorKey(au)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			index[key] = append(index[key], path)
		}
	}
	for k := range index {
		sort.Strings(index[k])
	}
	return writeJSON(AuthorsJSON, index)
}

func authorKey(au schema.Author) string {
	if org := strings.TrimSpace(au.Org); org != "" {
		return org
	}
	surname := strings.TrimSpace(au.Surname)
	first := strings.TrimSpace(au.First)
	switch {
	case surname != "" && first != "":
		return surname + ", " + first
	case surname != "":
		return surname
	default:
		return first
	}
}

// BuildTitleIndex writes data/metadata/titles.json mapping title to the
// record's YAML path.
func BuildTitleIndex(records []schema.Record) (string, error) {
	if err := ensureMetaDir(); err != nil {
		return "", err
	}
	index := map[string]string{}
	for _, rec := range records {
		index[rec.Title] = recordPath(rec)
	}
	return writeJSON(TitlesJSON, index)
}

// BuildIndexes rebuilds every metadata index from the stored records and
// returns the files written.
func BuildIndexes() ([]string, error) {
	records, err := ReadAll()
	if err != nil {
		return nil, err
	}
	written := make([]string, 0, 2)
	for _, build := range []func([]schema.Record) (string, error){BuildAuthorIndex, BuildTitleIndex} {
		path, err := build(records)
		if err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	return written, nil
}
