package removecmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"citekit/src/internal/schema"
	"citekit/src/internal/store"
)

func chtemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	old, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(old) })
	_ = os.Chdir(dir)
}

func runCmd(c *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	c.SetOut(buf)
	c.SetErr(buf)
	c.SetArgs(args)
	err := c.Execute()
	return buf.String(), err
}

func TestRemove_DeletesRecord(t *testing.T) {
	chtemp(t)
	rec := schema.Record{ID: "alpha", Kind: schema.KindBook, Title: "Alpha"}
	path, err := store.WriteRecord(rec)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	out, err := runCmd(New(nil), "alpha")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !strings.Contains(out, "removed "+filepath.Join("data", "citations", "book", "alpha.yaml")) {
		t.Fatalf("unexpected output: %q", out)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected record file deleted")
	}
}

func TestRemove_UnknownID(t *testing.T) {
	chtemp(t)
	_, err := runCmd(New(nil), "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestRemove_CommitFlag(t *testing.T) {
	chtemp(t)
	if _, err := store.WriteRecord(schema.Record{ID: "alpha", Kind: schema.KindBook, Title: "Alpha"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var gotPaths []string
	var gotMsg string
	commit := func(paths []string, msg string) error { gotPaths, gotMsg = paths, msg; return nil }
	if _, err := runCmd(New(commit), "alpha", "--commit"); err != nil {
		t.Fatalf("remove --commit: %v", err)
	}
	if len(gotPaths) != 1 || !strings.HasSuffix(gotPaths[0], "alpha.yaml") {
		t.Fatalf("unexpected commit paths: %v", gotPaths)
	}
	if gotMsg != "remove citation: alpha" {
		t.Fatalf("unexpected commit message: %q", gotMsg)
	}
}

func TestRemove_CommitErrorSurfaces(t *testing.T) {
	chtemp(t)
	if _, err := store.WriteRecord(schema.Record{ID: "alpha", Kind: schema.KindBook, Title: "Alpha"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	commit := func(paths []string, msg string) error { return errors.New("boom") }
	if _, err := runCmd(New(commit), "alpha", "--commit"); err == nil {
		t.Fatalf("expected commit error to surface")
	}
}

func TestRemove_RequiresID(t *testing.T) {
	if _, err := runCmd(New(nil)); err == nil {
		t.Fatalf("expected error for missing id argument")
	}
}
