// Package indexcmd rebuilds the JSON metadata indexes.
package indexcmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"citekit/src/internal/store"
)

type CommitFunc func(paths []string, message string) error

// New returns the index command which rebuilds metadata indexes.
func New(commit CommitFunc) *cobra.Command {
	var doCommit bool
	cmd := &cobra.Command{
		Use:          "index",
		Short:        "Rebuild metadata indexes (authors, titles)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := store.BuildIndexes()
			if err != nil {
				return err
			}
			for _, p := range written {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p); err != nil {
					return err
				}
			}
			if !doCommit {
				return nil
			}
			// Stage the full metadata dir so removed index files disappear too.
			if err := commit([]string{store.MetadataDir}, "index: rebuild metadata"); err != nil {
				if strings.Contains(err.Error(), "not a git repository") {
					const warning = "warning: skipping git commit (not a git repository)"
					_, werr := fmt.Fprintln(cmd.ErrOrStderr(), warning)
					return werr
				}
				return err
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&doCommit, "commit", false, "git commit the rebuilt indexes")
	return cmd
}
