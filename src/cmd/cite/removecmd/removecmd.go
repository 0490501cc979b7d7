// Package removecmd deletes stored citation records.
package removecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"citekit/src/internal/store"
)

type CommitFunc func(paths []string, message string) error

// New returns the remove command.
func New(commit CommitFunc) *cobra.Command {
	var doCommit bool
	cmd := &cobra.Command{
		Use:          "remove <id>",
		Short:        "Delete the stored record with the given id",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			path, err := store.Remove(id)
			if err != nil {
				return err
			}
			if doCommit {
				if err := commit([]string{path}, fmt.Sprintf("remove citation: %s", id)); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", path)
			return err
		},
	}
	cmd.Flags().BoolVar(&doCommit, "commit", false, "git commit the deletion")
	return cmd
}
