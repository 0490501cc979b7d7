package main

import (
	"github.com/spf13/cobra"

	"citekit/src/cmd/cite/addcmd"
)

// newAddCmd constructs the "add" command grouping subcommands for each kind.
func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "add", Short: "Add a citation record (book, manual, video, paper, proceedings)"}
	b := addcmd.New(commitFiles)
	cmd.AddCommand(
		b.Book(),
		b.Manual(),
		b.Video(),
		b.Paper(),
		b.Proceedings(),
	)
	return cmd
}
