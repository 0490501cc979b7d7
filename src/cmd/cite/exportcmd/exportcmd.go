// Package exportcmd writes the stored records out as a BibTeX library.
package exportcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"citekit/src/internal/store"
)

// New returns the export command producing a consolidated BibTeX file.
func New() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:          "export",
		Short:        "Export all stored records to a consolidated BibTeX file",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := store.ExportBibTeX(out)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output .bib path (default data/citations.bib)")
	return cmd
}
