// Package formatcmd prints formatted citation strings for stored records.
package formatcmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"citekit/src/internal/cite"
	"citekit/src/internal/store"
)

// New returns the format command. With --style apa or ieee the bare citation
// string is printed; the default prints both styles with labels.
func New() *cobra.Command {
	var style string
	cmd := &cobra.Command{
		Use:          "format <id>",
		Short:        "Print the APA or IEEE citation for a stored record",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			bib, err := store.ReadBibliography()
			if err != nil {
				return err
			}
			c, ok := bib.Get(id)
			if !ok {
				return fmt.Errorf("no citation found for id %s", id)
			}
			if style == "both" {
				for _, st := range []cite.Style{cite.StyleAPA, cite.StyleIEEE} {
					s, err := cite.Format(c, st)
					if err != nil {
						return err
					}
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", st, s); err != nil {
						return err
					}
				}
				return nil
			}
			st, err := cite.ParseStyle(style)
			if err != nil {
				return err
			}
			s, err := cite.Format(c, st)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
	cmd.Flags().StringVarP(&style, "style", "s", "both", "citation style: apa, ieee, or both")
	return cmd
}
