// Package listcmd renders a table of stored citations.
package listcmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"citekit/src/internal/cite"
	"citekit/src/internal/store"
)

// New returns the list command. The default order is by id; --by-date sorts
// newest publication first with undated records last.
func New() *cobra.Command {
	var byDate bool
	var kindFilter string
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List stored citations (id, kind, year, title)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			bib, err := store.ReadBibliography()
			if err != nil {
				return err
			}
			if byDate {
				bib.SortByPublishDate()
			}
			kf := strings.TrimSpace(kindFilter)
			rows := make([][]string, 0, bib.Len())
			for _, c := range bib.Citations() {
				if kf != "" && !strings.Contains(c.Kind().String(), kf) {
					continue
				}
				rows = append(rows, []string{c.ID(), c.Kind().String(), yearOf(c), c.Title()})
			}
			renderTable(cmd.OutOrStdout(), []string{"id", "kind", "year", "title"}, rows)
			return nil
		},
	}
	cmd.Flags().BoolVar(&byDate, "by-date", false, "sort newest publication date first")
	cmd.Flags().StringVar(&kindFilter, "kind", "", "only show kinds matching this substring (book, manual, video, paper, proceedings)")
	return cmd
}

func yearOf(c cite.Citation) string {
	d, ok := c.Published()
	if !ok {
		return ""
	}
	return strconv.Itoa(d.Year())
}

func renderTable(w io.Writer, headers []string, rows [][]string) {
	widths := colWidths(headers, rows)
	writeColumns(w, headers, widths)
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	writeColumns(w, sep, widths)
	for _, r := range rows {
		writeColumns(w, r, widths)
	}
}

func colWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, r := range rows {
		for i := range headers {
			if i < len(r) && len(r[i]) > widths[i] {
				widths[i] = len(r[i])
			}
		}
	}
	return widths
}

func writeColumns(w io.Writer, cols []string, widths []int) {
	for i, width := range widths {
		val := ""
		if i < len(cols) {
			val = cols[i]
		}
		_, _ = fmt.Fprintf(w, "%-*s", width, val)
		if i != len(widths)-1 {
			_, _ = fmt.Fprint(w, "  ")
		}
	}
	_, _ = fmt.Fprint(w, "\n")
}
