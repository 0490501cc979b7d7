// Package titlecmd extracts the document title from saved HTML.
package titlecmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"citekit/src/internal/htmltitle"
	"citekit/src/internal/sanitize"
)

// New returns the title command. The argument is an HTML file path, or "-"
// to read HTML from stdin.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "title <file|->",
		Short:        "Print the <title> of a saved HTML document",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, closeSrc, err := openSource(cmd, args[0])
			if err != nil {
				return err
			}
			defer closeSrc()
			title, ok := htmltitle.Extract(src)
			if !ok {
				return fmt.Errorf("no title found")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sanitize.CleanString(title, 512))
			return err
		},
	}
	return cmd
}

func openSource(cmd *cobra.Command, arg string) (io.Reader, func(), error) {
	if arg == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
