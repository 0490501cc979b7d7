package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"citekit/src/internal/store"
)

var dataDir string

var rootCmd = &cobra.Command{
	Use:   "cite",
	Short: "Citation store CLI (YAML records, APA and IEEE formatting)",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if dataDir != "" {
			store.Root = dataDir
		}
	},
}

func execute() error {
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "", "directory holding the data tree (default current directory)")
	// Attach subcommands
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newIndexCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newTitleCmd())
	return rootCmd.Execute()
}

func main() {
	if err := execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
