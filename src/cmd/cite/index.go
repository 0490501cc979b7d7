package main

import (
	"github.com/spf13/cobra"

	"citekit/src/cmd/cite/indexcmd"
)

func newIndexCmd() *cobra.Command { return indexcmd.New(commitFiles) }
