package main

import (
	"github.com/spf13/cobra"

	"citekit/src/cmd/cite/exportcmd"
)

func newExportCmd() *cobra.Command { return exportcmd.New() }
