package main

import (
	"github.com/spf13/cobra"

	"citekit/src/cmd/cite/formatcmd"
)

func newFormatCmd() *cobra.Command { return formatcmd.New() }
