package main

import (
	"github.com/spf13/cobra"

	"citekit/src/cmd/cite/titlecmd"
)

func newTitleCmd() *cobra.Command { return titlecmd.New() }
