package main

import (
	"github.com/spf13/cobra"

	"citekit/src/cmd/cite/listcmd"
)

func newListCmd() *cobra.Command { return listcmd.New() }
