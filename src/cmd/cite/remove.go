package main

import (
	"github.com/spf13/cobra"

	"citekit/src/cmd/cite/removecmd"
)

func newRemoveCmd() *cobra.Command { return removecmd.New(commitFiles) }
