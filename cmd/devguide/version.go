package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joestump/devguide/internal/build"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), build.Summary())
		},
	}
}
