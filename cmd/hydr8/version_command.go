package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0xalexb/hydr8"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "hydr8 %s (built %s)\n", hydr8.Version, hydr8.CompiledAt)

			return nil
		},
	}
}
