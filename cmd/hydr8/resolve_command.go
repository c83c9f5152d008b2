package main

import (
	"github.com/spf13/cobra"

	"github.com/0xalexb/hydr8/resolve"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "resolve [PATH]",
		Short: "Print the mapping at PATH with references resolved",
		Long:  "Print the mapping at PATH with ${...} references resolved. An omitted PATH selects the whole tree.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.tree()
			if err != nil {
				return err
			}

			var path string
			if len(args) > 0 {
				path = args[0]
			}

			mapping, err := resolve.Resolve(cfg, path)
			if err != nil {
				return err
			}

			return writeMapping(cmd.OutOrStdout(), format, mapping)
		},
	}

	addFormatFlag(cmd, &format)

	return cmd
}
