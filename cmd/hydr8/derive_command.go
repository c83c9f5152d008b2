package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0xalexb/hydr8/resolve"
)

func newDeriveCommand(ctx *commandContext) *cobra.Command {
	var scope string
	var format string

	cmd := &cobra.Command{
		Use:   "derive MODULE [QUALNAME]",
		Short: "Show the path derived for a function location and what it resolves to",
		Example: "  hydr8 -c app.yaml derive myapp.db.pool\n" +
			"  hydr8 -c app.yaml derive myapp.db Client.Open --scope fn",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.tree()
			if err != nil {
				return err
			}

			var qualname string
			if len(args) > 1 {
				qualname = args[1]
			}

			loc := resolve.NewLocation(args[0], qualname)

			path, err := resolve.DerivePath(cfg, loc, resolve.Scope(scope))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Location: %s\n", loc)
			fmt.Fprintf(out, "Path: %s\n", path)

			mapping, err := resolve.Resolve(cfg, path)
			if err != nil {
				return err
			}

			return writeMapping(out, format, mapping)
		},
	}

	cmd.Flags().StringVar(&scope, "scope", string(resolve.ScopeModule), "Derivation scope: module or fn")
	addFormatFlag(cmd, &format)

	return cmd
}
