package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0xalexb/hydr8/inject"
)

func newKeysCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "keys PATH",
		Short: "List the keys of the mapping at PATH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ctx.ensureStore()
			if err != nil {
				return err
			}

			keys, err := inject.Use(st, inject.AtPath(args[0])).Keys()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, key := range keys {
				fmt.Fprintln(out, key)
			}

			return nil
		},
	}
}
