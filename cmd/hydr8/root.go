package main

import (
	"github.com/spf13/cobra"

	"github.com/0xalexb/hydr8/logging"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var rootFlag string
	var logLevelFlag string
	var logFormatFlag string

	ctx := newCommandContext(&configFlag, &rootFlag, &logLevelFlag, &logFormatFlag)

	rootCmd := &cobra.Command{
		Use:           "hydr8",
		Short:         "Inspect hierarchical configuration files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file (.yaml, .yml, .toml or .json)")
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "Use the mapping at this path of the file as the whole tree")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", logging.FormatText, "Log format: text or json")

	rootCmd.AddCommand(newResolveCommand(ctx))
	rootCmd.AddCommand(newDeriveCommand(ctx))
	rootCmd.AddCommand(newKeysCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
