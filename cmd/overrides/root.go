package main

import (
	"github.com/spf13/cobra"

	"github.com/randalmurphal/overrides/config"
)

func newRootCommand(opts config.Options) *cobra.Command {
	ctx := &commandContext{opts: opts}

	rootCmd := &cobra.Command{
		Use:           "overrides",
		Short:         "Resolve layered property defaults and environment overrides",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().CountVarP(&ctx.verbosity, "verbose", "v", "Log decisions to stderr (-v info, -vv debug)")

	rootCmd.AddCommand(newResolveCommand(ctx))
	rootCmd.AddCommand(newLocateCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write([]byte("overrides " + version + "\n"))
			return err
		},
	}
}
