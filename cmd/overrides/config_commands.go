package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/overrides/config"
	clierrors "github.com/randalmurphal/overrides/errors"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show and change settings",
	}

	configCmd.AddCommand(newConfigShowCommand(ctx))
	configCmd.AddCommand(newConfigSetCommand(ctx))
	configCmd.AddCommand(newConfigUnsetCommand(ctx))

	return configCmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show resolved settings and where each came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, r := ctx.settings(ctx.logger(cmd.ErrOrStderr()), nil)

			tw := table.NewWriter()
			tw.SetStyle(table.StyleLight)
			tw.AppendHeader(table.Row{"Key", "Value", "Source"})
			for _, key := range s.Keys() {
				value, source := s.GetWithSource(key)
				tw.AppendRow(table.Row{key, value, source})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, tw.Render())
			if path := r.GlobalPath(); path != "" {
				fmt.Fprintf(out, "Global: %s\n", path)
			}
			if path := r.LocalPath(); path != "" {
				fmt.Fprintf(out, "Local:  %s\n", path)
			}
			return nil
		},
	}
}

func newConfigSetCommand(ctx *commandContext) *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Save a setting",
		Example: `  overrides config set format json
  overrides config set roots conf,/etc/app
  overrides config set --local prefixes db,cache`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := validKey(ctx.opts, key); err != nil {
				return err
			}

			save := config.SaveConfigFor(ctx.opts)
			if local {
				_, r := ctx.settings(ctx.logger(cmd.ErrOrStderr()), nil)
				if r.GitRoot() == "" {
					return clierrors.NewNotInGitRepoError()
				}
				if err := save.SaveLocal(r.GitRoot(), key, value); err != nil {
					return fmt.Errorf("save local setting: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s to %s\n", key, r.LocalPath())
				return nil
			}

			if err := save.SaveGlobal(key, value); err != nil {
				return fmt.Errorf("save global setting: %w", err)
			}
			path, _ := save.GlobalPath()
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s to %s\n", key, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "Save to the repository settings file instead of the global one")
	return cmd
}

func newConfigUnsetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a global setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validKey(ctx.opts, args[0]); err != nil {
				return err
			}
			if err := config.SaveConfigFor(ctx.opts).DeleteGlobalKey(args[0]); err != nil {
				return fmt.Errorf("remove global setting: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}

func validKey(opts config.Options, key string) error {
	if len(opts.ValidKeys) == 0 {
		return nil
	}
	for _, k := range opts.ValidKeys {
		if k == key {
			return nil
		}
	}
	return clierrors.NewUnknownSettingError(key, opts.ValidKeys)
}
