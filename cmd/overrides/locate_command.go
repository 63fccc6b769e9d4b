package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/overrides/config"
	clierrors "github.com/randalmurphal/overrides/errors"
	"github.com/randalmurphal/overrides/layer"
)

func newLocateCommand(ctx *commandContext) *cobra.Command {
	var roots []string

	cmd := &cobra.Command{
		Use:   "locate [prefix...]",
		Short: "List the property resources of prefixes and their merged defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := ctx.logger(cmd.ErrOrStderr())
			s, _ := ctx.settings(logger, map[string]string{
				config.KeyRoots:    joinFlag(roots),
				config.KeyPrefixes: joinFlag(args),
			})

			prefixes := s.List(config.KeyPrefixes)
			if len(prefixes) == 0 {
				return clierrors.NewNoPrefixesError()
			}

			r := ctx.resolver(logger, s)
			refs := r.Locator.Locate(prefixes...)
			merged := layer.Merge(r.Reader.Read(refs)...)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Resources:")
			if len(refs) == 0 {
				fmt.Fprintln(out, "  (none)")
			}
			for _, ref := range refs {
				fmt.Fprintf(out, "  %s\n", ref)
			}

			fmt.Fprintln(out, "Defaults:")
			if merged.Len() == 0 {
				fmt.Fprintln(out, "  (none)")
			}
			for _, key := range merged.Keys() {
				value, _ := merged.Get(key)
				fmt.Fprintf(out, "  %s=%s\n", key, value)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&roots, "root", "r", nil, "Directory to search for property resources (repeatable)")
	return cmd
}
