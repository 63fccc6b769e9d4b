package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/overrides"
	"github.com/randalmurphal/overrides/config"
	clierrors "github.com/randalmurphal/overrides/errors"
	"github.com/randalmurphal/overrides/notify"
	"github.com/randalmurphal/overrides/report"
)

// newNotifier always logs the pass summary and also posts it to the given
// webhooks.
func newNotifier(logger *slog.Logger, webhook, slack string) notify.Notifier {
	notifiers := []notify.Notifier{notify.NewLogNotifier(logger)}
	if webhook != "" {
		notifiers = append(notifiers, notify.NewWebhookNotifier(webhook, nil))
	}
	if slack != "" {
		notifiers = append(notifiers, notify.NewSlackNotifier(slack))
	}
	m := notify.NewMultiNotifier(notifiers...)
	m.Logger = logger
	return m
}

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var (
		targetPath string
		roots      []string
		sets       []string
		envFiles   []string
		format     string
		hideUnset  bool
		write      bool
		webhook    string
		slack      string
	)

	cmd := &cobra.Command{
		Use:   "resolve [prefix...]",
		Short: "Apply property defaults and overrides to a target",
		Long: `Resolve reads the property resources of every prefix from the configured
roots, merges them and applies the result to the target. It then looks up
prefix.key for every target key in --set assignments, the environment and
env files, and applies each value found.

Without --target the target accepts every key the defaults define.`,
		Example: `  overrides resolve db --target db.toml --root conf
  overrides resolve db cache --set db.timeout=45 --format json
  overrides resolve db --target db.toml --env-file ci.env --write`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write && targetPath == "" {
				return clierrors.NewFlagRequiresError("write", "target")
			}

			logger := ctx.logger(cmd.ErrOrStderr())
			flags := map[string]string{
				config.KeyFormat:   format,
				config.KeyRoots:    joinFlag(roots),
				config.KeyPrefixes: joinFlag(args),
				config.KeyEnvFile:  joinFlag(envFiles),
			}
			if hideUnset {
				flags[config.KeyHideUnset] = "true"
			}
			s, _ := ctx.settings(logger, flags)

			prefixes := s.List(config.KeyPrefixes)
			if len(prefixes) == 0 {
				return clierrors.NewNoPrefixesError()
			}
			outFormat, err := ctx.format(cmd.OutOrStdout(), s)
			if err != nil {
				return err
			}
			t, err := loadTarget(targetPath)
			if err != nil {
				return err
			}
			lookup, err := ctx.lookup(s, sets)
			if err != nil {
				return err
			}

			decisions := &overrides.DecisionLog{}
			r := ctx.resolver(logger, s)
			r.Observer = decisions

			refs := r.Locator.Locate(prefixes...)
			r.ApplyRefs(t, lookup, refs, prefixes...)

			if write {
				if err := saveTarget(targetPath, t); err != nil {
					return err
				}
			}

			rep := report.New(refStrings(refs), decisions.Decisions(), t.Values())
			rep.HideUnset = s.Bool(config.KeyHideUnset)
			if err := rep.Render(cmd.OutOrStdout(), outFormat); err != nil {
				return fmt.Errorf("render report: %w", err)
			}

			// Delivery failures are logged by the notifier and do not fail the command.
			_ = newNotifier(logger, webhook, slack).Notify(cmd.Context(), notify.Summarize(prefixes, decisions.Decisions()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "target", "t", "", "TOML file describing the target keys and their initial values")
	cmd.Flags().StringArrayVarP(&roots, "root", "r", nil, "Directory to search for property resources (repeatable)")
	cmd.Flags().StringArrayVarP(&sets, "set", "s", nil, "Override as prefix.key=value (repeatable)")
	cmd.Flags().StringArrayVar(&envFiles, "env-file", nil, "Read overrides from a .env file (repeatable)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table, yaml or json")
	cmd.Flags().BoolVar(&hideUnset, "hide-unset", false, "Omit overrides that were not set from table output")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the resolved values back to the target file")
	cmd.Flags().StringVar(&webhook, "webhook", "", "POST a JSON summary of the pass to this URL")
	cmd.Flags().StringVar(&slack, "slack-webhook", "", "Post a summary of the pass to this Slack webhook")

	return cmd
}
