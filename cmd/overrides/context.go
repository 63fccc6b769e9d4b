package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/randalmurphal/overrides"
	"github.com/randalmurphal/overrides/config"
	"github.com/randalmurphal/overrides/env"
	clierrors "github.com/randalmurphal/overrides/errors"
	"github.com/randalmurphal/overrides/report"
	"github.com/randalmurphal/overrides/resource"
)

// commandContext carries state shared by every command.
type commandContext struct {
	opts      config.Options
	verbosity int
}

func (c *commandContext) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case c.verbosity >= 2:
		level = slog.LevelDebug
	case c.verbosity == 1:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// settings resolves the command settings, letting non-empty flag values win.
func (c *commandContext) settings(logger *slog.Logger, flags map[string]string) (*config.Settings, *config.Resolver) {
	opts := c.opts
	opts.Logger = logger
	r := config.NewResolver(opts)
	return r.ResolveWithFlags(flags), r
}

// resolver builds a resolver over the configured root directories.
func (c *commandContext) resolver(logger *slog.Logger, s *config.Settings) *overrides.Resolver {
	var roots resource.Roots
	for _, dir := range s.List(config.KeyRoots) {
		roots = append(roots, resource.DirRoot(dir))
	}

	r := overrides.New(roots)
	r.Logger = logger
	r.Locator.Logger = logger
	r.Reader.Logger = logger
	return r
}

// lookup chains --set assignments, the process environment and env files,
// first hit winning.
func (c *commandContext) lookup(s *config.Settings, assignments []string) (env.Lookup, error) {
	set, err := env.ParseAssignments(assignments)
	if err != nil {
		return nil, err
	}

	files := s.List(config.KeyEnvFile)
	dotenv, err := env.DotEnv(files...)
	if err != nil {
		return nil, clierrors.WrapEnvFileError(err, files)
	}

	return env.Chain(set, env.OS(), dotenv), nil
}

// format returns the configured report format. Without one, terminals get a
// table and everything else YAML.
func (c *commandContext) format(out io.Writer, s *config.Settings) (report.Format, error) {
	name := s.Get(config.KeyFormat)
	if name == "" {
		if isTerminal(out) {
			return report.FormatTable, nil
		}
		return report.FormatYAML, nil
	}

	f, err := report.ParseFormat(name)
	if err != nil {
		valid := make([]string, len(report.Formats))
		for i, v := range report.Formats {
			valid[i] = string(v)
		}
		return "", clierrors.NewUnknownFormatError(name, valid)
	}
	return f, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func refStrings(refs []resource.Ref) []string {
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = ref.String()
	}
	return out
}

func joinFlag(values []string) string {
	return strings.Join(values, ",")
}
