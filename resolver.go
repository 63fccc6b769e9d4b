package overrides

import (
	"context"
	"log/slog"

	nanoid "github.com/matoous/go-nanoid/v2"

	"github.com/randalmurphal/overrides/env"
	"github.com/randalmurphal/overrides/layer"
	"github.com/randalmurphal/overrides/resource"
	"github.com/randalmurphal/overrides/target"
)

// Resolver applies file defaults and qualified overrides to targets.
type Resolver struct {
	Locator *resource.Locator
	Reader  *layer.Reader

	// Logger receives a record for every decision. Defaults to slog.Default().
	Logger *slog.Logger

	// Observer, if set, receives every decision.
	Observer Observer

	// PassID generates the id attached to the decisions and log records of
	// one pass. Defaults to nanoid.New.
	PassID func() (string, error)
}

// New creates a resolver that finds resources with s.
func New(s resource.Searcher) *Resolver {
	logger := slog.Default()
	return &Resolver{
		Locator: &resource.Locator{Searcher: s, Naming: resource.DefaultNaming, Logger: logger},
		Reader:  &layer.Reader{Encoding: layer.UTF8, Logger: logger},
		Logger:  logger,
	}
}

// Apply configures t for prefixes. It loads and merges the property
// resources of every prefix and writes the result to t, then looks up
// prefix + "." + key in lookup for every key t exposes and writes each value
// found. Failures are logged and leave the affected key unchanged.
func (r *Resolver) Apply(t target.Target, lookup env.Lookup, prefixes ...string) {
	r.ApplyRefs(t, lookup, r.locate(prefixes), prefixes...)
}

// ApplyRefs is Apply with the resources already located.
func (r *Resolver) ApplyRefs(t target.Target, lookup env.Lookup, refs []resource.Ref, prefixes ...string) {
	ctx := context.Background()
	logger := r.logger()
	pass := r.passID(logger)
	if pass != "" {
		logger = logger.With(slog.String("pass", pass))
	}
	if t == nil {
		logger.Warn("no configuration target to apply overrides to")
		return
	}
	if lookup == nil {
		lookup = env.None
	}

	defaults := layer.Merge(r.reader().Read(refs)...)
	logger.Debug("merged property layers",
		slog.Int("resources", len(refs)),
		slog.Int("keys", defaults.Len()))

	for _, key := range defaults.Keys() {
		value, _ := defaults.Get(key)
		d := Decision{Pass: pass, Phase: PhaseDefaults, Key: key, QualifiedName: key}
		r.observe(setProperty(ctx, logger, slog.LevelDebug, t, d, value, true))
	}

	for _, key := range t.Keys() {
		for _, prefix := range prefixes {
			name := prefix + "." + key
			value, ok := lookup.Lookup(name)
			d := Decision{Pass: pass, Phase: PhaseOverride, Key: key, QualifiedName: name}
			r.observe(setProperty(ctx, logger, slog.LevelInfo, t, d, value, ok))
		}
	}
}

// Defaults loads and merges the property resources of prefixes without
// applying them.
func (r *Resolver) Defaults(prefixes ...string) *layer.Merged {
	return layer.Merge(r.reader().Read(r.locate(prefixes))...)
}

func (r *Resolver) locate(prefixes []string) []resource.Ref {
	if r.Locator == nil {
		return nil
	}
	return r.Locator.Locate(prefixes...)
}

func (r *Resolver) reader() *layer.Reader {
	if r.Reader == nil {
		return &layer.Reader{Encoding: layer.UTF8, Logger: r.logger()}
	}
	return r.Reader
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

func (r *Resolver) passID(logger *slog.Logger) string {
	gen := r.PassID
	if gen == nil {
		gen = func() (string, error) { return nanoid.New() }
	}
	id, err := gen()
	if err != nil {
		logger.Debug("failed to generate pass id", slog.String("error", err.Error()))
		return ""
	}
	return id
}

func (r *Resolver) observe(d Decision) {
	if r.Observer != nil {
		r.Observer.Observe(d)
	}
}

// Apply configures t from the property resources found in roots and the
// overrides in lookup using a resolver with default settings.
func Apply(t target.Target, lookup env.Lookup, roots resource.Searcher, prefixes ...string) {
	New(roots).Apply(t, lookup, prefixes...)
}
