package resource

import (
	"fmt"
	"log/slog"
	"strings"
)

// Naming builds resource names from prefixes.
type Naming struct {
	// DefaultPattern is a fmt pattern with one %s verb for the defaults resource.
	DefaultPattern string

	// OverridePattern is a fmt pattern with one %s verb for the overrides resource.
	OverridePattern string
}

// DefaultNaming is the naming used when a Locator has none set.
var DefaultNaming = Naming{
	DefaultPattern:  "default.arquillian-%s.properties",
	OverridePattern: "arquillian-%s.properties",
}

// Default returns the defaults resource name for prefix.
func (n Naming) Default(prefix string) string {
	return fmt.Sprintf(n.DefaultPattern, Slug(prefix))
}

// Override returns the overrides resource name for prefix.
func (n Naming) Override(prefix string) string {
	return fmt.Sprintf(n.OverridePattern, Slug(prefix))
}

// Slug replaces the dots of a prefix with dashes.
func Slug(prefix string) string {
	return strings.ReplaceAll(prefix, ".", "-")
}

// Locator resolves prefixes to an ordered list of resource refs.
type Locator struct {
	Searcher Searcher
	Naming   Naming
	Logger   *slog.Logger
}

// NewLocator creates a locator with DefaultNaming and the default logger.
func NewLocator(s Searcher) *Locator {
	return &Locator{
		Searcher: s,
		Naming:   DefaultNaming,
		Logger:   slog.Default(),
	}
}

// Locate returns the defaults resources of every prefix followed by the
// overrides resources of every prefix. Within one name, refs keep root order.
func (l *Locator) Locate(prefixes ...string) []Ref {
	naming := l.Naming
	if naming.DefaultPattern == "" || naming.OverridePattern == "" {
		naming = DefaultNaming
	}

	var refs []Ref
	for _, prefix := range prefixes {
		refs = append(refs, l.search(naming.Default(prefix))...)
	}
	for _, prefix := range prefixes {
		refs = append(refs, l.search(naming.Override(prefix))...)
	}
	return refs
}

func (l *Locator) search(name string) []Ref {
	if l.Searcher == nil {
		return nil
	}

	refs, err := l.Searcher.Search(name)
	if err != nil {
		l.logger().Warn("failed to search resources",
			slog.String("resource", name),
			slog.String("error", err.Error()))
		return nil
	}

	l.logger().Debug("located resources",
		slog.String("resource", name),
		slog.Int("count", len(refs)))
	return refs
}

func (l *Locator) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.Default()
	}
	return l.Logger
}
