// Package overrides configures objects from layered property files and
// qualified process-level overrides.
//
// Resolution runs in two passes over a target:
//
//  1. Defaults: property resources are located for every prefix, read into
//     layers and merged, later layers winning. Every merged key is written to
//     the target.
//  2. Overrides: for every key the target exposes and every prefix in order,
//     the qualified name prefix + "." + key is looked up in the environment
//     and, when present, written to the target.
//
// Overrides therefore always beat file defaults, and an override can only
// reach keys the target already declares.
//
// The packages are organized by component:
//
//   - resource: locating property resources across ordered roots
//   - layer: reading resources into layers and merging them
//   - target: the capability view of a configuration object
//   - env: the sources qualified overrides are looked up in
//   - report: rendering decisions and resolved values
//   - notify: sending pass summaries to logs and webhooks
//   - config: settings of the overrides command
//   - errors: command-line error messages
//   - testutil: test fixtures
//
// # Quick Start
//
//	type DBConfig struct {
//	    URL     string
//	    Timeout int
//	    Pooled  bool
//	}
//
//	cfg := &DBConfig{}
//	t, _ := target.NewStruct(cfg)
//
//	roots := resource.Roots{resource.DirRoot("conf")}
//	overrides.Apply(t, env.OS(), roots, "db")
//
// With conf/default.arquillian-db.properties holding "timeout=30" and
// DB_TIMEOUT=45 in the environment, cfg.Timeout ends up 45.
//
// # Writing values
//
// Raw values are strings. Each write tries the string first, then the value
// parsed as a base-10 int, then the value as a bool ("true" in any case is
// true, anything else false). The first representation the target accepts
// wins. When none is accepted the key keeps its previous value and a warning
// is logged. Nothing in a resolution pass returns an error.
package overrides
