// Package config resolves the settings of the overrides command.
//
// Settings are layered with clear precedence:
//  1. Command-line flags (highest priority)
//  2. Environment variables (OVERRIDES_FORMAT, OVERRIDES_ROOTS, ...)
//  3. Local settings (.overrides.yaml in the git root)
//  4. Global settings (~/.config/overrides/config.yaml)
//  5. Built-in defaults (lowest priority)
//
// # Keys
//
//	format      table, yaml or json (empty: table on a terminal, yaml otherwise)
//	roots       comma-separated resource directories, searched in order
//	prefixes    comma-separated prefixes used when none are given as arguments
//	env_file    comma-separated .env files consulted after the process environment
//	hide_unset  omit unset decisions from table output
//
// List values may be written as YAML sequences in the settings files:
//
//	roots:
//	  - conf
//	  - /etc/myapp
//	prefixes: [db, cache]
//
// # Usage
//
//	r := config.NewResolver(config.DefaultOptions())
//	s := r.Resolve()
//	fmt.Println(s.List(config.KeyRoots))     // [conf /etc/myapp]
//	fmt.Println(s.Source(config.KeyRoots))   // "local"
//
// SaveConfig writes single keys back to the global or local file.
package config
