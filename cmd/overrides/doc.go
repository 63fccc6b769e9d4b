// Package main hosts the overrides command.
//
// The command resolves a target, described by a flat TOML file, against
// property resources found in one or more root directories and qualified
// overrides from --set flags, the process environment and .env files. It
// renders every decision of the pass together with the resulting values.
//
// Settings such as the default roots, prefixes and output format are read
// from ~/.config/overrides/config.yaml, .overrides.yaml in the git root and
// OVERRIDES_* environment variables, and can be saved with "config set".
package main
