package config

// Source indicates where a setting's value came from.
type Source string

// Setting sources, lowest priority first.
const (
	// SourceDefault is a built-in default.
	SourceDefault Source = "default"

	// SourceGlobal is ~/.config/overrides/config.yaml.
	SourceGlobal Source = "global"

	// SourceLocal is .overrides.yaml in the git root.
	SourceLocal Source = "local"

	// SourceEnv is an OVERRIDES_* environment variable.
	SourceEnv Source = "env"

	// SourceFlag is a command-line flag.
	SourceFlag Source = "flag"
)
