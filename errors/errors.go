package errors

import "errors"

// Errors reported by the overrides command.
var (
	// ErrNoPrefixes indicates no prefix was given or configured.
	ErrNoPrefixes = errors.New("no prefixes")

	// ErrTargetFile indicates the target description could not be used.
	ErrTargetFile = errors.New("invalid target file")

	// ErrEnvFile indicates an env file could not be read.
	ErrEnvFile = errors.New("invalid env file")

	// ErrUnknownFormat indicates an unsupported output format.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrUnknownSetting indicates a settings key that does not exist.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrFlagRequires indicates a flag was given without a flag it depends on.
	ErrFlagRequires = errors.New("flag requires another flag")

	// ErrNotInGitRepo indicates local settings were requested outside a repository.
	ErrNotInGitRepo = errors.New("not in a git repository")
)
