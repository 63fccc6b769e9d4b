package errors

import "errors"

// Process exit codes of the overrides command.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// IsUsageError reports whether err was caused by how the command was invoked.
func IsUsageError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrNoPrefixes) ||
		errors.Is(err, ErrUnknownFormat) ||
		errors.Is(err, ErrUnknownSetting) ||
		errors.Is(err, ErrFlagRequires)
}

// IsFileError reports whether err came from an input file.
func IsFileError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrTargetFile) || errors.Is(err, ErrEnvFile)
}

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsUsageError(err):
		return ExitUsage
	default:
		return ExitFailure
	}
}
