// Package errors provides the error messages of the overrides command.
//
// Core types:
//   - CLIError: Wraps errors with message, suggestion, and details
//   - ErrorMessenger: Interface for customizing error messages
//
// Sentinel errors:
//   - ErrNoPrefixes: No prefix was given or configured
//   - ErrTargetFile: The target description is missing or malformed
//   - ErrEnvFile: An env file could not be read
//   - ErrUnknownFormat: The output format is not supported
//   - ErrUnknownSetting: The settings key does not exist
//   - ErrFlagRequires: A flag was given without a flag it depends on
//   - ErrNotInGitRepo: Local settings need a git repository
//
// Example usage:
//
//	if err := loadTarget(path); err != nil {
//	    return errors.WrapTargetFileError(err, path)
//	}
//
//	if errors.IsUsageError(err) {
//	    os.Exit(errors.ExitUsage)
//	}
package errors
