package errors

import (
	"fmt"
	"strings"
)

// CLIError wraps an error with user-friendly context and suggestions.
type CLIError struct {
	// Err is the underlying error
	Err error

	// Message is a user-friendly description of what went wrong
	Message string

	// Suggestion is an actionable hint for the user
	Suggestion string

	// Details provides additional context (optional)
	Details string
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}
	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}
	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// ErrorMessenger provides customizable error messages.
type ErrorMessenger interface {
	// NoPrefixesMessage returns the message and suggestion when no prefix is known.
	NoPrefixesMessage() (message, suggestion string)

	// TargetFileMessage returns the message and suggestion for an unusable target file.
	TargetFileMessage(path string) (message, suggestion string)

	// EnvFileMessage returns the message and suggestion for an unreadable env file.
	EnvFileMessage(paths []string) (message, suggestion string)

	// UnknownFormatMessage returns the message and suggestion for a bad format.
	UnknownFormatMessage(format string, valid []string) (message, suggestion string)

	// UnknownSettingMessage returns the message and suggestion for a bad settings key.
	UnknownSettingMessage(key string, valid []string) (message, suggestion string)

	// FlagRequiresMessage returns the message and suggestion when flag is used
	// without required.
	FlagRequiresMessage(flag, required string) (message, suggestion string)

	// NotInGitRepoMessage returns the message and suggestion for local settings
	// outside a repository.
	NotInGitRepoMessage() (message, suggestion string)
}

// DefaultMessenger provides default error messages.
type DefaultMessenger struct{}

func (m DefaultMessenger) NoPrefixesMessage() (string, string) {
	return "No prefixes given.",
		"Pass prefixes as arguments, e.g. 'overrides resolve db cache',\nor set them with 'overrides config set prefixes db,cache'."
}

func (m DefaultMessenger) TargetFileMessage(path string) (string, string) {
	return fmt.Sprintf("Cannot use target file %s", path),
		"The target file must be a flat TOML table of string, integer, float or boolean values."
}

func (m DefaultMessenger) EnvFileMessage(paths []string) (string, string) {
	return fmt.Sprintf("Cannot read env file %s", strings.Join(paths, ", ")),
		"Check that the file exists and holds NAME=value lines."
}

func (m DefaultMessenger) UnknownFormatMessage(format string, valid []string) (string, string) {
	return fmt.Sprintf("Unknown output format %q", format),
		fmt.Sprintf("Valid formats: %s", strings.Join(valid, ", "))
}

func (m DefaultMessenger) UnknownSettingMessage(key string, valid []string) (string, string) {
	return fmt.Sprintf("Unknown setting %q", key),
		fmt.Sprintf("Valid keys: %s", strings.Join(valid, ", "))
}

func (m DefaultMessenger) FlagRequiresMessage(flag, required string) (string, string) {
	return fmt.Sprintf("--%s requires --%s", flag, required),
		fmt.Sprintf("Pass --%s as well, or drop --%s.", required, flag)
}

func (m DefaultMessenger) NotInGitRepoMessage() (string, string) {
	return "Local settings require a git repository.",
		"Run this command from a git repository or save the setting globally."
}

// WrapConfig configures error wrapping behavior.
type WrapConfig struct {
	Messenger ErrorMessenger
}

// Option configures WrapConfig.
type Option func(*WrapConfig)

// WithMessenger sets a custom error messenger.
func WithMessenger(m ErrorMessenger) Option {
	return func(c *WrapConfig) {
		c.Messenger = m
	}
}

func getMessenger(opts []Option) ErrorMessenger {
	cfg := &WrapConfig{
		Messenger: DefaultMessenger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.Messenger
}

// NewNoPrefixesError creates an error for a resolution without prefixes.
func NewNoPrefixesError(opts ...Option) error {
	msg, suggestion := getMessenger(opts).NoPrefixesMessage()
	return &CLIError{
		Err:        ErrNoPrefixes,
		Message:    msg,
		Suggestion: suggestion,
	}
}

// WrapTargetFileError wraps a failure to load or write the target file.
func WrapTargetFileError(err error, path string, opts ...Option) error {
	if err == nil {
		return nil
	}
	msg, suggestion := getMessenger(opts).TargetFileMessage(path)
	return &CLIError{
		Err:        fmt.Errorf("%w: %w", ErrTargetFile, err),
		Message:    msg,
		Details:    err.Error(),
		Suggestion: suggestion,
	}
}

// WrapEnvFileError wraps a failure to read env files.
func WrapEnvFileError(err error, paths []string, opts ...Option) error {
	if err == nil {
		return nil
	}
	msg, suggestion := getMessenger(opts).EnvFileMessage(paths)
	return &CLIError{
		Err:        fmt.Errorf("%w: %w", ErrEnvFile, err),
		Message:    msg,
		Details:    err.Error(),
		Suggestion: suggestion,
	}
}

// NewUnknownFormatError creates an error for an unsupported output format.
func NewUnknownFormatError(format string, valid []string, opts ...Option) error {
	msg, suggestion := getMessenger(opts).UnknownFormatMessage(format, valid)
	return &CLIError{
		Err:        ErrUnknownFormat,
		Message:    msg,
		Suggestion: suggestion,
	}
}

// NewUnknownSettingError creates an error for an unknown settings key.
func NewUnknownSettingError(key string, valid []string, opts ...Option) error {
	msg, suggestion := getMessenger(opts).UnknownSettingMessage(key, valid)
	return &CLIError{
		Err:        ErrUnknownSetting,
		Message:    msg,
		Suggestion: suggestion,
	}
}

// NewFlagRequiresError creates an error for a flag used without a flag it
// depends on.
func NewFlagRequiresError(flag, required string, opts ...Option) error {
	msg, suggestion := getMessenger(opts).FlagRequiresMessage(flag, required)
	return &CLIError{
		Err:        ErrFlagRequires,
		Message:    msg,
		Suggestion: suggestion,
	}
}

// NewNotInGitRepoError creates an error for local settings outside a repository.
func NewNotInGitRepoError(opts ...Option) error {
	msg, suggestion := getMessenger(opts).NotInGitRepoMessage()
	return &CLIError{
		Err:        ErrNotInGitRepo,
		Message:    msg,
		Suggestion: suggestion,
	}
}
