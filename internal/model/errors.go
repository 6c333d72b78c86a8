// Package model defines the shared types for the configdemo CLI.
//
// The demo's surface is small, so the package carries only the exit-code
// taxonomy and the error type that transports a code from wherever a
// failure happens up to the Execute handler in internal/cli.
package model

import "fmt"

// ExitCode defines the configdemo process exit codes.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitConfigNotFound indicates the configuration file named with
	// --config does not exist.
	ExitConfigNotFound ExitCode = 2

	// ExitConfigInvalid indicates the configuration could not be parsed
	// or could not be unmarshaled into the settings struct.
	ExitConfigInvalid ExitCode = 3
)

// CLIError is a custom error type that carries an exit code.
// Commands return it from RunE; the Execute handler translates it into
// the process exit status.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
