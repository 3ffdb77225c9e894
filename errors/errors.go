// Package errors defines the error types returned by the lambda-utils
// facades. Anything not covered here is an AWS SDK error passed through
// to the caller untouched.
package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrConfiguration is returned when a required value is missing from
	// both the arguments and the environment
	ErrConfiguration = errors.New("missing configuration")

	// ErrInvalidArgument is returned when an argument fails validation
	ErrInvalidArgument = errors.New("invalid argument")
)

// ConfigurationError reports a required environment variable that was
// not set and not supplied explicitly either.
type ConfigurationError struct {
	EnvVar string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing configuration: environment variable %q is not set", e.EnvVar)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// InvalidArgumentError reports an argument that failed validation.
type InvalidArgumentError struct {
	Argument string
	Message  string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Argument, e.Message)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(envVar string) error {
	return &ConfigurationError{EnvVar: envVar}
}

// NewInvalidArgumentError creates a new InvalidArgumentError
func NewInvalidArgumentError(argument, message string) error {
	return &InvalidArgumentError{Argument: argument, Message: message}
}

// IsConfiguration checks if an error is a configuration error
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
