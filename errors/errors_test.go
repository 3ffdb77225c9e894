package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("DYNAMODB_TABLE")

	expected := `missing configuration: environment variable "DYNAMODB_TABLE" is not set`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrConfiguration) {
		t.Error("ConfigurationError should match ErrConfiguration")
	}

	if !IsConfiguration(err) {
		t.Error("IsConfiguration should return true for ConfigurationError")
	}

	if IsInvalidArgument(err) {
		t.Error("IsInvalidArgument should return false for ConfigurationError")
	}
}

func TestConfigurationErrorWrapped(t *testing.T) {
	err := fmt.Errorf("creating table: %w", NewConfigurationError("DYNAMODB_TABLE"))

	if !IsConfiguration(err) {
		t.Error("IsConfiguration should unwrap errors")
	}

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatal("errors.As should find the ConfigurationError")
	}
	if cfgErr.EnvVar != "DYNAMODB_TABLE" {
		t.Errorf("Expected env var DYNAMODB_TABLE, got %q", cfgErr.EnvVar)
	}
}

func TestInvalidArgumentError(t *testing.T) {
	err := NewInvalidArgumentError("uri", "not an S3 URI: http://example.com")

	expected := `invalid argument "uri": not an S3 URI: http://example.com`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrInvalidArgument) {
		t.Error("InvalidArgumentError should match ErrInvalidArgument")
	}

	if !IsInvalidArgument(err) {
		t.Error("IsInvalidArgument should return true for InvalidArgumentError")
	}

	if IsConfiguration(err) {
		t.Error("IsConfiguration should return false for InvalidArgumentError")
	}
}
