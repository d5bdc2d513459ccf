package modules

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks; the typed errors below carry the ids.
var (
	// ErrNotInstalled indicates the operation requires an installed module.
	ErrNotInstalled = errors.New("module not installed")

	// ErrConfigKeyInvalid indicates the key is not in the module's config schema.
	ErrConfigKeyInvalid = errors.New("invalid config key")

	// ErrValueCoercion indicates the value does not parse as the schema type.
	ErrValueCoercion = errors.New("value coercion failed")
)

// NotInstalledError names the module an operation required to be installed.
type NotInstalledError struct {
	Module string
}

func (e *NotInstalledError) Error() string {
	return fmt.Sprintf("module %q is not installed", e.Module)
}

func (e *NotInstalledError) Unwrap() error { return ErrNotInstalled }

// ConfigKeyError names a key missing from the module's config schema.
type ConfigKeyError struct {
	Module string
	Key    string
}

func (e *ConfigKeyError) Error() string {
	return fmt.Sprintf("module %q has no config key %q", e.Module, e.Key)
}

func (e *ConfigKeyError) Unwrap() error { return ErrConfigKeyInvalid }

// CoercionError names a value that failed to parse as its schema type.
type CoercionError struct {
	Module    string
	Key       string
	Value     string
	FieldType string
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("module %q: value %q for key %q is not a valid %s",
		e.Module, e.Value, e.Key, e.FieldType)
}

func (e *CoercionError) Unwrap() error { return ErrValueCoercion }
