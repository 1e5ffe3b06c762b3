// Package config resolves the project layout plancheck operates on and loads
// the optional .plancheck.yaml project file, applying defaults and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/modu-ai/plancheck/internal/defs"
)

// Sentinel errors for configuration operations.
var (
	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidYAML indicates invalid YAML syntax in the project file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrInvalidModule indicates a module number below 1.
	ErrInvalidModule = errors.New("config: module number must be positive")

	// ErrToolDir indicates the tool directory could not be determined.
	ErrToolDir = errors.New("config: cannot determine tool directory")
)

// FieldError reports one invalid setting in the project file. Key is the
// YAML path of the setting, such as traceability.references[0].
type FieldError struct {
	Key    string
	Reason string
	Got    string
}

// Error implements the error interface.
func (e FieldError) Error() string {
	if e.Got != "" {
		return fmt.Sprintf("%s: %s (got %q)", e.Key, e.Reason, e.Got)
	}
	return e.Key + ": " + e.Reason
}

// Unwrap ties every field error to ErrInvalidConfig.
func (e FieldError) Unwrap() error {
	return ErrInvalidConfig
}

// FieldErrors lists every invalid setting found in one pass over the project
// file, in the order the settings are declared.
type FieldErrors []FieldError

// Error implements the error interface.
func (e FieldErrors) Error() string {
	keys := make([]string, len(e))
	for i, fe := range e {
		keys[i] = fe.Error()
	}
	return fmt.Sprintf("%s: %d invalid setting(s): %s", defs.ProjectConfigYAML, len(e), strings.Join(keys, "; "))
}

// Unwrap exposes the individual field errors to errors.Is and errors.As.
func (e FieldErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, fe := range e {
		errs[i] = fe
	}
	return errs
}

// Keys returns the YAML path of every invalid setting.
func (e FieldErrors) Keys() []string {
	keys := make([]string, len(e))
	for i, fe := range e {
		keys[i] = fe.Key
	}
	return keys
}
