package module

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigErrorCode categorizes configuration errors.
type ConfigErrorCode string

const (
	// ErrCodeDuplicateHandle indicates two descriptors registered the same handle.
	ErrCodeDuplicateHandle ConfigErrorCode = "DUPLICATE_HANDLE"

	// ErrCodeInvalidDescriptor indicates a descriptor without handle or factory.
	ErrCodeInvalidDescriptor ConfigErrorCode = "INVALID_DESCRIPTOR"

	// ErrCodeUnknownOverride indicates an override for a handle never registered.
	ErrCodeUnknownOverride ConfigErrorCode = "UNKNOWN_OVERRIDE"

	// ErrCodeUnknownDependency indicates a dependency on a handle never registered.
	ErrCodeUnknownDependency ConfigErrorCode = "UNKNOWN_DEPENDENCY"

	// ErrCodeDependencyCycle indicates modules depending on each other.
	ErrCodeDependencyCycle ConfigErrorCode = "DEPENDENCY_CYCLE"

	// ErrCodeUndeclaredDependency indicates a module asked for a dependency it did not declare.
	ErrCodeUndeclaredDependency ConfigErrorCode = "UNDECLARED_DEPENDENCY"

	// ErrCodeInitFailed indicates a module factory returned an error.
	ErrCodeInitFailed ConfigErrorCode = "INIT_FAILED"
)

// ConfigError is a fatal module configuration problem. Analysis never starts
// when one is returned.
type ConfigError struct {
	Code    ConfigErrorCode
	Message string

	// Handle is the module the error is about.
	Handle string

	// Dependency is the offending dependency, when there is one.
	Dependency string

	// Path is the cycle for ErrCodeDependencyCycle: ["a", "b", "a"].
	Path []string

	Err error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Handle != "" {
		msg += fmt.Sprintf(" (module=%s)", e.Handle)
	}
	if len(e.Path) > 0 {
		msg += fmt.Sprintf(" [%s]", strings.Join(e.Path, " → "))
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError returns true if err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsCycleError returns true if err is a dependency cycle error.
func IsCycleError(err error) bool {
	return hasCode(err, ErrCodeDependencyCycle)
}

// IsUnknownDependencyError returns true if err is an unknown dependency error.
func IsUnknownDependencyError(err error) bool {
	return hasCode(err, ErrCodeUnknownDependency)
}

// IsDuplicateError returns true if err is a duplicate handle error.
func IsDuplicateError(err error) bool {
	return hasCode(err, ErrCodeDuplicateHandle)
}

func hasCode(err error, code ConfigErrorCode) bool {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}
