package engine

import (
	"errors"
	"fmt"

	"github.com/NamelessFaceless/xivanalysis/internal/event"
)

var (
	// ErrHooksSealed is returned by AddHook once module init has finished.
	ErrHooksSealed = errors.New("hooks are sealed after module init")

	// ErrAlreadyRun is returned when Run is called on a used engine.
	ErrAlreadyRun = errors.New("engine has already run")
)

// HandlerError records a failure inside one module during normalisation,
// dispatch or report contribution. It never stops the analysis.
type HandlerError struct {
	// Handle is the module whose code failed.
	Handle string

	// Seq and Type identify the event being dispatched. Both are zero for
	// failures outside dispatch.
	Seq  int64
	Type event.Type

	// Phase is "normalise", "dispatch" or "contribute".
	Phase string

	Err error
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	if e.Seq != 0 {
		return fmt.Sprintf("%s: module %s failed on event %d (%s): %v", e.Phase, e.Handle, e.Seq, e.Type, e.Err)
	}
	return fmt.Sprintf("%s: module %s failed: %v", e.Phase, e.Handle, e.Err)
}

// Unwrap returns the underlying error.
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// IsHandlerError returns true if err is (or wraps) a HandlerError.
func IsHandlerError(err error) bool {
	var he *HandlerError
	return errors.As(err, &he)
}

// PanicError wraps a value recovered from a panicking module.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

const (
	phaseNormalise  = "normalise"
	phaseDispatch   = "dispatch"
	phaseContribute = "contribute"
)

// guard runs fn and turns a panic into a PanicError.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	return fn()
}
