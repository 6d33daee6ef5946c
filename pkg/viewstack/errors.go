package viewstack

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds a ViewStack can report.
// Use errors.Is against these; the concrete error is usually a *StackError.
var (
	// ErrInvalidArgument indicates a required parameter was nil or empty.
	// The stack is never mutated when this is returned.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStackUnderflow indicates a pop or peek on an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrMissingState indicates Restore found no value under the requested key.
	ErrMissingState = errors.New("missing state")

	// ErrStackBusy indicates a mutation was attempted while a transition is in flight.
	ErrStackBusy = errors.New("stack busy")

	// ErrUnknownFactory indicates a factory type with no FactoryRegistry entry.
	ErrUnknownFactory = errors.New("unknown factory")
)

// StackError carries the operation that failed, the failure kind (one of the
// sentinels above), a short message, and the underlying cause if any.
type StackError struct {
	Op   string // Operation that failed (e.g., "push", "restore")
	Kind error  // One of the sentinel errors
	Msg  string // Human readable detail (e.g., "container == nil")
	Err  error  // Underlying cause, may be nil
}

func (e *StackError) Error() string {
	msg := e.Msg
	if msg == "" && e.Kind != nil {
		msg = e.Kind.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("viewstack: %s: %s: %v", e.Op, msg, e.Err)
	}
	return fmt.Sprintf("viewstack: %s: %s", e.Op, msg)
}

// Unwrap exposes both the kind and the cause so errors.Is matches either.
func (e *StackError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func newError(op string, kind error, msg string) *StackError {
	return &StackError{Op: op, Kind: kind, Msg: msg}
}

func wrapError(op string, kind error, msg string, err error) *StackError {
	return &StackError{Op: op, Kind: kind, Msg: msg, Err: err}
}

// IsInvalidArgument checks if an error is an argument validation failure.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsUnderflow checks if an error indicates an empty stack.
func IsUnderflow(err error) bool {
	return errors.Is(err, ErrStackUnderflow)
}

// IsMissingState checks if an error indicates no persisted stack was found.
func IsMissingState(err error) bool {
	return errors.Is(err, ErrMissingState)
}

// IsBusy checks if an error indicates a transition was still in flight.
func IsBusy(err error) bool {
	return errors.Is(err, ErrStackBusy)
}
