package try

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by try.
var (
	// ErrNilFunc is the failure recorded when a nil function is passed.
	ErrNilFunc = errors.New("try: function must not be nil")

	// ErrFailed is the failure recorded by Err(nil).
	ErrFailed = errors.New("try: operation failed")
)

// PanicError records a panic recovered while running a function.
type PanicError struct {
	// Value is the value passed to panic.
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("try: recovered panic: %v", e.Value)
}

// Unwrap returns the panic value when it is itself an error (for example a
// runtime.Error), so errors.Is and errors.As can see through the panic.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
