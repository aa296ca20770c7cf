package atexit

import (
	"errors"
	"fmt"
)

// ErrRegistryExhausted is returned when the current storage block is full and
// a new one could not be allocated. Earlier registrations stay valid; the
// caller may retry or ignore. Use errors.Is(err, ErrRegistryExhausted).
var ErrRegistryExhausted = errors.New("no storage available for finalizer registration")

// ErrNilFinalizer is returned when a nil callback is passed to registration.
// Use errors.Is(err, ErrNilFinalizer).
var ErrNilFinalizer = errors.New("finalizer callback must not be nil")

// FinalizerPanicError records a panic recovered from a finalizer callback
// during the shutdown pass. The pass continues with the remaining entries;
// the recovered value is kept for inspection via GlobalError().
type FinalizerPanicError struct {
	// Value is the value the callback panicked with.
	Value any
}

func (e *FinalizerPanicError) Error() string {
	return fmt.Sprintf("finalizer panicked during shutdown pass: %v", e.Value)
}
