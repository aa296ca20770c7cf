package atexit

import (
	"github.com/lif0/pkg/utils/errx"

	"github.com/lif0/go-atexit/internal"
)

// globalErrors accumulates panics recovered from finalizer callbacks. The
// trigger goroutine writes it while tests and post-shutdown code read it,
// hence the synchronized box even though registration itself is
// single-threaded.
var globalErrors = internal.NewSyncBox(errx.MultiError{})

// GlobalError returns a copy of the errors collected during the finalizer
// pass. Empty when every callback returned normally.
func GlobalError() errx.MultiError {
	var out errx.MultiError
	globalErrors.Read(func(v errx.MultiError) {
		out = append(out, v...)
	})

	return out
}

// recordFinalizerPanic is the panicCapture wired into every pass.
func recordFinalizerPanic(v any) {
	globalErrors.Mutate(func(me *errx.MultiError) {
		me.Append(&FinalizerPanicError{Value: v})
	})
}
