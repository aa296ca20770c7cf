package atexit

// FinalizerFunc is a deferred finalizer callback. The userdata argument is
// the opaque value supplied at registration, passed back verbatim; the
// registry never inspects it.
type FinalizerFunc func(userdata any)

// finalizer is one stored registration. Immutable once pushed.
type finalizer struct {
	fn       FinalizerFunc
	userdata any
}

func (f finalizer) run() {
	f.fn(f.userdata)
}
