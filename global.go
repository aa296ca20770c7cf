package atexit

// DefaultRegistry is the process-wide registry the package-level functions
// delegate to.
var DefaultRegistry = NewRegistry()

// SetGlobal sets a custom Registry as the global registry.
// This allows replacing the default registry with a user-provided one.
func SetGlobal(r *Registry) {
	DefaultRegistry = r
}

// Register adds fn with its userdata to the global registry.
func Register(fn FinalizerFunc, userdata any) error {
	return DefaultRegistry.Register(fn, userdata)
}

// RegisterFinalizer registers fn on the global registry using the 0/-1
// at-exit return convention. See Registry.RegisterFinalizer.
func RegisterFinalizer(fn FinalizerFunc, userdata any, owner any) int {
	return DefaultRegistry.RegisterFinalizer(fn, userdata, owner)
}

// RunHook fires the global registry's shutdown hook. Call it exactly once,
// from the process teardown path, unless SetShutdownTrigger already owns that
// responsibility.
func RunHook() {
	DefaultRegistry.RunHook()
}

// WaitShutdown blocks until the global registry's finalizer pass completes.
func WaitShutdown() {
	DefaultRegistry.Wait()
}
