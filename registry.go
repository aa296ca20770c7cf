package atexit

// Registry owns a block chain of deferred finalizers and the process-wide
// shutdown hook slot that eventually runs them.
//
// A Registry is single-threaded by contract: registration happens on one
// logical thread of control, and the terminal pass is the last thing the
// process does. Concurrent registration without external synchronization is
// undefined, as is registering from inside a running finalizer.
//
// Use NewRegistry to create an instance.
type Registry struct {
	chain blockChain

	// hook is the single function-pointer slot the external teardown
	// mechanism invokes, exactly once. It starts as a no-op so programs
	// that register nothing pay nothing at shutdown.
	hook func()

	status Status
	done   chan struct{}
}

// NewRegistry creates and returns a new initialized Registry.
//
// If you want to set a new Registry as Global, use atexit.SetGlobal()
// (e.g. for testing purposes).
func NewRegistry() *Registry {
	return &Registry{
		hook: noopHook,
		done: make(chan struct{}),
	}
}

func noopHook() {}

// arm points the hook at the finalizer pass. It runs on every registration
// attempt: the redundant assignment is cheaper than carrying a separate
// "already armed" flag.
func (r *Registry) arm() {
	r.hook = r.finalize
	if r.status == StatusInert {
		r.status = StatusArmed
	}
}

// Register stores fn with its opaque userdata for execution at shutdown.
// Entries run in reverse registration order. Returns ErrNilFinalizer for a
// nil callback and ErrRegistryExhausted when the storage block is full and a
// new one cannot be allocated; a failed registration never disturbs earlier
// ones.
func (r *Registry) Register(fn FinalizerFunc, userdata any) error {
	if fn == nil {
		return ErrNilFinalizer
	}

	r.arm()

	if !r.chain.push(finalizer{fn: fn, userdata: userdata}) {
		return ErrRegistryExhausted
	}
	return nil
}

// RegisterFinalizer is the drop-in registration surface mirroring the
// conventional at-exit return contract: 0 on success, non-zero on failure.
// The owner argument names the module the registration belongs to; it is
// accepted and ignored, because a single statically linked image has nothing
// to disambiguate.
func (r *Registry) RegisterFinalizer(fn FinalizerFunc, userdata any, owner any) int {
	_ = owner

	if err := r.Register(fn, userdata); err != nil {
		return -1
	}
	return 0
}

// RunHook invokes the shutdown hook slot. The external teardown mechanism
// (SetShutdownTrigger, or the application's own exit path) calls it exactly
// once; with no registrations the slot still holds the no-op and nothing runs.
func (r *Registry) RunHook() {
	if r.hook == nil {
		// zero-value Registry, never armed
		return
	}
	r.hook()
}

// Status reports the registry lifecycle phase.
func (r *Registry) Status() Status {
	return r.status
}

// Wait blocks until the finalizer pass has completed. Only valid on a
// Registry created with NewRegistry.
func (r *Registry) Wait() {
	<-r.done
}

// finalize is the terminal pass: every registered finalizer exactly once,
// last registered first. Panicking callbacks are recorded in GlobalError()
// and do not stop the pass.
func (r *Registry) finalize() {
	r.chain.runAll(recordFinalizerPanic)

	r.status = StatusFired
	r.hook = noopHook

	if r.done != nil {
		close(r.done)
	}
}
