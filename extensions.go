package atexit

// RegisterFunc registers a finalizer that needs no userdata.
func (r *Registry) RegisterFunc(fn func()) error {
	if fn == nil {
		return ErrNilFinalizer
	}

	return r.Register(func(any) { fn() }, nil)
}

// RegisterFunc adds a userdata-free finalizer to the global registry.
func RegisterFunc(fn func()) error {
	return DefaultRegistry.RegisterFunc(fn)
}
