package atexit

// GuardSize is the storage size of a Guard token in bytes. The width is part
// of the binary contract: exactly 8 bytes per guarded variable, of which only
// the byte at the lowest address carries meaning.
const GuardSize = 8

// Guard is a one-time initialization token for a lazily constructed value.
// A zero Guard means "not yet initialized". Only the first byte is ever read
// or written; the remaining seven are reserved padding and are left untouched.
//
// Guard performs no locking and no atomic exchange. It assumes a single
// thread of control; concurrent Acquire without external synchronization is
// undefined.
type Guard [GuardSize]byte

// Acquire reports whether the caller should run the initializer: true iff the
// token's first byte is still zero.
func (g *Guard) Acquire() bool {
	return g[0] == 0
}

// Release marks the token initialized. Call it only after the initializer
// completed successfully.
func (g *Guard) Release() {
	g[0] = 1
}

// Do runs init at most once per token: it is a no-op when the guard was
// already released. A panic in init propagates and leaves the guard
// unreleased, so a later Do will retry.
func (g *Guard) Do(init func()) {
	if !g.Acquire() {
		return
	}

	init()
	g.Release()
}
