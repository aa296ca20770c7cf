package atexit

// BlockCapacity is the number of finalizer slots in one storage block.
// The first BlockCapacity registrations are served by the statically held
// terminal block and never allocate. Changing this constant changes the
// no-allocation floor of every registry.
const BlockCapacity = 32

// panicCapture receives the value recovered from a panicking finalizer.
type panicCapture func(v any)

// entryBlock is a fixed-capacity run of finalizers. The logical front of the
// block is the last entry appended: slots [0, size) were filled oldest first.
type entryBlock struct {
	funcs [BlockCapacity]finalizer
	size  uint8
}

func (b *entryBlock) full() bool {
	return b.size == BlockCapacity
}

// push appends f. Callers must check full() first.
func (b *entryBlock) push(f finalizer) {
	b.funcs[b.size] = f
	b.size++
}

// runAll invokes every stored finalizer exactly once, newest first.
func (b *entryBlock) runAll(capture panicCapture) {
	for i := b.size; i > 0; i-- {
		runOne(b.funcs[i-1], capture)
	}
}

// runOne shields the pass from a panicking callback so the remaining
// finalizers still run.
func runOne(f finalizer, capture panicCapture) {
	defer func() {
		if v := recover(); v != nil {
			capture(v)
		}
	}()

	f.run()
}
