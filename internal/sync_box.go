package internal

import "sync"

// SyncBox guards a single value with a mutex. Mutate writes through a
// pointer, Read observes under a shared lock.
type SyncBox[T any] struct {
	mu sync.RWMutex
	v  T
}

func NewSyncBox[T any](v T) *SyncBox[T] {
	return &SyncBox[T]{v: v}
}

func (b *SyncBox[T]) Mutate(f func(v *T)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	f(&b.v)
}

func (b *SyncBox[T]) Read(f func(v T)) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	f(b.v)
}
