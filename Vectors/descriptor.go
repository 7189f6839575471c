package Vectors

import "sync/atomic"

// writeDescriptor is a one-shot announced CAS: loc is the element slot,
// oldVal the pointer assumed present, newVal the pointer to install.
// completed is set once the CAS has run (successfully or not) so helpers
// never redo work; see completeWrite.
type writeDescriptor[T any] struct {
	loc       *atomic.Pointer[T]
	oldVal    *T
	newVal    *T
	completed atomic.Bool
}

// completeWrite performs wd's announced CAS if it hasn't run yet. A failed
// CAS means another helper already won, or an unsynchronized Write
// intervened; either way the announced transition is no longer pending,
// so completed is set regardless of the CAS outcome.
func completeWrite[T any](wd *writeDescriptor[T]) {
	if wd == nil || wd.completed.Load() {
		return
	}
	wd.loc.CompareAndSwap(wd.oldVal, wd.newVal)
	wd.completed.Store(true)
}

// vectorDescriptor is the atomically-published state object: size is the
// announced logical length, counter strictly increases with each successful
// publication, and pendingWrite (if non-nil) must be helped before size is
// considered settled.
type vectorDescriptor[T any] struct {
	size         uint64
	counter      uint64
	pendingWrite *writeDescriptor[T]
}
