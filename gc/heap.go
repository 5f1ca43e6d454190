// Package gc implements a tracing, mark-and-sweep garbage collector for
// a single kind of heap-allocated value. It does not rely on or
// interact with the Go runtime's own garbage collector for collection
// decisions: objects inserted into a Heap are only reclaimed when a
// Heap.Collect pass marks them unreached, exactly mirroring a
// host-language VM managing its own object lifetime on top of a
// memory-safe substrate.
package gc

import (
	"github.com/aledsdavies/sable/internal/contract"
)

// Heap owns every live cell of type T plus the heuristics driving when
// a collection is due. The zero Heap is not usable; construct one with
// New. A Heap value is a thin handle onto shared internals — copying it
// (by assignment or by closing over it) shares the same live set and
// heuristics. It must not be shared across goroutines: the heap is
// single-threaded cooperative, with no locking of its own.
type Heap[T any] struct {
	internal *heapInternal[T]
}

type heapInternal[T any] struct {
	heuristics *heuristics
	objects    map[Handle[T]]struct{}
	visitor    *Visitor[T]
}

// New creates an empty heap.
func New[T any]() Heap[T] {
	return Heap[T]{internal: &heapInternal[T]{
		heuristics: newHeuristics(),
		objects:    make(map[Handle[T]]struct{}),
		visitor:    newVisitor[T](),
	}}
}

// Insert boxes value, adds the resulting cell to the live set, and
// returns a Handle to it. The handle stays valid until a later Collect
// finalizes it or Teardown destroys it.
func (h Heap[T]) Insert(value T) Handle[T] {
	handle := Handle[T]{ptr: &cell[T]{value: value}}
	h.internal.objects[handle] = struct{}{}
	return handle
}

// Len returns the number of live cells, for tests and diagnostics.
func (h Heap[T]) Len() int {
	return len(h.internal.objects)
}

// Collect runs one mark-sweep cycle:
//  1. trace is invoked once with a freshly reset Visitor; the caller
//     marks every handle reachable from its declared roots.
//  2. every live handle the visitor did not mark is handed to finalize,
//     removed from the live set, and its cell destroyed.
//  3. the collection threshold is raised.
//
// finalize runs before the handle is removed from the live set, so it
// may still call Get on the handle it's passed.
func (h Heap[T]) Collect(trace func(*Visitor[T]), finalize func(Handle[T])) {
	v := h.internal.visitor
	trace(v)

	for handle := range h.internal.objects {
		if v.IsMarked(handle) {
			continue
		}
		finalize(handle)
		delete(h.internal.objects, handle)
		handle.destroy()
	}

	v.reset()
	h.internal.heuristics.adjust()
	h.internal.heuristics.clearShouldCollect()
}

// ShouldCollect reports whether allocated container storage has reached
// the current threshold since the last Collect. Collection is never
// triggered automatically; the host must call Collect itself.
func (h Heap[T]) ShouldCollect() bool {
	return h.internal.heuristics.ShouldCollect()
}

// Threshold returns the current collection threshold in bytes, for
// tests and diagnostics.
func (h Heap[T]) Threshold() int64 {
	return h.internal.heuristics.Threshold()
}

// Allocator returns the allocator view of this heap, used for container
// storage (e.g. value.Table's overflow arena) whose growth should count
// toward this heap's collection pressure.
func (h Heap[T]) Allocator() Allocator {
	return Allocator{heuristics: h.internal.heuristics}
}

// Teardown destroys every remaining live cell, freeing every object
// still in the tree. Go has no deterministic destructors, so a host
// that wants guaranteed-at-scope-exit release calls Teardown explicitly,
// typically via defer.
func (h Heap[T]) Teardown() {
	for handle := range h.internal.objects {
		delete(h.internal.objects, handle)
		handle.destroy()
	}
	contract.Invariant(len(h.internal.objects) == 0, "heap objects survived Teardown")
}
