package gc_test

import (
	"testing"

	"github.com/aledsdavies/sable/gc"
	"github.com/stretchr/testify/assert"
)

func TestShouldCollectOnceAllocatorCrossesThreshold(t *testing.T) {
	heap := gc.New[stringValue]()
	alloc := heap.Allocator()

	assert.False(t, heap.ShouldCollect())

	buf := alloc.Alloc(200 * 1024)
	assert.True(t, heap.ShouldCollect())

	alloc.Free(buf)
	assert.True(t, heap.ShouldCollect(), "should_collect is only cleared by Collect, not by later frees")
}

func TestCollectClearsShouldCollectAndRaisesThreshold(t *testing.T) {
	heap := gc.New[stringValue]()
	alloc := heap.Allocator()
	buf := alloc.Alloc(200 * 1024)
	assert.True(t, heap.ShouldCollect())

	heap.Collect(func(*gc.Visitor[stringValue]) {}, func(gc.Handle[stringValue]) {})
	assert.False(t, heap.ShouldCollect())

	// Re-allocating the same amount after freeing the first buffer does
	// not re-trigger collection: the cycle just run raised the threshold
	// past it.
	alloc.Free(buf)
	alloc.Alloc(200 * 1024)
	assert.False(t, heap.ShouldCollect())
}

func TestThresholdIsMonotonicNonDecreasing(t *testing.T) {
	heap := gc.New[stringValue]()
	alloc := heap.Allocator()

	prev := heap.Threshold()
	for i := 0; i < 5; i++ {
		alloc.Alloc(64 * 1024)
		heap.Collect(func(*gc.Visitor[stringValue]) {}, func(gc.Handle[stringValue]) {})
		cur := heap.Threshold()
		assert.GreaterOrEqual(t, cur, prev, "threshold must never decrease across cycles")
		prev = cur
	}
}
