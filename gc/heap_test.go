package gc_test

import (
	"testing"

	"github.com/aledsdavies/sable/gc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stringValue is a minimal Trace[stringValue] implementation standing
// in for heap-allocated strings: none of them reference other handles,
// so tracing them is a no-op and only the visitor's explicit Mark calls
// matter.
type stringValue string

func (stringValue) Visit(*gc.Visitor[stringValue]) {}

func TestCollectFinalizesOnlyUnmarkedHandles(t *testing.T) {
	heap := gc.New[stringValue]()

	a := heap.Insert("A")
	b := heap.Insert("B")
	_ = b
	c := heap.Insert("C")
	require.Equal(t, 3, heap.Len())

	var finalized []stringValue
	heap.Collect(
		func(v *gc.Visitor[stringValue]) {
			v.Mark(a)
			v.Mark(c)
		},
		func(h gc.Handle[stringValue]) {
			finalized = append(finalized, *h.Get())
		},
	)

	assert.Equal(t, []stringValue{"B"}, finalized)
	assert.Equal(t, 2, heap.Len())
	assert.Equal(t, stringValue("A"), *a.Get())
	assert.Equal(t, stringValue("C"), *c.Get())
}

func TestCollectDestroyedHandleGetPanics(t *testing.T) {
	heap := gc.New[stringValue]()
	b := heap.Insert("B")

	heap.Collect(func(*gc.Visitor[stringValue]) {}, func(gc.Handle[stringValue]) {})

	assert.Panics(t, func() {
		b.Get()
	})
}

func TestCollectRunsFinalizeExactlyOnce(t *testing.T) {
	heap := gc.New[stringValue]()
	b := heap.Insert("B")

	calls := 0
	heap.Collect(func(*gc.Visitor[stringValue]) {}, func(h gc.Handle[stringValue]) {
		assert.Equal(t, b, h)
		calls++
	})

	assert.Equal(t, 1, calls)
}

// cyclicValue lets a handle point back into itself or into a sibling,
// exercising cycle safety: the mark phase visits strongly rather than
// recursing forever.
type cyclicValue struct {
	refs []gc.Handle[cyclicValue]
}

func (c cyclicValue) Visit(v *gc.Visitor[cyclicValue]) {
	for _, h := range c.refs {
		if v.Mark(h) {
			h.Get().Visit(v)
		}
	}
}

func TestCollectHandlesReferenceCycles(t *testing.T) {
	heap := gc.New[cyclicValue]()

	var a, b gc.Handle[cyclicValue]
	a = heap.Insert(cyclicValue{})
	b = heap.Insert(cyclicValue{refs: []gc.Handle[cyclicValue]{a}})
	a.Get().refs = []gc.Handle[cyclicValue]{b}

	finalizeCount := 0
	assert.NotPanics(t, func() {
		heap.Collect(func(v *gc.Visitor[cyclicValue]) {
			if v.Mark(a) {
				a.Get().Visit(v)
			}
		}, func(gc.Handle[cyclicValue]) {
			finalizeCount++
		})
	})

	assert.Equal(t, 0, finalizeCount)
	assert.Equal(t, 2, heap.Len())
}

func TestTeardownDestroysAllRemainingCells(t *testing.T) {
	heap := gc.New[stringValue]()
	heap.Insert("A")
	heap.Insert("B")

	heap.Teardown()

	assert.Equal(t, 0, heap.Len())
}
