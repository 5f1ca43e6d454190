package value_test

import (
	"testing"

	"github.com/aledsdavies/sable/gc"
	"github.com/aledsdavies/sable/value"
	"github.com/stretchr/testify/assert"
)

func TestTableGetSetRemove(t *testing.T) {
	heap := gc.New[value.RefValue]()
	tbl := value.NewTable(heap.Allocator())

	tbl.Set(value.NewInteger(1), value.NewBoolean(true))
	got, ok := tbl.Get(value.NewInteger(1))
	assert.True(t, ok)
	assert.True(t, got.AsBoolean())

	removed, ok := tbl.Remove(value.NewInteger(1))
	assert.True(t, ok)
	assert.True(t, removed.AsBoolean())

	_, ok = tbl.Get(value.NewInteger(1))
	assert.False(t, ok)
}

func TestTableGrowthCountsTowardHeapPressure(t *testing.T) {
	heap := gc.New[value.RefValue]()
	tbl := value.NewTable(heap.Allocator())

	assert.False(t, heap.ShouldCollect())
	for i := int32(0); i < 20000; i++ {
		tbl.Set(value.NewInteger(i), value.NewInteger(i))
	}
	assert.True(t, heap.ShouldCollect(), "enough entries must grow the overflow arena past the heap's threshold")
	assert.Equal(t, 20000, tbl.Len())
}

func TestTableVisitReachesKeysAndValues(t *testing.T) {
	heap := gc.New[value.RefValue]()
	tbl := value.NewTable(heap.Allocator())

	inner := heap.Insert(value.NewStringRef([]byte("v")))
	tbl.Set(value.NewInteger(1), value.NewRef(inner))

	outer := heap.Insert(value.NewTableRef(tbl))
	root := value.NewRef(outer)

	heap.Collect(func(vis *gc.Visitor[value.RefValue]) {
		root.Visit(vis)
	}, func(h gc.Handle[value.RefValue]) {
		t.Fatalf("unexpected finalize of reachable handle")
	})

	assert.Equal(t, 2, heap.Len())
}
