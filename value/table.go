package value

import "github.com/aledsdavies/sable/gc"

// inlineCapacity and bytesPerEntry model a table's growth counting
// toward GC pressure: Go's builtin map has no pluggable allocator, so a
// table routes an estimate of the map's backing cost — an overflow
// arena sized at bytesPerEntry per entry beyond inlineCapacity —
// through the owning heap's gc.Allocator instead, giving the collection
// heuristics visibility into a growing table without reimplementing a
// hash table from scratch.
const (
	inlineCapacity = 8
	bytesPerEntry  = 48
)

// Table is a boxed mapping from Value to Value. Key lookup uses a
// native Go map (Value is comparable, so no custom hash or equality is
// needed); only the overflow-arena accounting below exists to keep the
// heap's collection heuristics honest about a table's true memory
// footprint.
type Table struct {
	entries  map[Value]Value
	alloc    gc.Allocator
	arena    []byte
	arenaCap int
}

// NewTable creates an empty table whose overflow arena (once it
// acquires one) is allocated through alloc.
func NewTable(alloc gc.Allocator) *Table {
	return &Table{entries: make(map[Value]Value), alloc: alloc}
}

// Get returns the value stored at key, if any.
func (t *Table) Get(key Value) (Value, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// Set stores value at key, growing the overflow arena if this insert
// is a new key that pushes the table past its inline capacity.
func (t *Table) Set(key, val Value) {
	_, existed := t.entries[key]
	t.entries[key] = val
	if !existed {
		t.growIfNeeded()
	}
}

// Remove deletes key, returning its prior value if present, and shrinks
// the overflow arena if the table has fallen back within a capacity
// band it no longer needs.
func (t *Table) Remove(key Value) (Value, bool) {
	v, ok := t.entries[key]
	if !ok {
		return Value{}, false
	}
	delete(t.entries, key)
	t.shrinkIfNeeded()
	return v, true
}

// Len reports the number of live entries.
func (t *Table) Len() int {
	return len(t.entries)
}

func (t *Table) growIfNeeded() {
	n := len(t.entries)
	if n <= inlineCapacity {
		return
	}
	needed := (n - inlineCapacity) * bytesPerEntry
	if needed <= t.arenaCap {
		return
	}
	newCap := t.arenaCap * 2
	if newCap < needed {
		newCap = needed
	}
	if t.arenaCap == 0 {
		t.arena = t.alloc.Alloc(newCap)
	} else {
		t.arena = t.alloc.Grow(t.arena, newCap)
	}
	t.arenaCap = newCap
}

func (t *Table) shrinkIfNeeded() {
	if t.arenaCap == 0 {
		return
	}
	n := len(t.entries)
	needed := 0
	if n > inlineCapacity {
		needed = (n - inlineCapacity) * bytesPerEntry
	}
	if needed > t.arenaCap/4 {
		return
	}
	if needed == 0 {
		t.alloc.Free(t.arena)
		t.arena = nil
		t.arenaCap = 0
		return
	}
	t.arena = t.alloc.Shrink(t.arena, needed)
	t.arenaCap = needed
}

// Visit implements gc.Trace[RefValue] by marking every key and value
// currently held.
func (t *Table) Visit(visitor *gc.Visitor[RefValue]) {
	for k, v := range t.entries {
		k.Visit(visitor)
		v.Visit(visitor)
	}
}
