package gc

// Allocator is the container-spill allocator role a Heap also plays: it
// hands out byte storage for containers it doesn't directly own as
// cells (a table's overflow bucket arena), and every grow/shrink is
// folded into the same heuristics that drive this heap's own Collect
// decision. Callers hand back and receive plain []byte slices rather
// than raw pointers.
type Allocator struct {
	heuristics *heuristics
}

// Alloc hands back a zeroed buffer of size bytes and records the
// allocation against the owning heap's heuristics.
func (a Allocator) Alloc(size int) []byte {
	buf := make([]byte, size)
	a.heuristics.updateAllocated(int64(size))
	return buf
}

// Free releases buf, crediting its length back to the owning heap's
// allocated counter. Go's runtime reclaims the backing array itself;
// this only keeps the heuristics accurate.
func (a Allocator) Free(buf []byte) {
	a.heuristics.updateAllocated(-int64(len(buf)))
}

// Grow reallocates buf to newSize (which must be >= len(buf)), copying
// the existing contents, and accounts for the signed delta between the
// old and new layout sizes.
func (a Allocator) Grow(buf []byte, newSize int) []byte {
	grown := make([]byte, newSize)
	copy(grown, buf)
	a.heuristics.updateAllocated(int64(newSize - len(buf)))
	return grown
}

// Shrink reallocates buf down to newSize (which must be <= len(buf)),
// accounting for the (negative) delta the same way Grow does.
func (a Allocator) Shrink(buf []byte, newSize int) []byte {
	shrunk := make([]byte, newSize)
	copy(shrunk, buf[:newSize])
	a.heuristics.updateAllocated(int64(newSize - len(buf)))
	return shrunk
}
