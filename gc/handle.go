// Package gc implements a tracing, mark-and-sweep garbage collector for
// a single kind of heap-allocated value. It does not rely on or
// interact with the Go runtime's own garbage collector for collection
// decisions: objects inserted into a Heap are only reclaimed when a
// Heap.Collect pass marks them unreached, exactly mirroring a
// host-language VM managing its own object lifetime on top of a
// memory-safe substrate.
package gc

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/aledsdavies/sable/internal/contract"
)

// cell is the actual backing allocation for a managed value. A Handle
// never holds T directly, only a pointer to its cell, so the identity
// of a Handle survives moves of the Handle value itself. destroyed is
// set exactly once, by a Heap collection cycle finalizing the cell or by
// Heap.Teardown, and
// turns every later Get into a programmer-error panic rather than a
// silent use-after-free.
type cell[T any] struct {
	value     T
	destroyed bool
}

// Handle is an opaque, copyable reference to a value owned by a Heap.
// Two handles are equal exactly when they refer to the same cell, not
// when their values happen to compare equal. A zero Handle is invalid
// and must never be dereferenced.
type Handle[T any] struct {
	ptr *cell[T]
}

// Unmanaged wraps item in a handle that no Heap tracks. It exists for
// values that must outlive any particular heap's collection cycles,
// such as interned constants; a Heap never finalizes it because it was
// never inserted into one.
func Unmanaged[T any](item T) Handle[T] {
	return Handle[T]{ptr: &cell[T]{value: item}}
}

// Get dereferences the handle. Callers must not call Get on a handle
// after the owning Heap has finalized it during a collection; doing so
// panics rather than returning a stale value.
func (h Handle[T]) Get() *T {
	contract.Precondition(h.ptr != nil, "Get called on a zero Handle")
	contract.Precondition(!h.ptr.destroyed, "Get called on a destroyed Handle")
	return &h.ptr.value
}

// Valid reports whether h refers to a cell at all.
func (h Handle[T]) Valid() bool {
	return h.ptr != nil
}

// destroy finalizes the cell so that any further Get panics. It is only
// reachable from within this package, so the live set in Heap remains
// the sole authority over when a cell dies.
func (h Handle[T]) destroy() {
	contract.Precondition(h.ptr != nil, "destroy called on a zero Handle")
	contract.Invariant(!h.ptr.destroyed, "double destroy of the same Handle")
	h.ptr.destroyed = true
}

// fingerprint derives a short, stable-looking identifier for a handle
// without ever printing or walking the pointed-to value: T may be
// recursive (a table can hold handles back into itself), so the naive
// %v behavior of following the pointer risks runaway or infinite
// output.
func (h Handle[T]) fingerprint() string {
	if h.ptr == nil {
		return "nil"
	}
	sum := blake2b.Sum256([]byte(fmt.Sprintf("%p", h.ptr)))
	return hex.EncodeToString(sum[:6])
}

// GoString implements fmt.GoStringer.
func (h Handle[T]) GoString() string {
	return fmt.Sprintf("gc.Handle{%s}", h.fingerprint())
}

// Format implements fmt.Formatter so that %v and %s never recurse into
// the referenced value.
func (h Handle[T]) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		_, _ = fmt.Fprint(f, h.GoString())
		return
	}
	_, _ = fmt.Fprintf(f, "Handle(%s)", h.fingerprint())
}
