// Package value implements the scalar and heap-allocated value model: a
// tagged Value union over booleans, 32-bit integers, 32-bit floats, and
// handles into a gc.Heap of RefValue cells. It intentionally stops
// short of numeric promotion, metatables, and coroutines — only the
// storage model is implemented.
package value

import (
	"fmt"
	"math"

	"github.com/aledsdavies/sable/gc"
)

// Kind discriminates the Value union.
type Kind uint8

const (
	Boolean Kind = iota
	Integer
	Float
	Ref
)

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "boolean"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Ref:
		return "ref"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is a tagged scalar union: a Boolean, Integer, Float, or a Handle
// into the RefValue heap. It is comparable (and so usable directly as a
// Go map key) because every field it carries — bool, int32, float32,
// gc.Handle — is itself comparable; Table relies on this instead of
// hand-rolling a Hash impl.
type Value struct {
	kind Kind
	b    bool
	i    int32
	f    float32
	ref  gc.Handle[RefValue]
}

// NewBoolean wraps a bool.
func NewBoolean(b bool) Value { return Value{kind: Boolean, b: b} }

// NewInteger wraps a 32-bit integer.
func NewInteger(i int32) Value { return Value{kind: Integer, i: i} }

// NewFloat wraps a 32-bit float.
func NewFloat(f float32) Value { return Value{kind: Float, f: f} }

// NewRef wraps a handle to a heap-allocated RefValue.
func NewRef(h gc.Handle[RefValue]) Value { return Value{kind: Ref, ref: h} }

// Kind reports which alternative of the union is populated.
func (v Value) Kind() Kind { return v.kind }

// AsBoolean returns the boolean payload. Callers must check Kind first;
// it does not panic on a mismatched kind, it simply returns the zero
// value for that field.
func (v Value) AsBoolean() bool { return v.b }

// AsInteger returns the integer payload.
func (v Value) AsInteger() int32 { return v.i }

// AsFloat returns the float payload.
func (v Value) AsFloat() float32 { return v.f }

// AsRef returns the ref-handle payload.
func (v Value) AsRef() gc.Handle[RefValue] { return v.ref }

// Equal reports whether v and other hold the same kind and payload.
// Values of different kinds are never equal; there is no implicit
// coercion across kinds.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Boolean:
		return v.b == other.b
	case Integer:
		return v.i == other.i
	case Float:
		return v.f == other.f
	case Ref:
		return v.ref == other.ref
	default:
		return false
	}
}

// Compare imposes a total order over values of the same kind. Ref
// values compare equal to one another regardless of identity — an
// intentional identity-only comparison, not a meaningful ordering — and
// comparing across kinds also returns 0 rather than panicking.
func (v Value) Compare(other Value) int {
	if v.kind != other.kind {
		return 0
	}
	switch v.kind {
	case Boolean:
		return boolCompare(v.b, other.b)
	case Integer:
		return intCompare(v.i, other.i)
	case Float:
		return floatCompare(v.f, other.f)
	default:
		return 0
	}
}

// Visit implements gc.Trace[RefValue] for Value: a non-Ref value has no
// outgoing handles, and a Ref value marks its own handle, recursing
// into the pointee's Visit only the first time the handle is marked in
// this cycle. That guard is what keeps a cyclic table graph from
// looping forever during Heap.Collect's trace phase.
func (v Value) Visit(visitor *gc.Visitor[RefValue]) {
	if v.kind != Ref {
		return
	}
	if visitor.Mark(v.ref) {
		v.ref.Get().Visit(visitor)
	}
}

func boolCompare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a && b:
		return -1
	default:
		return 1
	}
}

func intCompare(a, b int32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// floatCompare orders two float32s by sign-adjusted bit pattern, so
// that negative sorts before positive and distinct NaN payloads remain
// distinguishable and totally ordered rather than comparing unordered.
func floatCompare(a, b float32) int {
	ka, kb := floatSortKey(a), floatSortKey(b)
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	default:
		return 0
	}
}

// floatSortKey treats the IEEE-754 bit pattern as an unsigned integer,
// then either sets the sign bit (for non-negative floats, so they sort
// above all negatives) or flips every bit (for negative floats, so more
// negative magnitudes sort lower).
func floatSortKey(f float32) uint32 {
	bits := math.Float32bits(f)
	const signBit = uint32(1) << 31
	if bits&signBit == 0 {
		return bits | signBit
	}
	return ^bits
}
