package value

import "github.com/aledsdavies/sable/gc"

// RefKind discriminates the RefValue union.
type RefKind uint8

const (
	RefString RefKind = iota
	RefClosure
	RefTable
)

func (k RefKind) String() string {
	switch k {
	case RefString:
		return "string"
	case RefClosure:
		return "closure"
	case RefTable:
		return "table"
	default:
		return "unknown"
	}
}

// RefValue is the boxed variant behind a Value's Ref handle: a byte
// string, a closure, or a table. RefValue cells are the T parameter of
// the gc.Heap this package's values live in.
type RefValue struct {
	kind    RefKind
	str     []byte
	closure Closure
	table   *Table
}

// NewStringRef boxes a byte string. The caller retains ownership of
// data's backing array only until this call returns; RefValue copies
// nothing further and takes ownership of the slice.
func NewStringRef(data []byte) RefValue {
	return RefValue{kind: RefString, str: data}
}

// NewClosureRef boxes a closure.
func NewClosureRef(c Closure) RefValue {
	return RefValue{kind: RefClosure, closure: c}
}

// NewTableRef boxes a table.
func NewTableRef(t *Table) RefValue {
	return RefValue{kind: RefTable, table: t}
}

// Kind reports which alternative is populated.
func (r RefValue) Kind() RefKind { return r.kind }

// CastString returns the string payload, for callers that already know
// (from Kind or context) that a RefValue is a string and want to skip
// the redundant type switch.
func (r RefValue) CastString() []byte {
	return r.str
}

// CastClosure returns the closure payload.
func (r RefValue) CastClosure() Closure {
	return r.closure
}

// CastTable returns the table payload.
func (r RefValue) CastTable() *Table {
	return r.table
}

// Visit implements gc.Trace[RefValue]. Strings and closures (absent
// upvalues) have no outgoing handles; a table visits every key and
// value it holds.
func (r RefValue) Visit(visitor *gc.Visitor[RefValue]) {
	switch r.kind {
	case RefTable:
		r.table.Visit(visitor)
	case RefString, RefClosure:
	}
}
