package value

// Closure is the boxed representation of a function value. With no
// bytecode or interpreter in this package, a Closure here is just
// enough to let RefValue close over the concept: a reference to a
// function prototype (identified for now by an opaque index into a
// prototype table owned elsewhere). Upvalues — and therefore a
// Closure's outgoing Trace edges — are future work: once modeled, a
// closure's captured cells will need their own outgoing edges in
// Visit.
type Closure struct {
	Proto uint32
}
