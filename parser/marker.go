package parser

import (
	"github.com/aledsdavies/sable/internal/contract"
	"github.com/aledsdavies/sable/syntax"
)

// Marker denotes an as-yet-unfinished node opened by State.start. Exactly
// one of complete or abandon must be called on it.
type Marker struct {
	position int
}

// complete closes the node, giving its tombstoned Enter event a real
// kind, and returns a handle that can still be retroactively wrapped by
// an enclosing node via precede.
func (m Marker) complete(s *State, kind syntax.Kind) CompletedMarker {
	contract.Precondition(s.events[m.position].isTombstone(), "marker at %d already completed", m.position)

	s.events[m.position] = event{tag: eventEnter, kind: kind}
	s.events = append(s.events, event{tag: eventExit})

	return CompletedMarker{position: m.position, kind: kind}
}

// abandon discards the node without emitting any tree shape for it. Used
// when a speculative parse (e.g. rMaybeAssign's leading simple-expr)
// turns out not to need its own node.
func (m Marker) abandon(s *State) {
	ev := &s.events[m.position]
	contract.Invariant(ev.tag == eventEnter && ev.precededBy == 0,
		"abandon called on a non-tombstone or already-preceded marker at %d", m.position)
	ev.kind = syntax.Tombstone

	if m.position == len(s.events)-1 {
		s.events = s.events[:len(s.events)-1]
	}
}

// CompletedMarker is a finished node that can still be wrapped by a node
// started later, via precede — the core trick that lets the parser
// decide an expression is, say, the left-hand side of a binary operator
// only after having already parsed it.
type CompletedMarker struct {
	position int
	kind     syntax.Kind
}

// Kind returns the syntax kind this marker was completed with.
func (cm CompletedMarker) Kind() syntax.Kind {
	return cm.kind
}

// precede opens a new marker that will enclose cm once completed,
// without having to move or copy any of the events already emitted for
// cm's subtree.
func (cm CompletedMarker) precede(s *State) Marker {
	m := s.start()

	ev := &s.events[cm.position]
	contract.Invariant(ev.tag == eventEnter, "precede called on a non-Enter event at %d", cm.position)
	contract.Invariant(m.position > cm.position, "precede produced a non-forward preceded_by at %d", cm.position)
	ev.precededBy = m.position - cm.position

	return m
}
