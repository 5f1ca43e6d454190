package parser

import (
	"github.com/aledsdavies/sable/source"
	"github.com/aledsdavies/sable/syntax"
)

type eventTag uint8

const (
	eventEnter eventTag = iota
	eventExit
	eventToken
)

// event is the parser's intermediate representation: a flat, append-only
// log of tree shape (Enter/Exit) and leaf tokens. Enter events start out
// as tombstones and are only given a real kind once their matching
// Marker completes, which is what lets completed nodes be retroactively
// reparented via precededBy (see CompletedMarker.precede).
type event struct {
	tag        eventTag
	kind       syntax.Kind
	precededBy int
	span       source.Span
}

func tombstoneEvent() event {
	return event{tag: eventEnter, kind: syntax.Tombstone}
}

func (e event) isTombstone() bool {
	return e.tag == eventEnter && e.kind == syntax.Tombstone && e.precededBy == 0
}
