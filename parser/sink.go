package parser

import (
	"github.com/aledsdavies/sable/green"
	"github.com/aledsdavies/sable/internal/contract"
	"github.com/aledsdavies/sable/syntax"
)

// buildTree replays an event log into a green tree. Enter events start
// out pointing at the node they directly open; an Enter with a non-zero
// precededBy additionally means a later-opened node should wrap it, so
// walking forward from idx we first chase precededBy forward through
// the chain of enclosing markers and open all of their nodes outside-in.
//
// Each Enter event is consumed at most once: whichever of the forward
// scan or a precededBy chain-walk reaches it first resets it to a
// tombstone, so the other never re-opens the same node.
func buildTree(cache *green.NodeCache, events []event, src string) *green.Node {
	b := green.NewBuilder(cache)
	var precededNodes []syntax.Kind

	for idx := 0; idx < len(events); idx++ {
		ev := events[idx]
		events[idx] = tombstoneEvent()

		switch ev.tag {
		case eventEnter:
			if ev.isTombstone() {
				continue
			}

			precededNodes = append(precededNodes, ev.kind)

			i, precededBy := idx, ev.precededBy
			for precededBy > 0 {
				i += precededBy
				next := events[i]
				events[i] = tombstoneEvent()

				contract.Invariant(next.tag == eventEnter, "preceded_by chain at %d must point at an Enter event", i)
				if next.kind != syntax.Tombstone {
					precededNodes = append(precededNodes, next.kind)
				}
				precededBy = next.precededBy
			}

			for j := len(precededNodes) - 1; j >= 0; j-- {
				b.StartNode(precededNodes[j])
			}
			precededNodes = precededNodes[:0]

		case eventExit:
			b.FinishNode()

		case eventToken:
			b.Token(ev.kind, ev.span.Slice(src))
		}
	}

	return b.Finish()
}
