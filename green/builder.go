package green

import (
	"github.com/aledsdavies/sable/internal/contract"
	"github.com/aledsdavies/sable/syntax"
)

// Builder assembles a Node tree from a start_node/finish_node/token event
// stream.
type Builder struct {
	cache *NodeCache
	stack []frame
	root  *Node
}

type frame struct {
	kind     syntax.Kind
	children []Element
}

// NewBuilder creates a builder that interns nodes into cache.
func NewBuilder(cache *NodeCache) *Builder {
	return &Builder{cache: cache}
}

// StartNode opens a new node of the given kind.
func (b *Builder) StartNode(kind syntax.Kind) {
	b.stack = append(b.stack, frame{kind: kind})
}

// Token emits a leaf token carrying the exact source text it covers.
func (b *Builder) Token(kind syntax.Kind, text string) {
	contract.Precondition(len(b.stack) > 0, "Token called with no open node")
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, Token{kind: kind, text: text})
}

// FinishNode closes the most recently opened node, interns it, and
// attaches it as a child of its parent (or stores it as the completed
// root if no parent remains open).
func (b *Builder) FinishNode() {
	contract.Precondition(len(b.stack) > 0, "FinishNode called with no open node")

	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	node := b.cache.intern(top.kind, top.children)

	if len(b.stack) == 0 {
		b.root = node
		return
	}

	parent := &b.stack[len(b.stack)-1]
	parent.children = append(parent.children, node)
}

// Finish returns the completed root node. It must be called exactly once,
// after every StartNode has a matching FinishNode.
func (b *Builder) Finish() *Node {
	contract.Postcondition(len(b.stack) == 0, "Finish called with %d unclosed nodes", len(b.stack))
	contract.Postcondition(b.root != nil, "Finish called before any node was completed")
	return b.root
}
