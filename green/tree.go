// Package green implements a lossless green tree: an immutable,
// structurally shared syntax tree whose leaves concatenate back to the
// source text exactly, assembled through a
// StartNode/FinishNode/Token/Finish builder backed by an interning
// cache.
package green

import (
	"github.com/aledsdavies/sable/syntax"
)

// Element is either a *Node or a Token; it is the child type of a Node.
type Element interface {
	element()
	// Text returns the concatenation of this element's leaf text.
	Text() string
	// Kind returns the syntax kind of this element.
	Kind() syntax.Kind
}

// Token is a leaf holding the literal source text it was scanned from,
// including trivia.
type Token struct {
	kind syntax.Kind
	text string
}

func (Token) element()            {}
func (t Token) Text() string      { return t.text }
func (t Token) Kind() syntax.Kind { return t.kind }

// Node is an interior node: a kind plus an ordered list of child elements.
// Nodes are immutable once built and may be shared across multiple parent
// nodes (structural sharing), which is why they are always handled by
// pointer.
type Node struct {
	kind     syntax.Kind
	children []Element
	text     string // memoized concatenation of all leaf text
}

func (*Node) element()            {}
func (n *Node) Text() string      { return n.text }
func (n *Node) Kind() syntax.Kind { return n.kind }

// Children returns the node's direct children.
func (n *Node) Children() []Element {
	return n.children
}

// ChildNodes returns only the child elements that are themselves nodes.
func (n *Node) ChildNodes() []*Node {
	var out []*Node
	for _, c := range n.children {
		if node, ok := c.(*Node); ok {
			out = append(out, node)
		}
	}
	return out
}
