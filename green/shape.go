package green

import "github.com/aledsdavies/sable/syntax"

// Shape is a fully exported, comparable snapshot of a Node's tree
// structure, used by round-trip tests that want to diff two trees with
// go-cmp rather than poke at Node's unexported fields directly.
type Shape struct {
	Kind     syntax.Kind
	Text     string
	Children []Shape
}

// ShapeOf flattens a Node into its comparable Shape.
func ShapeOf(n *Node) Shape {
	s := Shape{Kind: n.Kind(), Text: n.Text()}
	for _, c := range n.children {
		switch v := c.(type) {
		case *Node:
			s.Children = append(s.Children, ShapeOf(v))
		case Token:
			s.Children = append(s.Children, Shape{Kind: v.kind, Text: v.text})
		}
	}
	return s
}
