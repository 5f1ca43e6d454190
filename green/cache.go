package green

import (
	"fmt"
	"strings"
	"sync"

	"github.com/aledsdavies/sable/syntax"
)

// NodeCache interns Node values so that structurally identical subtrees —
// common in real source, e.g. repeated `Ident` leaves or repeated small
// expressions — share one allocation. A cache is borrowed exclusively for
// the duration of a single parse and returned enlarged but otherwise
// unchanged; concurrent access across parses is not supported, since the
// parser itself is single-threaded. The cache still guards its map with
// a mutex, so accidental concurrent reuse is serialized rather than
// corrupting the map.
type NodeCache struct {
	mu    sync.Mutex
	nodes map[string]*Node
}

// NewNodeCache creates an empty interning cache.
func NewNodeCache() *NodeCache {
	return &NodeCache{nodes: make(map[string]*Node)}
}

// Len reports how many distinct interned nodes the cache currently holds.
func (c *NodeCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.nodes)
}

func (c *NodeCache) intern(kind syntax.Kind, children []Element) *Node {
	key := cacheKey(kind, children)

	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.nodes[key]; ok {
		return n
	}

	var text strings.Builder
	for _, child := range children {
		text.WriteString(child.Text())
	}

	n := &Node{kind: kind, children: children, text: text.String()}
	c.nodes[key] = n
	return n
}

// cacheKey builds a structural key for interning: child nodes are already
// interned by the time their parent is built, so identifying them by
// pointer is sufficient and avoids re-hashing already-shared subtrees.
func cacheKey(kind syntax.Kind, children []Element) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d(", kind)
	for _, c := range children {
		switch v := c.(type) {
		case Token:
			fmt.Fprintf(&b, "t%d:%q,", v.kind, v.text)
		case *Node:
			fmt.Fprintf(&b, "n%p,", v)
		}
	}
	b.WriteByte(')')
	return b.String()
}
