package green_test

import (
	"testing"

	"github.com/aledsdavies/sable/green"
	"github.com/aledsdavies/sable/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderProducesLosslessText(t *testing.T) {
	cache := green.NewNodeCache()
	b := green.NewBuilder(cache)

	b.StartNode(syntax.Root)
	b.StartNode(syntax.BinOp)
	b.Token(syntax.Int, "1")
	b.Token(syntax.Plus, "+")
	b.Token(syntax.Int, "2")
	b.FinishNode()
	b.FinishNode()

	root := b.Finish()
	assert.Equal(t, syntax.Root, root.Kind())
	assert.Equal(t, "1+2", root.Text())
}

func TestBuilderFinishWithoutCloseAllPanics(t *testing.T) {
	cache := green.NewNodeCache()
	b := green.NewBuilder(cache)
	b.StartNode(syntax.Root)

	assert.Panics(t, func() {
		b.Finish()
	})
}

func TestNodeCacheInterns(t *testing.T) {
	cache := green.NewNodeCache()

	build := func() *green.Node {
		b := green.NewBuilder(cache)
		b.StartNode(syntax.Ident)
		b.Token(syntax.Ident, "x")
		b.FinishNode()
		return b.Finish()
	}

	a := build()
	c := build()
	require.Equal(t, a.Text(), c.Text())
	assert.Same(t, a, c, "structurally identical nodes should be interned to the same pointer")
}
