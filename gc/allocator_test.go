package gc_test

import (
	"testing"

	"github.com/aledsdavies/sable/gc"
	"github.com/stretchr/testify/assert"
)

func TestAllocatorGrowPreservesContents(t *testing.T) {
	heap := gc.New[stringValue]()
	alloc := heap.Allocator()

	buf := alloc.Alloc(4)
	copy(buf, []byte("abcd"))

	grown := alloc.Grow(buf, 8)
	assert.Equal(t, []byte("abcd\x00\x00\x00\x00"), grown)
}

func TestAllocatorShrinkTruncates(t *testing.T) {
	heap := gc.New[stringValue]()
	alloc := heap.Allocator()

	buf := alloc.Alloc(8)
	copy(buf, []byte("abcdefgh"))

	shrunk := alloc.Shrink(buf, 4)
	assert.Equal(t, []byte("abcd"), shrunk)
}
