package gc_test

import (
	"fmt"
	"testing"

	"github.com/aledsdavies/sable/gc"
	"github.com/stretchr/testify/assert"
)

func TestUnmanagedHandleIsNeverFinalized(t *testing.T) {
	h := gc.Unmanaged(stringValue("const"))
	assert.True(t, h.Valid())
	assert.Equal(t, stringValue("const"), *h.Get())
}

func TestHandleFormatDoesNotRecurse(t *testing.T) {
	h := gc.Unmanaged(stringValue("x"))
	s := fmt.Sprintf("%v", h)
	assert.Contains(t, s, "Handle(")
	assert.NotContains(t, s, "x")
}

func TestZeroHandleGetPanics(t *testing.T) {
	var h gc.Handle[stringValue]
	assert.False(t, h.Valid())
	assert.Panics(t, func() {
		h.Get()
	})
}
