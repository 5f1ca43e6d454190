package value_test

import (
	"math"
	"testing"

	"github.com/aledsdavies/sable/gc"
	"github.com/aledsdavies/sable/value"
	"github.com/stretchr/testify/assert"
)

func TestValueEqualAcrossKindsIsFalse(t *testing.T) {
	assert.False(t, value.NewInteger(1).Equal(value.NewFloat(1)))
	assert.True(t, value.NewInteger(1).Equal(value.NewInteger(1)))
}

func TestValueCompareFloatNegativeBeforePositive(t *testing.T) {
	assert.Equal(t, -1, value.NewFloat(-1).Compare(value.NewFloat(1)))
	assert.Equal(t, 1, value.NewFloat(1).Compare(value.NewFloat(-1)))
	assert.Equal(t, 0, value.NewFloat(2.5).Compare(value.NewFloat(2.5)))
}

func TestValueCompareDistinguishesNaNPayloads(t *testing.T) {
	nan1 := value.NewFloat(math.Float32frombits(0x7fc00001))
	nan2 := value.NewFloat(math.Float32frombits(0x7fc00002))
	assert.NotEqual(t, 0, nan1.Compare(nan2), "distinct NaN bit patterns must not compare equal")
}

func TestValueCompareAcrossKindsReturnsZero(t *testing.T) {
	assert.Equal(t, 0, value.NewBoolean(true).Compare(value.NewInteger(1)))
}

func TestValueAsMapKey(t *testing.T) {
	m := map[value.Value]string{
		value.NewInteger(1):    "one",
		value.NewBoolean(true): "true",
	}
	assert.Equal(t, "one", m[value.NewInteger(1)])
	assert.Equal(t, "true", m[value.NewBoolean(true)])
}

func TestValueVisitMarksRefHandle(t *testing.T) {
	heap := gc.New[value.RefValue]()
	h := heap.Insert(value.NewStringRef([]byte("x")))
	v := value.NewRef(h)

	marked := false
	heap.Collect(func(vis *gc.Visitor[value.RefValue]) {
		v.Visit(vis)
		marked = vis.IsMarked(h)
	}, func(gc.Handle[value.RefValue]) {
		t.Fatal("marked handle must not be finalized")
	})

	assert.True(t, marked)
}
