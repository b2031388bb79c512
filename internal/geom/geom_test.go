package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectInsetShrinksByMargins(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 200}
	inset := r.Inset(10, 20, 30, 40)
	assert.Equal(t, Rect{X: 40, Y: 10, W: 40, H: 160}, inset)
}

func TestRectInsetClampsToZeroNotNegative(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	inset := r.Inset(100, 100, 100, 100)
	assert.Equal(t, 0.0, inset.W)
	assert.Equal(t, 0.0, inset.H)
}

func TestTightWidthConstrainsOnlyWidth(t *testing.T) {
	c := TightWidth(150)
	assert.True(t, c.IsTightWidth())
	assert.False(t, c.IsTightHeight())
	assert.True(t, c.IsBoundedWidth())
	assert.False(t, c.IsBoundedHeight())
}

func TestTightConstrainsBothAxes(t *testing.T) {
	c := Tight(Size{W: 50, H: 60})
	assert.True(t, c.IsTightWidth())
	assert.True(t, c.IsTightHeight())
}

func TestUnboundedHasNoUpperLimit(t *testing.T) {
	assert.False(t, Unbounded.IsBoundedWidth())
	assert.False(t, Unbounded.IsBoundedHeight())
	assert.True(t, math.IsInf(Unbounded.MaxW, 1))
}

func TestConstrainClampsWithinBounds(t *testing.T) {
	c := BoxConstraints{MinW: 10, MaxW: 100, MinH: 10, MaxH: 100}
	assert.Equal(t, Size{W: 10, H: 100}, c.Constrain(Size{W: 5, H: 500}))
	assert.Equal(t, Size{W: 50, H: 50}, c.Constrain(Size{W: 50, H: 50}))
}
