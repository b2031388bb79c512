package rendertree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sigmundgranaas/petty/internal/geom"
	"github.com/sigmundgranaas/petty/internal/style"
)

func TestResolveBoxModelResolvesPercentAgainstContainingWidth(t *testing.T) {
	cs := style.Default()
	cs.MarginLeft = style.Percent(10)
	cs.PaddingTop = style.Pt(5)
	cs.BorderTop = style.BorderSide{Width: 2, Color: "#000"}

	box := resolveBoxModel(&cs, 200)

	assert.Equal(t, 20.0, box.MarginLeft)
	assert.Equal(t, 5.0, box.PaddingTop)
	assert.Equal(t, 2.0, box.BorderTop)
}

func TestResolveBoxModelTreatsAutoAsZero(t *testing.T) {
	cs := style.Default()
	cs.MarginTop = style.Auto

	box := resolveBoxModel(&cs, 100)

	assert.Equal(t, 0.0, box.MarginTop)
}

func TestCreateBackgroundAndBordersEmitsFillWhenSet(t *testing.T) {
	cs := style.Default()
	cs.BackgroundColor = "#fff"

	elems := createBackgroundAndBorders(geom.Rect{X: 0, Y: 0, W: 10, H: 10}, &cs, true, true)

	assert.Len(t, elems, 1)
	assert.Equal(t, ElementRectangle, elems[0].Kind)
	assert.Equal(t, "#fff", elems[0].Rectangle.Fill)
}

func TestCreateBackgroundAndBordersSkipsZeroWidthBorders(t *testing.T) {
	cs := style.Default()

	elems := createBackgroundAndBorders(geom.Rect{X: 0, Y: 0, W: 10, H: 10}, &cs, true, true)

	assert.Empty(t, elems)
}

func TestCreateBackgroundAndBordersSuppressesTopAndBottomWhenFragmented(t *testing.T) {
	cs := style.Default()
	cs.BorderTop = style.BorderSide{Width: 1, Color: "#000"}
	cs.BorderBottom = style.BorderSide{Width: 1, Color: "#000"}
	cs.BorderLeft = style.BorderSide{Width: 1, Color: "#000"}

	elems := createBackgroundAndBorders(geom.Rect{X: 0, Y: 0, W: 10, H: 10}, &cs, false, false)

	assert.Len(t, elems, 1)
	assert.Equal(t, 1.0, elems[0].Rect.W)
}
