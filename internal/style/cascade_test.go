package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strp(s string) *string { return &s }
func f64p(v float64) *float64 { return &v }

func TestCascadeOrderingAndOverride(t *testing.T) {
	sheet := NewStylesheet()
	sheet.Styles["base"] = &ElementStyle{Color: strp("#111111"), FontSize: f64p(10)}
	sheet.Styles["accent"] = &ElementStyle{Color: strp("#222222")}
	eng := NewEngine(sheet)

	parent := Default()

	// Later named set wins over an earlier one.
	cs := eng.Compute([]string{"base", "accent"}, nil, parent)
	assert.Equal(t, "#222222", cs.Color)
	assert.Equal(t, 10.0, cs.FontSize)

	// Inline override beats all named sets.
	override := &ElementStyle{Color: strp("#333333")}
	cs2 := eng.Compute([]string{"base", "accent"}, override, parent)
	assert.Equal(t, "#333333", cs2.Color)
}

func TestCascadeInheritance(t *testing.T) {
	sheet := NewStylesheet()
	eng := NewEngine(sheet)

	parent := Default()
	parent.Color = "#abcdef"
	parent.FontSize = 14

	// A child with no style sets still inherits color/font-size through
	// an intermediate non-specifying node.
	intermediate := eng.Compute(nil, nil, parent)
	child := eng.Compute(nil, nil, intermediate)

	assert.Equal(t, "#abcdef", child.Color)
	assert.Equal(t, 14.0, child.FontSize)

	// Non-inherited properties reset to defaults regardless of parent.
	parent.BackgroundColor = "#ff0000"
	reset := eng.Compute(nil, nil, parent)
	assert.Equal(t, "", reset.BackgroundColor)
}

func TestLineHeightDefault(t *testing.T) {
	sheet := NewStylesheet()
	eng := NewEngine(sheet)
	parent := Default()
	parent.FontSize = 20

	cs := eng.Compute(nil, nil, parent)
	assert.InDelta(t, 20*1.2, cs.LineHeight, 0.01)
}

func TestBorderShorthandResolution(t *testing.T) {
	sheet := NewStylesheet()
	sheet.Styles["boxed"] = &ElementStyle{
		Border:    &BorderSide{Width: 1, Color: "#000", Style: "solid"},
		BorderTop: &BorderSide{Width: 3, Color: "#f00", Style: "dashed"},
	}
	eng := NewEngine(sheet)
	cs := eng.Compute([]string{"boxed"}, nil, Default())

	assert.Equal(t, 3.0, cs.BorderTop.Width)
	assert.Equal(t, 1.0, cs.BorderRight.Width)
	assert.Equal(t, 1.0, cs.BorderLeft.Width)
}
