package rendertree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmundgranaas/petty/internal/geom"
	"github.com/sigmundgranaas/petty/internal/rendertree/text"
	"github.com/sigmundgranaas/petty/internal/style"
)

func justifyTestWords(cs *style.ComputedStyle) []text.Word {
	return []text.Word{
		{Text: "A", Width: 10, Style: cs, LinkIndex: -1, SpaceAfter: true},
		{Text: "B", Width: 10, Style: cs, LinkIndex: -1, SpaceAfter: true},
		{Text: "C", Width: 10, Style: cs, LinkIndex: -1},
	}
}

func layoutOneLine(t *testing.T, cs *style.ComputedStyle, line text.Line, isLastLine bool) []TextRun {
	t.Helper()
	ctx := NewLayoutContext(geom.Rect{W: 200, H: 200}, 0, &fakeSink{}, &Env{})
	n := NewParagraphNode(cs, nil, nil, "")
	n.placeLine(ctx, line, 0, 100, 0, isLastLine)
	require.Len(t, ctx.Elements, 1)
	return ctx.Elements[0].Runs
}

// TestPlaceLineJustifiesInteriorLine verifies AlignJustify distributes
// the line's slack evenly across inter-word gaps, and that each word
// becomes its own run (positioned by its own absolute X) since a
// merged run's " " glyph couldn't carry the widened gap.
func TestPlaceLineJustifiesInteriorLine(t *testing.T) {
	cs := style.Default()
	cs.TextAlign = style.AlignJustify
	line := text.Line{Words: justifyTestWords(&cs), Width: 36}

	runs := layoutOneLine(t, &cs, line, false)

	require.Len(t, runs, 3)
	assert.Equal(t, 0.0, runs[0].X)
	assert.InDelta(t, 45.0, runs[1].X, 0.001)
	assert.InDelta(t, 90.0, runs[2].X, 0.001)
}

// TestPlaceLineDoesNotJustifyLastLine verifies the last line of a
// justified paragraph is left-aligned (spec.md §4.5 emit step skips
// "the last line of the paragraph").
func TestPlaceLineDoesNotJustifyLastLine(t *testing.T) {
	cs := style.Default()
	cs.TextAlign = style.AlignJustify
	line := text.Line{Words: justifyTestWords(&cs), Width: 36}

	runs := layoutOneLine(t, &cs, line, true)

	require.Len(t, runs, 1)
	assert.Equal(t, "A B C", runs[0].Text)
	assert.Equal(t, 0.0, runs[0].X)
}

// TestPlaceLineDoesNotJustifyHardBreakLine verifies a line ended by an
// explicit break is never justified even mid-paragraph.
func TestPlaceLineDoesNotJustifyHardBreakLine(t *testing.T) {
	cs := style.Default()
	cs.TextAlign = style.AlignJustify
	line := text.Line{Words: justifyTestWords(&cs), Width: 36, HardBreak: true}

	runs := layoutOneLine(t, &cs, line, false)

	require.Len(t, runs, 1)
	assert.Equal(t, "A B C", runs[0].Text)
}
