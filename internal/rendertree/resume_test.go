package rendertree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sigmundgranaas/petty/internal/geom"
	"github.com/sigmundgranaas/petty/internal/rendertree/text"
	"github.com/sigmundgranaas/petty/internal/style"
)

// fakeSink records anchor/index/heading calls so tests can assert a
// node's first-fragment setup (registration) actually ran.
type fakeSink struct {
	anchors  []string
	headings []string
}

func (f *fakeSink) RegisterAnchor(id string, pageIndex int, y float64) { f.anchors = append(f.anchors, id) }
func (f *fakeSink) RecordIndex(term string, pageIndex int)             {}
func (f *fakeSink) RecordHeading(level int, text string, pageIndex int) {
	f.headings = append(f.headings, text)
}

func TestBlockLayoutTreatsAtomicResumeAsFreshEntry(t *testing.T) {
	cs := style.Default()
	cs.BackgroundColor = "#eee"
	sink := &fakeSink{}
	ctx := NewLayoutContext(geom.Rect{W: 100, H: 100}, 0, sink, &Env{})

	child := &fixedSizeNode{size: geom.Size{W: 100, H: 10}}
	block := NewBlockNode(&cs, []LayoutNode{child}, "anchor-1")

	res, err := block.Layout(ctx, geom.TightWidth(100), &NodeState{Kind: StateAtomic})

	assert.NoError(t, err)
	assert.True(t, res.IsFinished())
	assert.Equal(t, []string{"anchor-1"}, sink.anchors)
	assert.NotEmpty(t, ctx.Elements)
}

func TestHeadingRecordsOutlineOnlyWhenLineActuallyLands(t *testing.T) {
	cs := style.Default()
	cs.MarginTop = style.Pt(50)
	sink := &fakeSink{}
	ctx := NewLayoutContext(geom.Rect{W: 500, H: 60}, 0, sink, &Env{Measurer: fakeMeasurer{}})
	// The page already has content (CursorY=55, 5pt of room left) and
	// the heading's own 50pt top margin can't collapse into that, so
	// it must defer whole (StateAtomic) without recording anything yet.
	ctx.CursorY = 55

	spans := []text.Span{{Text: "Introduction", Style: &cs, LinkIndex: -1}}
	heading := NewHeadingNode(&cs, 1, spans, nil, "h1")
	res, err := heading.Layout(ctx, geom.TightWidth(500), nil)
	assert.NoError(t, err)
	assert.False(t, res.IsFinished())
	assert.Equal(t, StateAtomic, res.State.Kind)
	assert.Empty(t, sink.headings)

	// Retrying on a fresh page (empty context) must both place the
	// line and record the heading, using the StateAtomic resume to
	// redo first-fragment setup rather than treating it as a
	// mid-content continuation.
	ctx2 := NewLayoutContext(geom.Rect{W: 500, H: 100}, 1, sink, &Env{Measurer: fakeMeasurer{}})
	res2, err := heading.Layout(ctx2, geom.TightWidth(500), res.State)
	assert.NoError(t, err)
	assert.True(t, res2.IsFinished())
	assert.Equal(t, []string{"Introduction"}, sink.headings)
}

type fakeMeasurer struct{}

func (fakeMeasurer) MeasureWidth(text, family string, size float64, bold, italic bool) float64 {
	return float64(len(text)) * 10
}
