package rendertree

import "github.com/sigmundgranaas/petty/internal/geom"

// SideTables receives anchor and index records as they are emitted
// during pagination. The paginator implements this; rendertree only
// depends on the interface, so there is no import cycle between
// internal/rendertree and internal/paginate.
type SideTables interface {
	RegisterAnchor(id string, pageIndex int, y float64)
	RecordIndex(term string, pageIndex int)
	RecordHeading(level int, text string, pageIndex int)
}

// LayoutContext is the per-page cursor threaded through Layout calls
// (spec.md §4.3).
type LayoutContext struct {
	Bounds      geom.Rect
	CursorY     float64
	LastVMargin float64

	PageIndex int
	Elements  []PositionedElement

	sink SideTables

	// Env carries the build-wide capabilities (fonts, measurement,
	// resources, logging) nodes need while laying out; it never changes
	// across a Child() call.
	Env *Env
}

// NewLayoutContext creates the root context for one page.
func NewLayoutContext(bounds geom.Rect, pageIndex int, sink SideTables, env *Env) *LayoutContext {
	return &LayoutContext{Bounds: bounds, PageIndex: pageIndex, sink: sink, Env: env}
}

// IsEmpty reports whether nothing has been emitted on this page yet.
func (c *LayoutContext) IsEmpty() bool {
	return len(c.Elements) == 0 && c.CursorY == 0
}

// PrepareForBlock advances the cursor by the collapsed top margin
// (max(topMargin, lastVMargin) - lastVMargin) and reports whether the
// caller must break to a new page because even the margin does not
// fit. At the top of a page the margin is suppressed entirely (spec.md
// §4.3).
func (c *LayoutContext) PrepareForBlock(topMargin float64) bool {
	if c.IsEmpty() {
		c.LastVMargin = 0
		return false
	}
	collapsed := topMargin
	if c.LastVMargin > collapsed {
		collapsed = c.LastVMargin
	}
	advance := collapsed - c.LastVMargin
	if c.CursorY+advance > c.Bounds.H {
		return true
	}
	c.CursorY += advance
	c.LastVMargin = 0
	return false
}

// FinishBlock records the bottom margin so the next sibling's
// PrepareForBlock can collapse against it.
func (c *LayoutContext) FinishBlock(bottomMargin float64) {
	c.LastVMargin = bottomMargin
}

// PushElement appends a positioned element to the current page.
func (c *LayoutContext) PushElement(e PositionedElement) {
	c.Elements = append(c.Elements, e)
}

// RegisterAnchor records the absolute page position of an id.
func (c *LayoutContext) RegisterAnchor(id string) {
	if id == "" || c.sink == nil {
		return
	}
	c.sink.RegisterAnchor(id, c.PageIndex, c.CursorY+c.Bounds.Y)
}

// RecordIndex records that term appears on the current page.
func (c *LayoutContext) RecordIndex(term string) {
	if c.sink == nil {
		return
	}
	c.sink.RecordIndex(term, c.PageIndex)
}

// RecordHeading appends a heading outline entry for the role-template
// stage (spec.md §4.4's Heading).
func (c *LayoutContext) RecordHeading(level int, text string) {
	if c.sink == nil {
		return
	}
	c.sink.RecordHeading(level, text, c.PageIndex)
}

// AvailableHeight is the remaining content height below the cursor.
func (c *LayoutContext) AvailableHeight() float64 {
	h := c.Bounds.H - c.CursorY
	if h < 0 {
		return 0
	}
	return h
}

// Child produces a fresh subcontext for a nested block (e.g. a table
// cell), with its own cursor starting at 0 (spec.md §4.3).
func (c *LayoutContext) Child(rect geom.Rect) *LayoutContext {
	return &LayoutContext{Bounds: rect, PageIndex: c.PageIndex, sink: c.sink, Env: c.Env}
}
