package rendertree

import (
	"github.com/sigmundgranaas/petty/internal/geom"
	"github.com/sigmundgranaas/petty/internal/style"
)

// TableColumn is a resolved column definition (spec.md §4.4's table
// column width: Pt | Percent | Auto).
type TableColumn struct {
	Width style.Dimension
}

// TableCell is one cell of a TableRow: its content laid out as a
// nested block, plus the span counts from the IDF. RowSpan beyond 1 is
// accepted but clamped: the cell is always rendered within its own
// row's height and does not reserve column slots in subsequent rows
// (Open Question decision, see SPEC_FULL.md) — a row split across a
// page boundary mid-rowspan simply does not continue the cell onto the
// new page.
type TableCell struct {
	Content LayoutNode
	ColSpan int
	RowSpan int
}

// TableRow is one row of cells.
type TableRow struct {
	Cells []TableCell
}

// TableNode lays out a header (repeated on every page fragment) and a
// resumable sequence of body rows (spec.md §4.4's Table).
type TableNode struct {
	base
	Columns    []TableColumn
	HeaderRows []TableRow
	BodyRows   []TableRow
	AnchorID   string
}

// NewTableNode constructs a Table RenderNode.
func NewTableNode(cs *style.ComputedStyle, columns []TableColumn, header, body []TableRow, anchorID string) *TableNode {
	return &TableNode{base: base{style: cs}, Columns: columns, HeaderRows: header, BodyRows: body, AnchorID: anchorID}
}

func (t *TableNode) measureRowHeight(env *Env, row TableRow, widths []float64) float64 {
	h := 0.0
	col := 0
	for _, cell := range row.Cells {
		span := cell.ColSpan
		if span < 1 {
			span = 1
		}
		w := 0.0
		for k := col; k < col+span && k < len(widths); k++ {
			w += widths[k]
		}
		if ch := cell.Content.Measure(env, geom.TightWidth(w)).H; ch > h {
			h = ch
		}
		col += span
	}
	return h
}

func (t *TableNode) layoutRow(ctx *LayoutContext, row TableRow, widths []float64, rowHeight float64) error {
	x := ctx.Bounds.X
	col := 0
	for _, cell := range row.Cells {
		span := cell.ColSpan
		if span < 1 {
			span = 1
		}
		w := 0.0
		for k := col; k < col+span && k < len(widths); k++ {
			w += widths[k]
		}
		rect := geom.Rect{X: x, Y: ctx.Bounds.Y + ctx.CursorY, W: w, H: rowHeight}
		cellCtx := ctx.Child(rect)
		if _, err := cell.Content.Layout(cellCtx, geom.TightWidth(w), nil); err != nil {
			return err
		}
		ctx.Elements = append(ctx.Elements, cellCtx.Elements...)
		x += w
		col += span
	}
	ctx.CursorY += rowHeight
	return nil
}

func (t *TableNode) Measure(env *Env, c geom.BoxConstraints) geom.Size {
	box := resolveBoxModel(t.style, c.MaxW)
	innerW := c.MaxW - box.PaddingLeft - box.PaddingRight - box.BorderLeft - box.BorderRight
	if innerW < 0 {
		innerW = 0
	}
	widths := ResolveColumnWidths(env, t.Columns, t.BodyRows, innerW, c.IsBoundedWidth())
	h := box.PaddingTop + box.PaddingBottom + box.BorderTop + box.BorderBottom
	for _, row := range t.HeaderRows {
		h += t.measureRowHeight(env, row, widths)
	}
	for _, row := range t.BodyRows {
		h += t.measureRowHeight(env, row, widths)
	}
	return c.Constrain(geom.Size{W: c.MaxW, H: h})
}

// Layout places the header rows on every fragment, then as many body
// rows from resume.RowIndex as fit, breaking atomically on a row
// boundary — a single row is never split mid-row (spec.md §4.4).
func (t *TableNode) Layout(ctx *LayoutContext, c geom.BoxConstraints, resume *NodeState) (LayoutResult, error) {
	box := resolveBoxModel(t.style, ctx.Bounds.W)
	// A StateAtomic resume means the table as a whole was deferred to a
	// fresh page before any row was placed (its top margin alone
	// didn't fit); that is a fresh entry, not a continuation from
	// resume.RowIndex, which only applies to a StateTable resume.
	atomicRestart := resume != nil && resume.Kind == StateAtomic
	firstFragment := resume == nil || atomicRestart
	startRow := 0
	if resume != nil && !atomicRestart {
		startRow = resume.RowIndex
	}
	blockStartY := ctx.CursorY

	if firstFragment {
		if ctx.PrepareForBlock(box.MarginTop) {
			return Break(&NodeState{Kind: StateAtomic}), nil
		}
		blockStartY = ctx.CursorY
		ctx.CursorY += box.PaddingTop + box.BorderTop
		if t.AnchorID != "" {
			ctx.RegisterAnchor(t.AnchorID)
		}
	}

	origBounds := ctx.Bounds
	ctx.Bounds = geom.Rect{
		X: origBounds.X + box.PaddingLeft + box.BorderLeft,
		Y: origBounds.Y,
		W: origBounds.W - box.PaddingLeft - box.PaddingRight - box.BorderLeft - box.BorderRight,
		H: origBounds.H,
	}

	widths := ResolveColumnWidths(ctx.Env, t.Columns, t.BodyRows, ctx.Bounds.W, true)

	headerHeight := 0.0
	for _, row := range t.HeaderRows {
		h := t.measureRowHeight(ctx.Env, row, widths)
		headerHeight += h
		if err := t.layoutRow(ctx, row, widths, h); err != nil {
			ctx.Bounds = origBounds
			return LayoutResult{}, err
		}
	}

	// maxRowHeight is the most a body row could ever be given, on a
	// fresh continuation page carrying only the repeated header (no
	// box padding, since that's only added to the first/last
	// fragment). A row taller than this can never fit on any page no
	// matter how many Break/retry cycles run, so it is logged and
	// skipped here rather than looping until the page-count backstop
	// aborts the build (spec.md §7/§8).
	maxRowHeight := ctx.Bounds.H - headerHeight
	if maxRowHeight < 0 {
		maxRowHeight = 0
	}

	for ri := startRow; ri < len(t.BodyRows); ri++ {
		row := t.BodyRows[ri]
		h := t.measureRowHeight(ctx.Env, row, widths)
		if h > maxRowHeight {
			if ctx.Env != nil {
				ctx.Env.warnOversized("table-row", t.AnchorID)
			}
			continue
		}
		if ctx.CursorY+h > ctx.Bounds.H && !ctx.IsEmpty() {
			ctx.Bounds = origBounds
			fragRect := geom.Rect{X: origBounds.X, Y: origBounds.Y + blockStartY, W: origBounds.W, H: ctx.CursorY - blockStartY}
			elems := createBackgroundAndBorders(fragRect, t.style, firstFragment, false)
			ctx.Elements = append(elems, ctx.Elements...)
			return Break(&NodeState{Kind: StateTable, RowIndex: ri}), nil
		}
		if err := t.layoutRow(ctx, row, widths, h); err != nil {
			ctx.Bounds = origBounds
			return LayoutResult{}, err
		}
	}

	ctx.Bounds = origBounds
	ctx.CursorY += box.PaddingBottom + box.BorderBottom
	fragRect := geom.Rect{X: origBounds.X, Y: origBounds.Y + blockStartY, W: origBounds.W, H: ctx.CursorY - blockStartY}
	elems := createBackgroundAndBorders(fragRect, t.style, firstFragment, true)
	ctx.Elements = append(elems, ctx.Elements...)
	ctx.FinishBlock(box.MarginBottom)
	return Finished(), nil
}
