package rendertree

import (
	"github.com/sigmundgranaas/petty/internal/geom"
	"github.com/sigmundgranaas/petty/internal/style"
)

// layoutSequentialChildren implements the shared shape of Block and
// List layout (spec.md §4.4): apply the box model's top margin once on
// fresh entry, lay out children in document order advancing cursor_y,
// resume the in-progress child on re-entry, and paint
// background/borders gated by draw_top/draw_bottom per fragment. Block
// and List differ only in which StateKind tags the resulting
// resumption token.
func layoutSequentialChildren(ctx *LayoutContext, c geom.BoxConstraints, cs *style.ComputedStyle, children []LayoutNode, resume *NodeState, kind StateKind, anchorID string) (LayoutResult, error) {
	box := resolveBoxModel(cs, ctx.Bounds.W)
	startChild := 0
	var innerResume *NodeState
	// A StateAtomic resume means this whole node was deferred to a
	// fresh page before any of its content was placed (its top margin
	// alone didn't fit) — that is a fresh entry, not a continuation of
	// a child in progress, so it must re-run the same first-fragment
	// setup (top margin/padding/border, anchor registration) that a
	// nil resume runs. Only a resume tagged with this node's own kind
	// is a genuine mid-content continuation.
	atomicRestart := resume != nil && resume.Kind == StateAtomic
	firstFragment := resume == nil || atomicRestart
	blockStartY := ctx.CursorY

	if resume != nil && !atomicRestart {
		startChild = resume.ChildIndex
		innerResume = resume.Inner
	} else {
		if ctx.PrepareForBlock(box.MarginTop) {
			return Break(&NodeState{Kind: StateAtomic}), nil
		}
		blockStartY = ctx.CursorY
		ctx.CursorY += box.PaddingTop + box.BorderTop
		if anchorID != "" {
			ctx.RegisterAnchor(anchorID)
		}
	}

	origBounds := ctx.Bounds
	ctx.Bounds = geom.Rect{
		X: origBounds.X + box.PaddingLeft + box.BorderLeft,
		Y: origBounds.Y,
		W: origBounds.W - box.PaddingLeft - box.PaddingRight - box.BorderLeft - box.BorderRight,
		H: origBounds.H,
	}
	childConstraints := geom.TightWidth(ctx.Bounds.W)

	for i := startChild; i < len(children); i++ {
		res, err := children[i].Layout(ctx, childConstraints, innerResume)
		innerResume = nil
		if err != nil {
			ctx.Bounds = origBounds
			return LayoutResult{}, err
		}
		if !res.IsFinished() {
			ctx.Bounds = origBounds
			fragRect := geom.Rect{X: origBounds.X, Y: origBounds.Y + blockStartY, W: origBounds.W, H: ctx.CursorY - blockStartY}
			elems := createBackgroundAndBorders(fragRect, cs, firstFragment, false)
			ctx.Elements = append(elems, ctx.Elements...)
			return Break(&NodeState{Kind: kind, ChildIndex: i, Inner: res.State}), nil
		}
	}
	ctx.Bounds = origBounds
	ctx.CursorY += box.PaddingBottom + box.BorderBottom

	fragRect := geom.Rect{X: origBounds.X, Y: origBounds.Y + blockStartY, W: origBounds.W, H: ctx.CursorY - blockStartY}
	elems := createBackgroundAndBorders(fragRect, cs, firstFragment, true)
	ctx.Elements = append(elems, ctx.Elements...)

	ctx.FinishBlock(box.MarginBottom)
	return Finished(), nil
}
