package rendertree

import (
	"github.com/sigmundgranaas/petty/internal/geom"
	"github.com/sigmundgranaas/petty/internal/style"
)

// FlexNode distributes its children along a main axis using the
// flex-grow/flex-shrink/flex-basis solver, wraps onto further lines
// when flex-wrap allows it, and paginates one line at a time: a line
// that does not fit the remaining page breaks atomically to the next
// page as a whole (spec.md §4.6).
type FlexNode struct {
	base
	Children []LayoutNode
	AnchorID string
}

// NewFlexNode constructs a FlexContainer RenderNode.
func NewFlexNode(cs *style.ComputedStyle, children []LayoutNode, anchorID string) *FlexNode {
	return &FlexNode{base: base{style: cs}, Children: children, AnchorID: anchorID}
}

type flexItem struct {
	node         LayoutNode
	x, w, h, y   float64
}

type flexLine struct {
	items  []flexItem
	height float64
}

// computeLines solves the row-direction main axis (Row/RowReverse);
// Column/ColumnReverse fall back to one item per line at full width,
// since a vertical main axis with an unbounded (auto) cross size gives
// the grow/shrink solver no free space to distribute, collapsing it to
// ordinary block stacking.
func (f *FlexNode) computeLines(env *Env, containerW float64) []flexLine {
	if f.style.FlexDirection == style.FlexColumn || f.style.FlexDirection == style.FlexColumnReverse {
		var lines []flexLine
		for _, child := range f.Children {
			h := child.Measure(env, geom.TightWidth(containerW)).H
			lines = append(lines, flexLine{items: []flexItem{{node: child, x: 0, w: containerW, h: h}}, height: h})
		}
		return lines
	}

	wrap := f.style.FlexWrap == style.FlexWrapOn
	type basisItem struct {
		node  LayoutNode
		basis float64
	}
	var groups [][]basisItem
	var cur []basisItem
	curWidth := 0.0
	for _, child := range f.Children {
		cs := child.Style()
		basis := containerW
		if cs != nil {
			if v, ok := cs.FlexBasis.Resolve(containerW); ok {
				basis = v
			} else {
				basis = child.Measure(env, geom.TightWidth(containerW)).W
			}
		}
		if wrap && len(cur) > 0 && curWidth+basis > containerW {
			groups = append(groups, cur)
			cur = nil
			curWidth = 0
		}
		cur = append(cur, basisItem{node: child, basis: basis})
		curWidth += basis
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}

	var lines []flexLine
	for _, g := range groups {
		sumBasis := 0.0
		for _, it := range g {
			sumBasis += it.basis
		}
		free := containerW - sumBasis

		widths := make([]float64, len(g))
		totalGrow := 0.0
		totalShrink := 0.0
		for _, it := range g {
			cs := it.node.Style()
			if cs != nil {
				totalGrow += cs.FlexGrow
				totalShrink += cs.FlexShrink * it.basis
			}
		}
		for i, it := range g {
			w := it.basis
			cs := it.node.Style()
			if free > 0 && totalGrow > 0 && cs != nil {
				w += free * (cs.FlexGrow / totalGrow)
			} else if free < 0 && totalShrink > 0 && cs != nil {
				w += free * ((cs.FlexShrink * it.basis) / totalShrink)
			}
			if w < 0 {
				w = 0
			}
			widths[i] = w
		}

		used := 0.0
		for _, w := range widths {
			used += w
		}
		leftover := containerW - used
		if leftover < 0 {
			leftover = 0
		}
		startX, gap := justifyOffsets(f.style.JustifyContent, leftover, len(g))

		line := flexLine{}
		x := startX
		lineHeight := 0.0
		measured := make([]float64, len(g))
		for i, it := range g {
			h := it.node.Measure(env, geom.TightWidth(widths[i])).H
			measured[i] = h
			if h > lineHeight {
				lineHeight = h
			}
		}
		for i, it := range g {
			h := measured[i]
			y := 0.0
			align := f.style.AlignItems
			if cs := it.node.Style(); cs != nil && cs.AlignSelf != style.AlignStretch {
				align = cs.AlignSelf
			}
			switch align {
			case style.AlignStretch:
				h = lineHeight
			case style.AlignEnd:
				y = lineHeight - h
			case style.AlignCenter:
				y = (lineHeight - h) / 2
			}
			line.items = append(line.items, flexItem{node: it.node, x: x, w: widths[i], h: h, y: y})
			x += widths[i] + gap
		}
		line.height = lineHeight
		lines = append(lines, line)
	}
	return lines
}

func justifyOffsets(j style.JustifyContent, leftover float64, n int) (start, gap float64) {
	switch j {
	case style.JustifyEnd:
		return leftover, 0
	case style.JustifyCenter:
		return leftover / 2, 0
	case style.JustifySpaceBetween:
		if n > 1 {
			return 0, leftover / float64(n-1)
		}
		return 0, 0
	case style.JustifySpaceAround:
		g := leftover / float64(n)
		return g / 2, g
	case style.JustifySpaceEvenly:
		g := leftover / float64(n+1)
		return g, g
	default:
		return 0, 0
	}
}

func (f *FlexNode) Measure(env *Env, c geom.BoxConstraints) geom.Size {
	box := resolveBoxModel(f.style, c.MaxW)
	innerW := c.MaxW - box.PaddingLeft - box.PaddingRight - box.BorderLeft - box.BorderRight
	if innerW < 0 {
		innerW = 0
	}
	lines := f.computeLines(env, innerW)
	h := box.PaddingTop + box.PaddingBottom + box.BorderTop + box.BorderBottom
	for _, l := range lines {
		h += l.height
	}
	return c.Constrain(geom.Size{W: c.MaxW, H: h})
}

func (f *FlexNode) Layout(ctx *LayoutContext, c geom.BoxConstraints, resume *NodeState) (LayoutResult, error) {
	box := resolveBoxModel(f.style, ctx.Bounds.W)
	// A StateAtomic resume means the flex container as a whole was
	// deferred to a fresh page before any line was placed (its top
	// margin alone didn't fit); that is a fresh entry, not a
	// continuation from resume.LineNo, which only applies to a
	// StateFlex resume.
	atomicRestart := resume != nil && resume.Kind == StateAtomic
	firstFragment := resume == nil || atomicRestart
	startLine := 0
	var itemResume *NodeState
	blockStartY := ctx.CursorY

	if resume != nil && !atomicRestart {
		startLine = resume.LineNo
		itemResume = resume.ItemState
	} else {
		if ctx.PrepareForBlock(box.MarginTop) {
			return Break(&NodeState{Kind: StateAtomic}), nil
		}
		blockStartY = ctx.CursorY
		ctx.CursorY += box.PaddingTop + box.BorderTop
		if f.AnchorID != "" {
			ctx.RegisterAnchor(f.AnchorID)
		}
	}

	origBounds := ctx.Bounds
	ctx.Bounds = geom.Rect{
		X: origBounds.X + box.PaddingLeft + box.BorderLeft,
		Y: origBounds.Y,
		W: origBounds.W - box.PaddingLeft - box.PaddingRight - box.BorderLeft - box.BorderRight,
		H: origBounds.H,
	}

	lines := f.computeLines(ctx.Env, ctx.Bounds.W)

	for li := startLine; li < len(lines); li++ {
		line := lines[li]
		if itemResume == nil && line.height > ctx.AvailableHeight() && !ctx.IsEmpty() {
			ctx.Bounds = origBounds
			return Break(&NodeState{Kind: StateFlex, LineNo: li}), nil
		}

		startItem := 0
		if li == startLine && itemResume != nil {
			startItem = itemResume.ChildIndex
		}
		rowY := ctx.CursorY
		for ii := startItem; ii < len(line.items); ii++ {
			item := line.items[ii]
			var childResume *NodeState
			if li == startLine && ii == startItem && itemResume != nil {
				childResume = itemResume.Inner
			}
			rect := geom.Rect{X: ctx.Bounds.X + item.x, Y: ctx.Bounds.Y + rowY + item.y, W: item.w, H: item.h}
			itemCtx := ctx.Child(rect)
			res, err := item.node.Layout(itemCtx, geom.Tight(geom.Size{W: item.w, H: item.h}), childResume)
			if err != nil {
				ctx.Bounds = origBounds
				return LayoutResult{}, err
			}
			ctx.Elements = append(ctx.Elements, itemCtx.Elements...)
			if !res.IsFinished() {
				ctx.Bounds = origBounds
				return Break(&NodeState{Kind: StateFlex, LineNo: li, ItemState: &NodeState{Kind: StateBlock, ChildIndex: ii, Inner: res.State}}), nil
			}
		}
		itemResume = nil
		ctx.CursorY += line.height
	}

	ctx.Bounds = origBounds
	ctx.CursorY += box.PaddingBottom + box.BorderBottom
	fragRect := geom.Rect{X: origBounds.X, Y: origBounds.Y + blockStartY, W: origBounds.W, H: ctx.CursorY - blockStartY}
	elems := createBackgroundAndBorders(fragRect, f.style, firstFragment, true)
	ctx.Elements = append(elems, ctx.Elements...)
	ctx.FinishBlock(box.MarginBottom)
	return Finished(), nil
}
