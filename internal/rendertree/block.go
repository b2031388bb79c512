package rendertree

import (
	"github.com/sigmundgranaas/petty/internal/geom"
	"github.com/sigmundgranaas/petty/internal/style"
)

// BlockNode is a generic block container (spec.md §4.4's Block).
type BlockNode struct {
	base
	Children []LayoutNode
	AnchorID string
}

// NewBlockNode constructs a Block RenderNode.
func NewBlockNode(cs *style.ComputedStyle, children []LayoutNode, anchorID string) *BlockNode {
	return &BlockNode{base: base{style: cs}, Children: children, AnchorID: anchorID}
}

// Measure returns the constrained width and the sum of children's
// intrinsic heights (a block never shrinks below its children).
func (b *BlockNode) Measure(env *Env, c geom.BoxConstraints) geom.Size {
	box := resolveBoxModel(b.style, c.MaxW)
	innerW := c.MaxW - box.PaddingLeft - box.PaddingRight - box.BorderLeft - box.BorderRight
	if innerW < 0 {
		innerW = 0
	}
	h := box.PaddingTop + box.PaddingBottom + box.BorderTop + box.BorderBottom
	childConstraints := geom.TightWidth(innerW)
	for _, child := range b.Children {
		s := child.Measure(env, childConstraints)
		h += s.H
	}
	return c.Constrain(geom.Size{W: c.MaxW, H: h})
}

// Layout applies the top margin, lays out children in order advancing
// cursor_y, and wraps any child Break as BlockState; on resume it skips
// fully completed children and resumes the one named in Inner (spec.md
// §4.4). Background/borders draw after content, gated by
// draw_top/draw_bottom per fragment.
func (b *BlockNode) Layout(ctx *LayoutContext, c geom.BoxConstraints, resume *NodeState) (LayoutResult, error) {
	return layoutSequentialChildren(ctx, c, b.style, b.Children, resume, StateBlock, b.AnchorID)
}
