package rendertree

import (
	"github.com/sigmundgranaas/petty/internal/geom"
	"github.com/sigmundgranaas/petty/internal/style"
)

// ListNode lays out its ListItem children in order (spec.md §4.4's
// List); resumption is identical in shape to Block's, sharing
// layoutSequentialChildren, tagged StateList so a resuming paginator
// can tell the two apart if it ever needs to.
type ListNode struct {
	base
	Items    []LayoutNode
	AnchorID string
}

// NewListNode constructs a List RenderNode. items must already be
// *ListItemNode values built with their 1-based index assigned.
func NewListNode(cs *style.ComputedStyle, items []LayoutNode, anchorID string) *ListNode {
	return &ListNode{base: base{style: cs}, Items: items, AnchorID: anchorID}
}

func (l *ListNode) Measure(env *Env, c geom.BoxConstraints) geom.Size {
	box := resolveBoxModel(l.style, c.MaxW)
	innerW := c.MaxW - box.PaddingLeft - box.PaddingRight - box.BorderLeft - box.BorderRight
	if innerW < 0 {
		innerW = 0
	}
	h := box.PaddingTop + box.PaddingBottom + box.BorderTop + box.BorderBottom
	childConstraints := geom.TightWidth(innerW)
	for _, item := range l.Items {
		h += item.Measure(env, childConstraints).H
	}
	return c.Constrain(geom.Size{W: c.MaxW, H: h})
}

func (l *ListNode) Layout(ctx *LayoutContext, c geom.BoxConstraints, resume *NodeState) (LayoutResult, error) {
	return layoutSequentialChildren(ctx, c, l.style, l.Items, resume, StateList, l.AnchorID)
}
