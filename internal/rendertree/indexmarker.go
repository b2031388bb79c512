package rendertree

import (
	"github.com/sigmundgranaas/petty/internal/geom"
	"github.com/sigmundgranaas/petty/internal/style"
)

// IndexMarkerNode records an index entry with no visual output
// (spec.md §4.4's IndexMarker).
type IndexMarkerNode struct {
	Term string
}

// NewIndexMarkerNode constructs an IndexMarker RenderNode.
func NewIndexMarkerNode(term string) *IndexMarkerNode {
	return &IndexMarkerNode{Term: term}
}

// Style returns nil; IndexMarker carries no visual style.
func (n *IndexMarkerNode) Style() *style.ComputedStyle { return nil }

// Measure contributes no intrinsic size.
func (n *IndexMarkerNode) Measure(env *Env, c geom.BoxConstraints) geom.Size {
	return geom.Size{}
}

// Layout records the index entry and finishes immediately.
func (n *IndexMarkerNode) Layout(ctx *LayoutContext, c geom.BoxConstraints, resume *NodeState) (LayoutResult, error) {
	ctx.RecordIndex(n.Term)
	return Finished(), nil
}
