package rendertree

import (
	"github.com/sigmundgranaas/petty/internal/geom"
	"github.com/sigmundgranaas/petty/internal/style"
)

// PageBreakNode is a hard page break (spec.md §4.4's PageBreak).
type PageBreakNode struct {
	base
	MasterName string
}

// NewPageBreakNode constructs a PageBreak RenderNode. masterName
// selects the page master for the page that follows; empty keeps the
// current master.
func NewPageBreakNode(masterName string) *PageBreakNode {
	return &PageBreakNode{base: base{style: nil}, MasterName: masterName}
}

// Style returns nil; PageBreak carries no visual style.
func (n *PageBreakNode) Style() *style.ComputedStyle { return nil }

// Measure contributes no intrinsic size.
func (n *PageBreakNode) Measure(env *Env, c geom.BoxConstraints) geom.Size {
	return geom.Size{}
}

// Layout always returns Break(Atomic) if the current page is
// non-empty; otherwise Finished, suppressing a leading blank page
// unless explicitly requested (spec.md §4.4).
func (n *PageBreakNode) Layout(ctx *LayoutContext, c geom.BoxConstraints, resume *NodeState) (LayoutResult, error) {
	if resume != nil {
		// The driver already turned the page for us; nothing left to do.
		return Finished(), nil
	}
	if ctx.IsEmpty() {
		return Finished(), nil
	}
	return Break(&NodeState{Kind: StateAtomic, NextMaster: n.MasterName}), nil
}
