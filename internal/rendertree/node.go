// Package rendertree implements the RenderNode framework: the typed,
// arena-backed tree built from the IDF plus its computed styles, and
// the measure/layout contract each kind implements (spec.md §4.4).
package rendertree

import (
	"github.com/sigmundgranaas/petty/internal/geom"
	"github.com/sigmundgranaas/petty/internal/style"
)

// LayoutNode is the per-kind contract every RenderNode implements
// (spec.md §4.4). Measure is side-effect-free; Layout may mutate ctx
// and return a Break token to be resumed on the next page.
type LayoutNode interface {
	// Style returns the node's interned computed style.
	Style() *style.ComputedStyle

	// Measure returns an intrinsic size given constraints. Free to be
	// pessimistic (an upper bound) for Auto-sized content; must be
	// exact for fixed sizes.
	Measure(env *Env, c geom.BoxConstraints) geom.Size

	// Layout renders into ctx, optionally resuming from a prior Break.
	Layout(ctx *LayoutContext, c geom.BoxConstraints, resume *NodeState) (LayoutResult, error)
}

// base is embedded by every concrete node to carry the interned style
// common to all kinds.
type base struct {
	style *style.ComputedStyle
}

func (b *base) Style() *style.ComputedStyle { return b.style }
