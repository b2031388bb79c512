package rendertree

import (
	"github.com/sigmundgranaas/petty/internal/geom"
	"github.com/sigmundgranaas/petty/internal/style"
)

// defaultImageDimension is the intrinsic fallback used when neither a
// fixed size nor a percent is specified (spec.md §4.4).
const defaultImageDimension = 100.0

// ImageNode is a block-level image (spec.md §4.4's Image).
type ImageNode struct {
	base
	Src      string
	AnchorID string
}

// NewImageNode constructs an Image RenderNode.
func NewImageNode(cs *style.ComputedStyle, src, anchorID string) *ImageNode {
	return &ImageNode{base: base{style: cs}, Src: src, AnchorID: anchorID}
}

func (n *ImageNode) resolveSize(availableW float64) geom.Size {
	w, wSet := n.style.Width.Resolve(availableW)
	if !wSet {
		w = defaultImageDimension
	}
	h, hSet := n.style.Height.Resolve(availableW)
	if !hSet {
		h = w
	}
	return geom.Size{W: w, H: h}
}

// Measure returns the resolved intrinsic size.
func (n *ImageNode) Measure(env *Env, c geom.BoxConstraints) geom.Size {
	return c.Constrain(n.resolveSize(c.MaxW))
}

// Layout places the image, or breaks/skips it per spec.md §4.4: if it
// fits a fresh page but not the remaining space on a non-empty page,
// Break(Atomic); if it cannot fit any page at all, skip with a warning.
func (n *ImageNode) Layout(ctx *LayoutContext, c geom.BoxConstraints, resume *NodeState) (LayoutResult, error) {
	size := n.resolveSize(ctx.Bounds.W)

	if size.H > ctx.Bounds.H {
		if ctx.Env != nil {
			ctx.Env.warnOversized("image", n.Src)
		}
		return Finished(), nil
	}
	if size.H > ctx.AvailableHeight() && !ctx.IsEmpty() {
		return Break(&NodeState{Kind: StateAtomic}), nil
	}

	if ctx.PrepareForBlock(0) {
		return Break(&NodeState{Kind: StateAtomic}), nil
	}

	rect := geom.Rect{X: ctx.Bounds.X, Y: ctx.Bounds.Y + ctx.CursorY, W: size.W, H: size.H}
	ctx.PushElement(PositionedElement{Rect: rect, Kind: ElementImage, ImageSrc: n.Src})
	if n.AnchorID != "" {
		ctx.RegisterAnchor(n.AnchorID)
	}
	ctx.CursorY += size.H
	ctx.FinishBlock(0)
	return Finished(), nil
}
