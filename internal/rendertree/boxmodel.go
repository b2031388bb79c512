package rendertree

import (
	"github.com/sigmundgranaas/petty/internal/geom"
	"github.com/sigmundgranaas/petty/internal/style"
)

// resolvedBox is the box-model measurements of a node once its
// ComputedStyle dimensions are resolved against a containing width,
// adapted from the teacher's internal/layout/block.go box-model
// fields (now computed from style.Dimension rather than raw CSS
// strings).
type resolvedBox struct {
	MarginTop, MarginRight, MarginBottom, MarginLeft     float64
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft float64
	BorderTop, BorderRight, BorderBottom, BorderLeft     float64
}

func resolveDim(d style.Dimension, relativeTo float64) float64 {
	v, ok := d.Resolve(relativeTo)
	if !ok {
		return 0
	}
	return v
}

// resolveBoxModel computes margin/padding/border widths relative to
// the containing width.
func resolveBoxModel(cs *style.ComputedStyle, containingWidth float64) resolvedBox {
	return resolvedBox{
		MarginTop:    resolveDim(cs.MarginTop, containingWidth),
		MarginRight:  resolveDim(cs.MarginRight, containingWidth),
		MarginBottom: resolveDim(cs.MarginBottom, containingWidth),
		MarginLeft:   resolveDim(cs.MarginLeft, containingWidth),

		PaddingTop:    resolveDim(cs.PaddingTop, containingWidth),
		PaddingRight:  resolveDim(cs.PaddingRight, containingWidth),
		PaddingBottom: resolveDim(cs.PaddingBottom, containingWidth),
		PaddingLeft:   resolveDim(cs.PaddingLeft, containingWidth),

		BorderTop:    cs.BorderTop.Width,
		BorderRight:  cs.BorderRight.Width,
		BorderBottom: cs.BorderBottom.Width,
		BorderLeft:   cs.BorderLeft.Width,
	}
}

// createBackgroundAndBorders produces the drawing primitives for a
// block's background fill and borders, adapted directly from
// original_source/crates/layout/src/painting/box_painter.rs:
// draw_top/draw_bottom gate whether the top/bottom border strokes are
// emitted for this fragment (only the first fragment draws the top
// border, only the last draws the bottom), so a node fragmented across
// pages does not draw a border in the middle of its content.
func createBackgroundAndBorders(rect geom.Rect, cs *style.ComputedStyle, drawTop, drawBottom bool) []PositionedElement {
	var out []PositionedElement
	if cs.BackgroundColor != "" {
		out = append(out, PositionedElement{
			Rect: rect,
			Kind: ElementRectangle,
			Rectangle: RectanglePayload{
				Fill: cs.BackgroundColor,
			},
		})
	}
	addBorder := func(side string, width float64, color string) {
		if width <= 0 {
			return
		}
		var r geom.Rect
		switch side {
		case "top":
			if !drawTop {
				return
			}
			r = geom.Rect{X: rect.X, Y: rect.Y, W: rect.W, H: width}
		case "bottom":
			if !drawBottom {
				return
			}
			r = geom.Rect{X: rect.X, Y: rect.Y + rect.H - width, W: rect.W, H: width}
		case "left":
			r = geom.Rect{X: rect.X, Y: rect.Y, W: width, H: rect.H}
		case "right":
			r = geom.Rect{X: rect.X + rect.W - width, Y: rect.Y, W: width, H: rect.H}
		}
		out = append(out, PositionedElement{
			Rect: r,
			Kind: ElementRectangle,
			Rectangle: RectanglePayload{
				BorderColor: color,
				BorderWidth: width,
			},
		})
	}
	addBorder("top", cs.BorderTop.Width, cs.BorderTop.Color)
	addBorder("right", cs.BorderRight.Width, cs.BorderRight.Color)
	addBorder("bottom", cs.BorderBottom.Width, cs.BorderBottom.Color)
	addBorder("left", cs.BorderLeft.Width, cs.BorderLeft.Color)
	return out
}
