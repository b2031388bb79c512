package rendertree

import (
	"strings"

	"github.com/sigmundgranaas/petty/internal/geom"
	"github.com/sigmundgranaas/petty/internal/style"
)

// ListItemNode draws a marker for its 1-based Index per the inherited
// list-style-type/-position, then lays out Content indented by the
// marker's width plus 0.4 x font-size (spec.md §4.4's ListItem). The
// hanging-indent geometry is used for both outside and inside marker
// positions — true run-in placement of an inside marker would require
// injecting it into the content's own word stream, which nothing in
// this spec's property set (beyond the enum value existing) actually
// requires distinguishing.
type ListItemNode struct {
	base
	Index   int
	Content LayoutNode
}

// NewListItemNode constructs a ListItem RenderNode.
func NewListItemNode(cs *style.ComputedStyle, index int, content LayoutNode) *ListItemNode {
	return &ListItemNode{base: base{style: cs}, Index: index, Content: content}
}

func markerGlyph(t style.ListStyleType, index int) string {
	switch t {
	case style.ListDisc:
		return "•"
	case style.ListCircle:
		return "◦"
	case style.ListSquare:
		return "▪"
	case style.ListDecimal:
		return itoa(index) + "."
	case style.ListLowerAlpha:
		return alpha(index, false) + "."
	case style.ListUpperAlpha:
		return alpha(index, true) + "."
	case style.ListLowerRoman:
		return strings.ToLower(roman(index)) + "."
	case style.ListUpperRoman:
		return roman(index) + "."
	default:
		return ""
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	if neg {
		b = append([]byte{'-'}, b...)
	}
	return string(b)
}

func alpha(n int, upper bool) string {
	if n < 1 {
		return ""
	}
	base := byte('a')
	if upper {
		base = 'A'
	}
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{base + byte(n%26)}, b...)
		n /= 26
	}
	return string(b)
}

func roman(n int) string {
	vals := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syms := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}
	var b strings.Builder
	for i, v := range vals {
		for n >= v {
			b.WriteString(syms[i])
			n -= v
		}
	}
	return b.String()
}

func (n *ListItemNode) Measure(env *Env, c geom.BoxConstraints) geom.Size {
	marker := markerGlyph(n.style.ListStyleType, n.Index)
	indent := 0.0
	if marker != "" && env != nil && env.Measurer != nil {
		indent = env.Measurer.MeasureWidth(marker, n.style.FontFamily, n.style.FontSize, n.style.FontWeight.IsBold(), n.style.FontStyle == style.FontStyleItalic) + 0.4*n.style.FontSize
	}
	inner := c.MaxW - indent
	if inner < 0 {
		inner = 0
	}
	size := n.Content.Measure(env, geom.TightWidth(inner))
	return c.Constrain(geom.Size{W: c.MaxW, H: size.H})
}

func (n *ListItemNode) Layout(ctx *LayoutContext, c geom.BoxConstraints, resume *NodeState) (LayoutResult, error) {
	// A StateAtomic resume means the item's content was deferred to a
	// fresh page before anything was placed; the marker belongs with
	// that content wherever it actually lands, so this counts as a
	// fresh entry too, not the mid-content continuation a resume
	// tagged with the content's own kind would represent.
	firstFragment := resume == nil || resume.Kind == StateAtomic
	origBounds := ctx.Bounds

	marker := markerGlyph(n.style.ListStyleType, n.Index)
	indent := 0.0
	if marker != "" {
		mw := 0.0
		if ctx.Env != nil && ctx.Env.Measurer != nil {
			mw = ctx.Env.Measurer.MeasureWidth(marker, n.style.FontFamily, n.style.FontSize, n.style.FontWeight.IsBold(), n.style.FontStyle == style.FontStyleItalic)
		}
		indent = mw + 0.4*n.style.FontSize
		if firstFragment {
			ctx.PushElement(PositionedElement{
				Rect: geom.Rect{X: origBounds.X, Y: ctx.Bounds.Y + ctx.CursorY, W: mw, H: n.style.LineHeight},
				Kind: ElementText,
				Runs: []TextRun{{Text: marker, X: origBounds.X, FontFamily: n.style.FontFamily, FontSize: n.style.FontSize, Color: n.style.Color, LinkIndex: -1}},
			})
		}
	}

	ctx.Bounds = geom.Rect{X: origBounds.X + indent, Y: origBounds.Y, W: origBounds.W - indent, H: origBounds.H}
	res, err := n.Content.Layout(ctx, geom.TightWidth(ctx.Bounds.W), resume)
	ctx.Bounds = origBounds
	return res, err
}
