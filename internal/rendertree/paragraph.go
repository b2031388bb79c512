package rendertree

import (
	"github.com/sigmundgranaas/petty/internal/geom"
	"github.com/sigmundgranaas/petty/internal/rendertree/text"
	"github.com/sigmundgranaas/petty/internal/style"
)

// ParagraphNode lays out flattened, shaped inline content as a
// sequence of lines (spec.md §4.5's Paragraph). Heading embeds one to
// reuse its line-breaking.
type ParagraphNode struct {
	base
	Spans    []text.Span
	Links    []text.LinkTarget
	AnchorID string
}

// NewParagraphNode constructs a Paragraph RenderNode from inline
// content already flattened (and style-cascaded) by the tree builder.
func NewParagraphNode(cs *style.ComputedStyle, spans []text.Span, links []text.LinkTarget, anchorID string) *ParagraphNode {
	return &ParagraphNode{base: base{style: cs}, Spans: spans, Links: links, AnchorID: anchorID}
}

func (n *ParagraphNode) lines(env *Env, width float64) []text.Line {
	words := text.Shape(n.Spans, env.Measurer)
	return text.BreakLines(words, width)
}

// Measure returns the width-constrained box and the height implied by
// breaking at that width (pessimistic but exact for a fixed width).
func (n *ParagraphNode) Measure(env *Env, c geom.BoxConstraints) geom.Size {
	box := resolveBoxModel(n.style, c.MaxW)
	innerW := c.MaxW - box.PaddingLeft - box.PaddingRight - box.BorderLeft - box.BorderRight
	if innerW < 0 {
		innerW = 0
	}
	lines := n.lines(env, innerW)
	h := box.PaddingTop + box.PaddingBottom + box.BorderTop + box.BorderBottom + float64(len(lines))*n.style.LineHeight
	return c.Constrain(geom.Size{W: c.MaxW, H: h})
}

// Layout emits lines from resume.LineIndex (or 0) onward, breaking the
// page when the remaining lines no longer fit, honoring the
// widows/orphans policy (spec.md §4.5 steps 1-5).
func (n *ParagraphNode) Layout(ctx *LayoutContext, c geom.BoxConstraints, resume *NodeState) (LayoutResult, error) {
	box := resolveBoxModel(n.style, ctx.Bounds.W)
	innerX := ctx.Bounds.X + box.PaddingLeft + box.BorderLeft
	innerW := ctx.Bounds.W - box.PaddingLeft - box.PaddingRight - box.BorderLeft - box.BorderRight
	if innerW < 0 {
		innerW = 0
	}
	lines := n.lines(ctx.Env, innerW)

	startLine := 0
	// A StateAtomic resume means the paragraph as a whole was deferred
	// to a fresh page before any line was placed (its top margin alone
	// didn't fit); that is a fresh entry, not a continuation from
	// resume.LineIndex, which only applies to a StateParagraph resume.
	atomicRestart := resume != nil && resume.Kind == StateAtomic
	firstFragment := resume == nil || atomicRestart
	if resume != nil && !atomicRestart {
		startLine = resume.LineIndex
	}

	fragStartY := ctx.CursorY
	if firstFragment {
		if ctx.PrepareForBlock(box.MarginTop) {
			return Break(&NodeState{Kind: StateAtomic}), nil
		}
		fragStartY = ctx.CursorY
		ctx.CursorY += box.PaddingTop + box.BorderTop
		if n.AnchorID != "" {
			ctx.RegisterAnchor(n.AnchorID)
		}
	}

	if startLine >= len(lines) {
		return Finished(), nil
	}

	fitLines := 0
	probe := ctx.CursorY
	for i := startLine; i < len(lines); i++ {
		if probe+n.style.LineHeight > ctx.Bounds.H {
			break
		}
		probe += n.style.LineHeight
		fitLines++
	}
	totalRemaining := len(lines) - startLine

	place := fitLines
	if fitLines < totalRemaining {
		place = text.ChooseBreakLine(totalRemaining, fitLines, n.style.Widows, n.style.Orphans, ctx.IsEmpty())
	}

	if place == 0 && !ctx.IsEmpty() {
		return Break(&NodeState{Kind: StateParagraph, LineIndex: startLine}), nil
	}

	for i := startLine; i < startLine+place; i++ {
		n.placeLine(ctx, lines[i], innerX, innerW, ctx.CursorY, i == len(lines)-1)
		ctx.CursorY += n.style.LineHeight
	}

	if startLine+place < len(lines) {
		return Break(&NodeState{Kind: StateParagraph, LineIndex: startLine + place}), nil
	}

	ctx.CursorY += box.PaddingBottom + box.BorderBottom
	fragRect := geom.Rect{X: ctx.Bounds.X, Y: fragStartY, W: ctx.Bounds.W, H: ctx.CursorY - fragStartY}
	elems := createBackgroundAndBorders(fragRect, n.style, firstFragment, true)
	ctx.Elements = append(elems, ctx.Elements...)
	ctx.FinishBlock(box.MarginBottom)
	return Finished(), nil
}

func (n *ParagraphNode) placeLine(ctx *LayoutContext, line text.Line, x, availableW, y float64, isLastLine bool) {
	startX := x
	switch n.style.TextAlign {
	case style.AlignCenterText:
		startX += (availableW - line.Width) / 2
	case style.AlignRight:
		startX += availableW - line.Width
	}

	gaps := 0
	for i := 0; i < len(line.Words)-1; i++ {
		if line.Words[i].SpaceAfter {
			gaps++
		}
	}
	justify := n.style.TextAlign == style.AlignJustify && !isLastLine && !line.HardBreak && gaps > 0
	extraPerGap := 0.0
	if justify {
		extraPerGap = (availableW - line.Width) / float64(gaps)
	}

	var runs []TextRun
	var cur *TextRun
	cx := startX
	linkStart := 0.0
	prevLink := -1

	flushRun := func() {
		if cur != nil {
			runs = append(runs, *cur)
			cur = nil
		}
	}
	flushLink := func(endX float64) {
		if prevLink < 0 || prevLink >= len(n.Links) {
			return
		}
		tgt := n.Links[prevLink]
		ctx.PushElement(PositionedElement{
			Rect: geom.Rect{X: linkStart, Y: y, W: endX - linkStart, H: n.style.LineHeight},
			Kind: ElementLink,
			Link: LinkPayload{TargetID: tgt.TargetID, ExternalURI: tgt.ExternalURI},
		})
	}

	for i, w := range line.Words {
		if w.LinkIndex != prevLink {
			flushLink(cx)
			prevLink = w.LinkIndex
			linkStart = cx
		}

		if w.IsImage {
			flushRun()
			ctx.PushElement(PositionedElement{
				Rect: geom.Rect{X: cx, Y: y, W: w.Width, H: n.style.LineHeight},
				Kind: ElementImage,
				ImageSrc: w.ImageSrc,
			})
			cx += w.Width
			if w.SpaceAfter && i < len(line.Words)-1 {
				cx += w.Style.FontSize*0.25 + extraPerGap
			}
			continue
		}

		bold := w.Style.FontWeight.IsBold()
		italic := w.Style.FontStyle == style.FontStyleItalic
		// Justified lines never coalesce words into one run: each
		// inter-word gap gets its own widened advance via X, which a
		// merged run's literal " " glyph could not reproduce.
		if !justify && cur != nil && cur.FontFamily == w.Style.FontFamily && cur.FontSize == w.Style.FontSize &&
			cur.Bold == bold && cur.Italic == italic && cur.Color == w.Style.Color && cur.LinkIndex == w.LinkIndex {
			cur.Text += " " + w.Text
		} else {
			flushRun()
			cur = &TextRun{
				Text: w.Text, X: cx, FontFamily: w.Style.FontFamily, FontSize: w.Style.FontSize,
				Bold: bold, Italic: italic, Color: w.Style.Color, LinkIndex: w.LinkIndex,
			}
		}
		cx += w.Width
		if w.SpaceAfter && i < len(line.Words)-1 {
			cx += w.Style.FontSize*0.25 + extraPerGap
		}
	}
	flushRun()
	flushLink(cx)

	if len(runs) > 0 {
		ctx.PushElement(PositionedElement{
			Rect: geom.Rect{X: startX, Y: y, W: line.Width, H: n.style.LineHeight},
			Kind: ElementText,
			Runs: runs,
		})
	}
}
