package text

import (
	"github.com/sigmundgranaas/petty/internal/arena"
	"github.com/sigmundgranaas/petty/internal/idf"
	"github.com/sigmundgranaas/petty/internal/style"
)

// Flatten walks a Paragraph/Heading's inline children and produces a
// linear span sequence plus the hyperlink targets they reference,
// adapted from original_source/crates/layout/src/text/builder.rs's
// flatten_inlines. Each inline node's own style is computed against
// parent via eng, so a StyledSpan or Hyperlink nested arbitrarily deep
// still cascades correctly.
func Flatten(inlines []idf.InlineNode, eng *style.Engine, ar *arena.Arena, parent style.ComputedStyle) ([]Span, []LinkTarget) {
	var spans []Span
	var links []LinkTarget
	flattenInto(inlines, eng, ar, parent, -1, &spans, &links)
	return mergeAdjacent(spans), links
}

func flattenInto(nodes []idf.InlineNode, eng *style.Engine, ar *arena.Arena, parentStyle style.ComputedStyle, linkIdx int, spansOut *[]Span, linksOut *[]LinkTarget) {
	for _, n := range nodes {
		switch n.IK {
		case idf.InlineText:
			cs := eng.Compute(n.Meta.StyleSets, n.Meta.StyleOverride, parentStyle)
			*spansOut = append(*spansOut, Span{
				Text:      n.Text,
				Style:     ar.InternStyle(cs),
				LinkIndex: linkIdx,
			})

		case idf.InlineStyledSpan:
			cs := eng.Compute(n.Meta.StyleSets, n.Meta.StyleOverride, parentStyle)
			flattenInto(n.Children, eng, ar, cs, linkIdx, spansOut, linksOut)

		case idf.InlineHyperlink:
			cs := eng.Compute(n.Meta.StyleSets, n.Meta.StyleOverride, parentStyle)
			*linksOut = append(*linksOut, LinkTarget{ExternalURI: n.Href})
			flattenInto(n.Children, eng, ar, cs, len(*linksOut)-1, spansOut, linksOut)

		case idf.InlinePageReference:
			cs := eng.Compute(n.Meta.StyleSets, n.Meta.StyleOverride, parentStyle)
			*linksOut = append(*linksOut, LinkTarget{TargetID: n.TargetID})
			flattenInto(n.Children, eng, ar, cs, len(*linksOut)-1, spansOut, linksOut)

		case idf.InlineImage:
			cs := eng.Compute(n.Meta.StyleSets, n.Meta.StyleOverride, parentStyle)
			*spansOut = append(*spansOut, Span{
				Text:      "￼", // object replacement character; one breakable unit
				Style:     ar.InternStyle(cs),
				LinkIndex: linkIdx,
				IsImage:   true,
				ImageSrc:  n.Src,
			})

		case idf.InlineLineBreak:
			*spansOut = append(*spansOut, Span{
				Text:      "\n",
				Style:     ar.InternStyle(parentStyle),
				LinkIndex: linkIdx,
			})
		}
	}
}

// mergeAdjacent coalesces neighboring non-image spans that share both
// interned style (by pointer) and link index, so the shaper does not
// produce spurious run boundaries at, e.g., nested-but-identical
// StyledSpan seams.
func mergeAdjacent(spans []Span) []Span {
	if len(spans) == 0 {
		return spans
	}
	out := spans[:1]
	for _, s := range spans[1:] {
		last := &out[len(out)-1]
		if !s.IsImage && !last.IsImage && last.Style == s.Style && last.LinkIndex == s.LinkIndex {
			last.Text += s.Text
			continue
		}
		out = append(out, s)
	}
	return out
}
