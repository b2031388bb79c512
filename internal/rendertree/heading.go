package rendertree

import (
	"strings"

	"github.com/sigmundgranaas/petty/internal/geom"
	"github.com/sigmundgranaas/petty/internal/rendertree/text"
	"github.com/sigmundgranaas/petty/internal/style"
)

// HeadingNode is a Paragraph that also registers an anchor and an
// outline entry (spec.md §4.4's Heading: "like Paragraph plus
// register_anchor(id) and a heading table entry (level, text,
// page_index)").
type HeadingNode struct {
	*ParagraphNode
	Level int
}

// NewHeadingNode constructs a Heading RenderNode.
func NewHeadingNode(cs *style.ComputedStyle, level int, spans []text.Span, links []text.LinkTarget, anchorID string) *HeadingNode {
	return &HeadingNode{ParagraphNode: NewParagraphNode(cs, spans, links, anchorID), Level: level}
}

func (n *HeadingNode) plainText() string {
	var b strings.Builder
	for _, s := range n.Spans {
		if !s.IsImage {
			b.WriteString(s.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

// Layout defers to ParagraphNode.Layout, then records the outline
// entry once the heading's first fragment has placed its first line
// (so the recorded page_index matches where the heading visually
// starts). A StateAtomic resume (the whole heading deferred to a fresh
// page before any line was placed) counts as a fresh entry, same as a
// nil resume — but if this very call defers again with StateAtomic,
// nothing was placed yet and the recording waits for the retry that
// actually lands the heading.
func (n *HeadingNode) Layout(ctx *LayoutContext, c geom.BoxConstraints, resume *NodeState) (LayoutResult, error) {
	firstFragment := resume == nil || resume.Kind == StateAtomic
	res, err := n.ParagraphNode.Layout(ctx, c, resume)
	if err != nil {
		return res, err
	}
	deferredWhole := !res.IsFinished() && res.State != nil && res.State.Kind == StateAtomic
	if firstFragment && !deferredWhole {
		ctx.RecordHeading(n.Level, n.plainText())
	}
	return res, nil
}
