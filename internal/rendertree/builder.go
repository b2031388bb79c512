package rendertree

import (
	"github.com/sigmundgranaas/petty/internal/arena"
	"github.com/sigmundgranaas/petty/internal/idf"
	"github.com/sigmundgranaas/petty/internal/rendertree/text"
	"github.com/sigmundgranaas/petty/internal/style"
)

// Build walks one IDF node and its descendants, applying the style
// cascade at each level, and returns the equivalent RenderNode tree
// (spec.md §4.2's "IDF + Stylesheet -> RenderNode tree" build phase).
// parent is the inherited ComputedStyle flowing down from the node's
// container; callers building a whole document pass style.Default().
func Build(node *idf.Node, eng *style.Engine, ar *arena.Arena, parent style.ComputedStyle) LayoutNode {
	switch node.Kind {
	case idf.KindRoot:
		cs := eng.Compute(nil, nil, parent)
		return NewBlockNode(ar.InternStyle(cs), buildChildren(node.Children, eng, ar, cs), "")

	case idf.KindBlock:
		cs := eng.Compute(node.Meta.StyleSets, node.Meta.StyleOverride, parent)
		return NewBlockNode(ar.InternStyle(cs), buildChildren(node.Children, eng, ar, cs), node.Meta.ID)

	case idf.KindParagraph:
		cs := eng.Compute(node.Meta.StyleSets, node.Meta.StyleOverride, parent)
		spans, links := text.Flatten(node.Inlines, eng, ar, cs)
		return NewParagraphNode(ar.InternStyle(cs), spans, links, node.Meta.ID)

	case idf.KindHeading:
		cs := eng.Compute(node.Meta.StyleSets, node.Meta.StyleOverride, parent)
		spans, links := text.Flatten(node.Inlines, eng, ar, cs)
		return NewHeadingNode(ar.InternStyle(cs), node.Level, spans, links, node.Meta.ID)

	case idf.KindImage:
		cs := eng.Compute(node.Meta.StyleSets, node.Meta.StyleOverride, parent)
		return NewImageNode(ar.InternStyle(cs), node.Src, node.Meta.ID)

	case idf.KindFlexContainer:
		cs := eng.Compute(node.Meta.StyleSets, node.Meta.StyleOverride, parent)
		return NewFlexNode(ar.InternStyle(cs), buildChildren(node.Children, eng, ar, cs), node.Meta.ID)

	case idf.KindList:
		cs := eng.Compute(node.Meta.StyleSets, node.Meta.StyleOverride, parent)
		start := 1
		if node.Start != nil {
			start = *node.Start
		}
		items := make([]LayoutNode, 0, len(node.Children))
		for i, child := range node.Children {
			items = append(items, buildListItem(child, eng, ar, cs, start+i))
		}
		return NewListNode(ar.InternStyle(cs), items, node.Meta.ID)

	case idf.KindListItem:
		return buildListItem(node, eng, ar, parent, 1)

	case idf.KindTable:
		cs := eng.Compute(node.Meta.StyleSets, node.Meta.StyleOverride, parent)
		columns := make([]TableColumn, len(node.Columns))
		for i, c := range node.Columns {
			columns[i] = TableColumn{Width: columnWidthToDimension(c.Width)}
		}
		var header, body []TableRow
		if node.Header != nil {
			for _, r := range node.Header.Rows {
				header = append(header, buildTableRow(r, node.Columns, eng, ar, cs, true))
			}
		}
		if node.Body != nil {
			for _, r := range node.Body.Rows {
				body = append(body, buildTableRow(r, node.Columns, eng, ar, cs, false))
			}
		}
		return NewTableNode(ar.InternStyle(cs), columns, header, body, node.Meta.ID)

	case idf.KindPageBreak:
		return NewPageBreakNode(node.MasterName)

	case idf.KindIndexMarker:
		return NewIndexMarkerNode(node.Term)

	default:
		cs := eng.Compute(node.Meta.StyleSets, node.Meta.StyleOverride, parent)
		return NewBlockNode(ar.InternStyle(cs), buildChildren(node.Children, eng, ar, cs), node.Meta.ID)
	}
}

func buildChildren(nodes []*idf.Node, eng *style.Engine, ar *arena.Arena, parent style.ComputedStyle) []LayoutNode {
	out := make([]LayoutNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Build(n, eng, ar, parent))
	}
	return out
}

func buildListItem(node *idf.Node, eng *style.Engine, ar *arena.Arena, parent style.ComputedStyle, index int) *ListItemNode {
	cs := eng.Compute(node.Meta.StyleSets, node.Meta.StyleOverride, parent)
	interned := ar.InternStyle(cs)
	content := NewBlockNode(interned, buildChildren(node.Children, eng, ar, cs), node.Meta.ID)
	return NewListItemNode(interned, index, content)
}

func columnWidthToDimension(w *idf.ColumnWidth) style.Dimension {
	if w == nil {
		return style.Auto
	}
	switch w.Kind {
	case idf.ColWidthPt:
		return style.Pt(w.Value)
	case idf.ColWidthPercent:
		return style.Percent(w.Value)
	default:
		return style.Auto
	}
}

func buildTableRow(row idf.TableRow, columns []idf.TableColumnDefinition, eng *style.Engine, ar *arena.Arena, parent style.ComputedStyle, isHeader bool) TableRow {
	cells := make([]TableCell, 0, len(row.Cells))
	col := 0
	for _, c := range row.Cells {
		base := parent
		if col < len(columns) {
			var colOverride *style.ElementStyle
			if isHeader {
				colOverride = columns[col].HeaderStyle
			} else {
				colOverride = columns[col].Style
			}
			if colOverride != nil {
				base = eng.Compute(nil, colOverride, parent)
			}
		}
		cs := eng.Compute(c.StyleSets, c.StyleOverride, base)
		interned := ar.InternStyle(cs)
		content := NewBlockNode(interned, buildChildren(c.Children, eng, ar, cs), "")
		span := c.ColSpan
		if span < 1 {
			span = 1
		}
		cells = append(cells, TableCell{Content: content, ColSpan: span, RowSpan: c.RowSpan})
		col += span
	}
	return TableRow{Cells: cells}
}
