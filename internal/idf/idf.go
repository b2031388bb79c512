// Package idf defines the Intermediate Document Format: the semantic
// block/inline tree produced by template execution, before styling or
// layout. Grounded directly on original_source/crates/idf/src/lib.rs.
package idf

import "github.com/sigmundgranaas/petty/internal/style"

// Kind tags the variant held by a Node, used for dispatch in the
// render-tree builder without reflection (spec.md §9: "avoid dynamic
// dispatch in hot paths").
type Kind int

const (
	KindRoot Kind = iota
	KindBlock
	KindParagraph
	KindHeading
	KindImage
	KindFlexContainer
	KindList
	KindListItem
	KindTable
	KindPageBreak
	KindIndexMarker
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindBlock:
		return "block"
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindImage:
		return "image"
	case KindFlexContainer:
		return "flex-container"
	case KindList:
		return "list"
	case KindListItem:
		return "list-item"
	case KindTable:
		return "table"
	case KindPageBreak:
		return "page-break"
	case KindIndexMarker:
		return "index-marker"
	default:
		return "unknown"
	}
}

// Metadata is the common per-node metadata: a stable id for anchors,
// the ordered list of named style sets, and an optional inline
// override (spec.md §3's NodeMetadata).
type Metadata struct {
	ID            string
	StyleSets     []string
	StyleOverride *style.ElementStyle
}

// Node is a block-level IDF node, modeled as a closed sum type: the
// Kind discriminates which fields are meaningful, mirroring
// crates/idf/src/lib.rs's IRNode enum without Go's lack of tagged
// unions forcing a pointer-heavy interface hierarchy.
type Node struct {
	Kind Kind
	Meta Metadata

	// Block, FlexContainer, List, ListItem, Root children.
	Children []*Node

	// Paragraph, Heading inline content.
	Inlines []InlineNode

	// Heading only.
	Level int

	// Image only.
	Src string

	// List only.
	Start *int

	// Table only.
	Columns []TableColumnDefinition
	Header  *TableHeader
	Body    *TableBody

	// PageBreak only.
	MasterName string

	// IndexMarker only.
	Term string
}

// InlineKind tags an InlineNode variant.
type InlineKind int

const (
	InlineText InlineKind = iota
	InlineStyledSpan
	InlineHyperlink
	InlinePageReference
	InlineImage
	InlineLineBreak
)

// InlineNode is an inline-level element inside a Paragraph or Heading
// (spec.md §3's InlineNode).
type InlineNode struct {
	IK   InlineKind
	Meta InlineMetadata

	Text string // InlineText

	Children []InlineNode // StyledSpan, Hyperlink, PageReference

	Href     string // Hyperlink
	TargetID string // PageReference

	Src string // InlineImage
}

// InlineMetadata mirrors spec.md §3's per-inline metadata (no id field,
// inline nodes are not anchor targets themselves).
type InlineMetadata struct {
	StyleSets     []string
	StyleOverride *style.ElementStyle
}

// TableColumnDefinition mirrors spec.md §3's table column definition.
type TableColumnDefinition struct {
	Width       *ColumnWidth
	Style       *style.ElementStyle
	HeaderStyle *style.ElementStyle
}

// ColumnWidthKind tags a table column's width specification.
type ColumnWidthKind int

const (
	ColWidthAuto ColumnWidthKind = iota
	ColWidthPt
	ColWidthPercent
)

// ColumnWidth is the Pt|Percent|Auto union for table columns.
type ColumnWidth struct {
	Kind  ColumnWidthKind
	Value float64
}

// TableHeader holds the repeated header rows of a table.
type TableHeader struct {
	Rows []TableRow
}

// TableBody holds the body rows of a table.
type TableBody struct {
	Rows []TableRow
}

// TableRow is one row of table cells.
type TableRow struct {
	Cells []TableCell
}

// TableCell is one cell: block-node children plus span counts.
type TableCell struct {
	StyleSets     []string
	StyleOverride *style.ElementStyle
	Children      []*Node
	ColSpan       int
	RowSpan       int
}

// NewBlock constructs a Block node with the given children.
func NewBlock(meta Metadata, children ...*Node) *Node {
	return &Node{Kind: KindBlock, Meta: meta, Children: children}
}

// NewParagraph constructs a Paragraph node with the given inline content.
func NewParagraph(meta Metadata, inlines ...InlineNode) *Node {
	return &Node{Kind: KindParagraph, Meta: meta, Inlines: inlines}
}

// NewRoot constructs the root of a document fragment.
func NewRoot(children ...*Node) *Node {
	return &Node{Kind: KindRoot, Children: children}
}

// Text constructs a plain text run.
func Text(s string) InlineNode {
	return InlineNode{IK: InlineText, Text: s}
}
