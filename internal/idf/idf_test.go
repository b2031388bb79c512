package idf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBlockAndParagraphConstructors(t *testing.T) {
	para := NewParagraph(Metadata{ID: "p1"}, Text("hello"))
	assert.Equal(t, KindParagraph, para.Kind)
	assert.Equal(t, "p1", para.Meta.ID)
	assert.Equal(t, "hello", para.Inlines[0].Text)

	block := NewBlock(Metadata{ID: "b1"}, para)
	assert.Equal(t, KindBlock, block.Kind)
	assert.Len(t, block.Children, 1)
	assert.Same(t, para, block.Children[0])
}

func TestNewRootWrapsChildrenWithoutOwnMetadata(t *testing.T) {
	child := NewBlock(Metadata{})
	root := NewRoot(child)
	assert.Equal(t, KindRoot, root.Kind)
	assert.Len(t, root.Children, 1)
}

func TestKindStringCoversEveryVariant(t *testing.T) {
	cases := map[Kind]string{
		KindRoot:          "root",
		KindBlock:         "block",
		KindParagraph:     "paragraph",
		KindHeading:       "heading",
		KindImage:         "image",
		KindFlexContainer: "flex-container",
		KindList:          "list",
		KindListItem:      "list-item",
		KindTable:         "table",
		KindPageBreak:     "page-break",
		KindIndexMarker:   "index-marker",
	}
	for k, want := range cases {
		assert.Equal(t, want, k.String())
	}
	assert.Equal(t, "unknown", Kind(999).String())
}

func TestTextConstructsPlainInlineRun(t *testing.T) {
	in := Text("hi")
	assert.Equal(t, InlineText, in.IK)
	assert.Equal(t, "hi", in.Text)
}
