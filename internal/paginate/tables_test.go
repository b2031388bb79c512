package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAnchorIgnoresEmptyID(t *testing.T) {
	tbl := NewTables()
	tbl.RegisterAnchor("", 3, 10)
	assert.Empty(t, tbl.Anchors)
}

func TestResolvePageReferenceReturnsOneBasedPage(t *testing.T) {
	tbl := NewTables()
	tbl.RegisterAnchor("chapter-2", 4, 0)

	page, ok := tbl.ResolvePageReference("chapter-2")
	assert.True(t, ok)
	assert.Equal(t, 5, page)

	_, ok = tbl.ResolvePageReference("missing")
	assert.False(t, ok)
}

func TestRecordIndexDeduplicatesConsecutiveSamePage(t *testing.T) {
	tbl := NewTables()
	tbl.RecordIndex("widgets", 0)
	tbl.RecordIndex("widgets", 0)
	tbl.RecordIndex("widgets", 1)

	assert.Equal(t, []int{0, 1}, tbl.Index["widgets"])
}

func TestRecordHeadingAppendsInOrder(t *testing.T) {
	tbl := NewTables()
	tbl.RecordHeading(1, "Intro", 0)
	tbl.RecordHeading(2, "Details", 1)

	assert.Equal(t, []HeadingEntry{
		{Level: 1, Text: "Intro", PageIndex: 0},
		{Level: 2, Text: "Details", PageIndex: 1},
	}, tbl.Headings)
}
