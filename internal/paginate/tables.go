package paginate

// AnchorEntry is the resolved page position of one anchor id.
type AnchorEntry struct {
	PageIndex int
	Y         float64
}

// HeadingEntry is one outline entry collected from a Heading node.
type HeadingEntry struct {
	Level     int
	Text      string
	PageIndex int
}

// Tables accumulates the side tables produced during one pagination
// pass: anchor positions, index-term page lists and the heading
// outline (spec.md §4.4/§4.8). It implements rendertree.SideTables.
type Tables struct {
	Anchors  map[string]AnchorEntry
	Index    map[string][]int
	Headings []HeadingEntry
}

// NewTables returns an empty side-table set.
func NewTables() *Tables {
	return &Tables{Anchors: map[string]AnchorEntry{}, Index: map[string][]int{}}
}

// RegisterAnchor implements rendertree.SideTables.
func (t *Tables) RegisterAnchor(id string, pageIndex int, y float64) {
	if id == "" {
		return
	}
	t.Anchors[id] = AnchorEntry{PageIndex: pageIndex, Y: y}
}

// RecordIndex implements rendertree.SideTables, deduplicating
// consecutive records of the same term on the same page.
func (t *Tables) RecordIndex(term string, pageIndex int) {
	pages := t.Index[term]
	if len(pages) > 0 && pages[len(pages)-1] == pageIndex {
		return
	}
	t.Index[term] = append(pages, pageIndex)
}

// RecordHeading implements rendertree.SideTables.
func (t *Tables) RecordHeading(level int, text string, pageIndex int) {
	t.Headings = append(t.Headings, HeadingEntry{Level: level, Text: text, PageIndex: pageIndex})
}

// ResolvePageReference returns the 1-based page number an anchor
// resolved to, for rewriting a hyperlink or TOC entry to an absolute
// page number between passes (spec.md §4.9's two-pass pipeline).
func (t *Tables) ResolvePageReference(id string) (int, bool) {
	e, ok := t.Anchors[id]
	if !ok {
		return 0, false
	}
	return e.PageIndex + 1, true
}
