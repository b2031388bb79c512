// Package paginate implements the paginator: the driver loop that
// repeatedly lays a RenderNode tree out onto successive pages, resuming
// from each page's Break token, and the side tables (anchors, index
// terms, heading outline) built up along the way (spec.md §4.8/§4.9).
package paginate

import (
	"github.com/sigmundgranaas/petty/internal/geom"
	"github.com/sigmundgranaas/petty/internal/rendertree"
)

// Page is one finished page: its master, full page geometry, and the
// positioned elements placed on it (spec.md §3's Page).
type Page struct {
	MasterName string
	Bounds     geom.Rect
	Elements   []rendertree.PositionedElement
}
