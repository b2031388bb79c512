package paginate

import (
	"fmt"

	"github.com/sigmundgranaas/petty/internal/geom"
	"github.com/sigmundgranaas/petty/internal/perr"
	"github.com/sigmundgranaas/petty/internal/rendertree"
	"github.com/sigmundgranaas/petty/internal/style"
)

// maxPages guards the driver loop against a node that never finishes
// (a bug returning Break forever) turning into an infinite page count.
const maxPages = 100000

// Paginator drives one RenderNode tree across successive pages
// (spec.md §4.8): "while current work is not empty, lay out onto a
// fresh page; if it breaks, the remaining state becomes the next
// page's work; if the break names a new master, switch to it."
type Paginator struct {
	Sheet *style.Stylesheet
	Env   *rendertree.Env
}

// NewPaginator binds a paginator to a compiled stylesheet and the
// build-wide capabilities nodes need during layout.
func NewPaginator(sheet *style.Stylesheet, env *rendertree.Env) *Paginator {
	return &Paginator{Sheet: sheet, Env: env}
}

// Paginate lays root out across as many pages as its content needs,
// starting on startMaster (or the stylesheet's default if empty).
// root must not retain state between calls — layout state lives
// entirely in the NodeState token threaded through this loop, so the
// same root may be paginated more than once (the two-pass pipeline's
// first pass) without rebuilding it.
func (p *Paginator) Paginate(root rendertree.LayoutNode, startMaster string) ([]Page, *Tables, error) {
	master := startMaster
	if master == "" {
		master = p.Sheet.DefaultPageMaster
	}

	tables := NewTables()
	var pages []Page
	var resume *rendertree.NodeState
	pageIndex := 0

	for {
		if pageIndex >= maxPages {
			return nil, nil, perr.New(perr.Layout, fmt.Sprintf("exceeded %d pages; a node is not making progress", maxPages))
		}

		layout, ok := p.Sheet.PageMasters[master]
		if !ok {
			return nil, nil, perr.New(perr.Configuration, fmt.Sprintf("unknown page master %q", master))
		}

		contentRect := geom.Rect{
			X: layout.Margins.Left,
			Y: layout.Margins.Top,
			W: layout.Size.Width - layout.Margins.Left - layout.Margins.Right,
			H: layout.Size.Height - layout.Margins.Top - layout.Margins.Bottom,
		}

		ctx := rendertree.NewLayoutContext(contentRect, pageIndex, tables, p.Env)
		res, err := root.Layout(ctx, geom.TightWidth(contentRect.W), resume)
		if err != nil {
			return nil, nil, perr.Wrap(perr.Layout, "page layout failed", err)
		}

		pages = append(pages, Page{
			MasterName: master,
			Bounds:     geom.Rect{W: layout.Size.Width, H: layout.Size.Height},
			Elements:   ctx.Elements,
		})
		pageIndex++

		if res.IsFinished() {
			break
		}
		resume = res.State
		if resume.NextMaster != "" {
			master = resume.NextMaster
		}
	}

	return pages, tables, nil
}
