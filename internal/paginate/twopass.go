package paginate

import "github.com/sigmundgranaas/petty/internal/rendertree"

// FirstPass runs a throwaway pagination pass purely to collect the
// side tables: anchor page positions and the heading outline (spec.md
// §4.9). Callers needing a table of contents or absolute page-number
// references re-execute their template with the returned Tables (via
// Tables.ResolvePageReference) substituted in, rebuild the RenderNode
// tree, and call SecondPass for the final output. Pagination itself
// does not own template re-execution; that lives in the pipeline layer
// above it (internal/template, pkg/api).
func (p *Paginator) FirstPass(root rendertree.LayoutNode, startMaster string) (*Tables, error) {
	_, tables, err := p.Paginate(root, startMaster)
	if err != nil {
		return nil, err
	}
	return tables, nil
}

// SecondPass produces the final pages from a RenderNode tree already
// rebuilt with any first-pass page references resolved.
func (p *Paginator) SecondPass(root rendertree.LayoutNode, startMaster string) ([]Page, *Tables, error) {
	return p.Paginate(root, startMaster)
}
