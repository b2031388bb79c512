package rendertree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmundgranaas/petty/internal/geom"
	"github.com/sigmundgranaas/petty/internal/style"
)

// TestTableLayoutSkipsRowTallerThanAnyPage verifies a body row that can
// never fit even a fresh continuation page (content height minus
// repeated header) is logged via Env.OnOversizedSkip and skipped,
// rather than breaking with the same RowIndex forever.
func TestTableLayoutSkipsRowTallerThanAnyPage(t *testing.T) {
	cs := style.Default()
	header := []TableRow{{Cells: []TableCell{newFixedCell(10, 5, 1)}}}
	body := []TableRow{
		{Cells: []TableCell{newFixedCell(10, 500, 1)}}, // far too tall for any page
		{Cells: []TableCell{newFixedCell(10, 5, 1)}},   // ordinary row, should still land
	}
	table := NewTableNode(&cs, []TableColumn{{Width: style.Pt(10)}}, header, body, "")

	var skipped []string
	env := &Env{OnOversizedSkip: func(kind, detail string) { skipped = append(skipped, kind) }}
	ctx := NewLayoutContext(geom.Rect{W: 100, H: 50}, 0, &fakeSink{}, env)

	res, err := table.Layout(ctx, geom.TightWidth(100), nil)

	require.NoError(t, err)
	assert.True(t, res.IsFinished())
	assert.Equal(t, []string{"table-row"}, skipped)
}

// TestTableLayoutBreaksOnOrdinaryOverflowingRow confirms a row that
// would fit on a fresh page (just not the current one) still produces
// a normal Break/RowIndex resumption rather than being skipped.
func TestTableLayoutBreaksOnOrdinaryOverflowingRow(t *testing.T) {
	cs := style.Default()
	body := []TableRow{
		{Cells: []TableCell{newFixedCell(10, 40, 1)}},
		{Cells: []TableCell{newFixedCell(10, 40, 1)}},
	}
	table := NewTableNode(&cs, []TableColumn{{Width: style.Pt(10)}}, nil, body, "")

	env := &Env{}
	ctx := NewLayoutContext(geom.Rect{W: 100, H: 50}, 0, &fakeSink{}, env)
	ctx.CursorY = 20 // page already has content, so !ctx.IsEmpty()

	res, err := table.Layout(ctx, geom.TightWidth(100), nil)

	require.NoError(t, err)
	assert.False(t, res.IsFinished())
	assert.Equal(t, StateTable, res.State.Kind)
	assert.Equal(t, 0, res.State.RowIndex)
}
