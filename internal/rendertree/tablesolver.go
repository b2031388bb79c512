package rendertree

import (
	"github.com/sigmundgranaas/petty/internal/geom"
	"github.com/sigmundgranaas/petty/internal/style"
)

// autoLayoutSampleLimit caps how many body rows are measured when
// solving auto column widths, adapted directly from
// original_source/crates/layout/src/nodes/table_solver.rs's
// AUTO_LAYOUT_SAMPLE_LIMIT (avoids an O(rows x columns) measurement
// pass on very large tables).
const autoLayoutSampleLimit = 100

// ResolveColumnWidths implements table_solver.rs's resolve_widths: Pt
// and bounded Percent columns are assigned directly; Auto (and
// unbounded Percent) columns are sized from sampled cell content, then
// the remaining width is distributed proportionally to that content's
// preferred width (or shrunk proportionally if content would overflow
// the table).
func ResolveColumnWidths(env *Env, columns []TableColumn, bodyRows []TableRow, availableWidth float64, bounded bool) []float64 {
	n := len(columns)
	widths := make([]float64, n)
	var autoIdx []int
	remaining := availableWidth

	for i, col := range columns {
		switch col.Width.Kind {
		case style.DimPt:
			widths[i] = col.Width.Value
			remaining -= widths[i]
		case style.DimPercent:
			if bounded {
				widths[i] = (col.Width.Value / 100.0) * availableWidth
				remaining -= widths[i]
			} else {
				autoIdx = append(autoIdx, i)
			}
		default:
			autoIdx = append(autoIdx, i)
		}
	}
	if remaining < 0 {
		remaining = 0
	}
	if len(autoIdx) == 0 {
		return widths
	}

	preferred := make([]float64, n)
	isAuto := make([]bool, n)
	for _, i := range autoIdx {
		isAuto[i] = true
	}

	rowCount := 0
	for _, row := range bodyRows {
		if rowCount >= autoLayoutSampleLimit {
			break
		}
		rowCount++
		col := 0
		for _, cell := range row.Cells {
			if col >= n {
				break
			}
			span := cell.ColSpan
			if span < 1 {
				span = 1
			}
			involvesAuto := false
			for k := col; k < col+span && k < n; k++ {
				if isAuto[k] {
					involvesAuto = true
					break
				}
			}
			if involvesAuto && span == 1 {
				w := cell.Content.Measure(env, geom.Unbounded).W
				if w > preferred[col] {
					preferred[col] = w
				}
			}
			col += span
		}
	}

	totalPreferred := 0.0
	for _, i := range autoIdx {
		totalPreferred += preferred[i]
	}

	if !bounded {
		for _, i := range autoIdx {
			widths[i] = preferred[i]
		}
		return widths
	}

	if totalPreferred > 0 {
		if remaining >= totalPreferred {
			extra := remaining - totalPreferred
			for _, i := range autoIdx {
				widths[i] = preferred[i] + extra*(preferred[i]/totalPreferred)
			}
		} else {
			shrink := remaining / totalPreferred
			for _, i := range autoIdx {
				widths[i] = preferred[i] * shrink
			}
		}
	} else {
		per := remaining / float64(len(autoIdx))
		for _, i := range autoIdx {
			widths[i] = per
		}
	}
	return widths
}
