package rendertree

import (
	"go.uber.org/zap"

	"github.com/sigmundgranaas/petty/internal/fontprov"
	"github.com/sigmundgranaas/petty/internal/res"
)

// Measurer supplies glyph-advance-based text measurement, backing the
// paragraph shaper. The fpdf-based renderer implements this using
// fpdf.GetStringWidth, continuing the teacher's measurement approach
// (internal/layout/engine.go's measureTextWidth) rather than
// fabricating a font-shaping dependency that has no Go presence in the
// example pack (see DESIGN.md).
type Measurer interface {
	MeasureWidth(text, family string, size float64, bold, italic bool) float64
}

// Env bundles the capabilities a RenderNode needs during measure/layout
// that are not pure functions of its own data: font resolution, text
// measurement, resource loading and the build logger. These are
// injected, not singletons (spec.md §9's "Global state: avoid").
type Env struct {
	Measurer  Measurer
	Fonts     fontprov.Provider
	Resources res.Provider
	Log       *zap.Logger

	// OnOversizedSkip is invoked when an element is skipped because it
	// cannot fit on any page (spec.md §7's recovery policy); nil is
	// safe (skip silently).
	OnOversizedSkip func(kind, detail string)
}

func (e *Env) warnOversized(kind, detail string) {
	if e.OnOversizedSkip != nil {
		e.OnOversizedSkip(kind, detail)
	}
	if e.Log != nil {
		e.Log.Warn("oversized element skipped", zap.String("kind", kind), zap.String("detail", detail))
	}
}
