// Package fontprov resolves a requested font family/weight/style to a
// concrete face the PDF renderer can embed, falling back to one of
// fpdf's built-in core fonts when nothing in the registry matches
// (spec.md §7, §9: "missing font falls back to the configured
// default").
package fontprov

import "github.com/sigmundgranaas/petty/internal/style"

// FontInfo describes one resolved font face. A registry match carries
// a Path to a .ttf/.otf file to embed; a core-font fallback carries
// CoreName instead and Path is empty.
type FontInfo struct {
	Family   string
	Style    style.FontStyle
	Weight   style.FontWeight
	Path     string
	CoreName string
}

// Provider resolves font requests made during layout and rendering.
type Provider interface {
	Resolve(family string, weight style.FontWeight, fs style.FontStyle) (*FontInfo, bool)
}
