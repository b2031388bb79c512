package rendertree

import "github.com/sigmundgranaas/petty/internal/geom"

// ElementKind tags the payload carried by a PositionedElement (spec.md
// §3's Page/PositionedElement data model).
type ElementKind int

const (
	ElementText ElementKind = iota
	ElementImage
	ElementRectangle
	ElementLink
)

// TextRun is one styled, possibly-hyperlinked run within a positioned
// text element. X is the run's own absolute starting position rather
// than an offset from the previous run, so justified word gaps (wider
// than a plain space glyph) render correctly instead of being
// swallowed by cumulative-width placement.
type TextRun struct {
	Text       string
	X          float64
	FontFamily string
	FontSize   float64
	Bold       bool
	Italic     bool
	Color      string
	LinkIndex  int // -1 if not a hyperlink
}

// RectanglePayload describes a filled/stroked rectangle (background or
// border fragment).
type RectanglePayload struct {
	Fill        string // "" = no fill
	BorderColor string
	BorderWidth float64
}

// LinkPayload is a clickable region referencing either an internal
// anchor id or an external URI.
type LinkPayload struct {
	TargetID    string
	ExternalURI string
}

// PositionedElement is an absolutely-positioned drawing primitive on a
// page (spec.md §3).
type PositionedElement struct {
	Rect geom.Rect
	Kind ElementKind

	// ElementText
	Runs []TextRun

	// ElementImage
	ImageSrc string

	// ElementRectangle
	Rectangle RectanglePayload

	// ElementLink
	Link LinkPayload
}
