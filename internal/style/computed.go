package style

// ComputedStyle is the effective, fully-resolved style of a node after
// cascade (spec.md §3/§4.1). Every field is a concrete value (never a
// pointer) so that ComputedStyle is itself comparable and can be
// interned by value identity in internal/arena — span merging and text
// shaping compare styles by pointer equality of the interned handle,
// per spec.md §9.
type ComputedStyle struct {
	FontFamily     string
	FontSize       float64
	FontWeight     FontWeight
	FontStyle      FontStyle
	LineHeight     float64
	TextAlign      TextAlign
	Color          string
	TextDecoration string
	Widows         int
	Orphans        int

	BackgroundColor string

	BorderTop    BorderSide
	BorderRight  BorderSide
	BorderBottom BorderSide
	BorderLeft   BorderSide

	MarginTop    Dimension
	MarginRight  Dimension
	MarginBottom Dimension
	MarginLeft   Dimension

	PaddingTop    Dimension
	PaddingRight  Dimension
	PaddingBottom Dimension
	PaddingLeft   Dimension

	Width     Dimension
	Height    Dimension
	MinHeight Dimension

	ListStyleType     ListStyleType
	ListStylePosition ListStylePosition
	ListStyleImage    string

	BorderSpacing float64

	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	JustifyContent JustifyContent
	AlignItems     AlignItems

	Order      int
	FlexGrow   float64
	FlexShrink float64
	FlexBasis  Dimension
	AlignSelf  AlignItems
}

// Default returns the root computed style: every non-inherited
// property at its spec default, inherited properties at their initial
// value (no parent to inherit from).
func Default() ComputedStyle {
	return ComputedStyle{
		FontFamily: "Helvetica",
		FontSize:   12,
		FontWeight: WeightRegular,
		FontStyle:  FontStyleNormal,
		LineHeight: 12 * 1.2,
		TextAlign:  AlignLeft,
		Color:      "#000000",
		Widows:     1,
		Orphans:    1,
		Width:      Auto,
		Height:     Auto,
		MinHeight:  Auto,
		FlexShrink: 1,
		FlexBasis:  Auto,
	}
}
