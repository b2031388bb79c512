package style

// PageSizeName enumerates the named page sizes from spec.md §3;
// Custom carries explicit width/height in points.
type PageSizeName int

const (
	PageA4 PageSizeName = iota
	PageLetter
	PageLegal
	PageA3
	PageA5
	PageCustom
)

// PageSize is a concrete page geometry in points, grounded on the
// teacher's internal/pagination/paginate.go page size constants.
type PageSize struct {
	Name   PageSizeName
	Width  float64
	Height float64
}

var (
	SizeA4     = PageSize{Name: PageA4, Width: 595.28, Height: 841.89}
	SizeLetter = PageSize{Name: PageLetter, Width: 612, Height: 792}
	SizeLegal  = PageSize{Name: PageLegal, Width: 612, Height: 1008}
	SizeA3     = PageSize{Name: PageA3, Width: 841.89, Height: 1190.55}
	SizeA5     = PageSize{Name: PageA5, Width: 419.53, Height: 595.28}
)

// CustomSize builds a Custom-named page size.
func CustomSize(w, h float64) PageSize {
	return PageSize{Name: PageCustom, Width: w, Height: h}
}

// Margins holds four page-margin sides in points.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// PageLayout is a named page master: size plus margins (spec.md §3).
type PageLayout struct {
	Size    PageSize
	Margins Margins
}

// BorderSide describes one edge of a border shorthand.
type BorderSide struct {
	Width float64
	Color string
	Style string // solid, dashed, dotted, none
}

// ListStyleType enumerates marker glyphs for List/ListItem (§4.4).
type ListStyleType int

const (
	ListNone ListStyleType = iota
	ListDisc
	ListCircle
	ListSquare
	ListDecimal
	ListLowerAlpha
	ListUpperAlpha
	ListLowerRoman
	ListUpperRoman
	ListImage
)

// ListStylePosition controls marker placement (§4.4).
type ListStylePosition int

const (
	ListPositionOutside ListStylePosition = iota
	ListPositionInside
)

// FlexDirection is the main axis of a flex container (§4.6).
type FlexDirection int

const (
	FlexRow FlexDirection = iota
	FlexRowReverse
	FlexColumn
	FlexColumnReverse
)

// FlexWrap controls whether a flex container wraps onto multiple lines.
type FlexWrap int

const (
	FlexNoWrap FlexWrap = iota
	FlexWrapOn
)

// JustifyContent distributes free space along the main axis (§4.6).
type JustifyContent int

const (
	JustifyStart JustifyContent = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// AlignItems / AlignSelf position children along the cross axis (§4.6).
type AlignItems int

const (
	AlignStretch AlignItems = iota
	AlignStart
	AlignEnd
	AlignCenter
)

// TextAlign controls horizontal text alignment (§4.5).
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignRight
	AlignCenterText
	AlignJustify
)

// ElementStyle is the set of optionally-specified style properties that
// a named style set or inline override may carry. Every field is a
// pointer (or zero-valued sentinel) so "unset" is distinguishable from
// "set to the zero value", mirroring crates/style/src/stylesheet.rs's
// all-Option<T> ElementStyle.
type ElementStyle struct {
	FontFamily     *string
	FontSize       *float64
	FontWeight     *FontWeight
	FontStyle      *FontStyle
	LineHeight     *float64
	TextAlign      *TextAlign
	Color          *string
	TextDecoration *string
	Widows         *int
	Orphans        *int

	BackgroundColor *string

	Border      *BorderSide
	BorderTop   *BorderSide
	BorderRight *BorderSide
	BorderBottom *BorderSide
	BorderLeft  *BorderSide

	MarginTop    *Dimension
	MarginRight  *Dimension
	MarginBottom *Dimension
	MarginLeft   *Dimension

	PaddingTop    *Dimension
	PaddingRight  *Dimension
	PaddingBottom *Dimension
	PaddingLeft   *Dimension

	Width     *Dimension
	Height    *Dimension
	MinHeight *Dimension

	ListStyleType     *ListStyleType
	ListStylePosition *ListStylePosition
	ListStyleImage    *string

	BorderSpacing *float64

	FlexDirection  *FlexDirection
	FlexWrap       *FlexWrap
	JustifyContent *JustifyContent
	AlignItems     *AlignItems

	Order      *int
	FlexGrow   *float64
	FlexShrink *float64
	FlexBasis  *Dimension
	AlignSelf  *AlignItems
}

// Stylesheet is the compiled mapping from page master name to layout
// and from style class name to ElementStyle (spec.md §3).
type Stylesheet struct {
	PageMasters        map[string]PageLayout
	DefaultPageMaster   string
	Styles             map[string]*ElementStyle
}

// NewStylesheet returns an empty stylesheet seeded with an A4 default
// master named "default".
func NewStylesheet() *Stylesheet {
	return &Stylesheet{
		PageMasters:       map[string]PageLayout{"default": {Size: SizeA4, Margins: Margins{Top: 72, Right: 72, Bottom: 72, Left: 72}}},
		DefaultPageMaster:  "default",
		Styles:            map[string]*ElementStyle{},
	}
}

// DefaultPageLayout returns the default page master, or an error-free
// zero value if none was configured (callers should validate at
// startup per spec.md §7's Configuration error kind).
func (s *Stylesheet) DefaultPageLayout() (PageLayout, bool) {
	pl, ok := s.PageMasters[s.DefaultPageMaster]
	return pl, ok
}

// StyleByClassName looks up a named style set; a miss is not an error
// per spec.md §7 ("a missing named style is treated as if that name
// contributed no properties").
func (s *Stylesheet) StyleByClassName(name string) *ElementStyle {
	return s.Styles[name]
}
