package style

// Engine computes ComputedStyle values from the style_sets + inline
// override + parent-inheritance cascade (spec.md §4.1). The CSS
// selector matching/specificity machinery the teacher's cascade.go
// used to pick which rules apply is gone: the IDF already names its
// style sets explicitly and in order, so there is nothing left to
// select — only to apply, in order, later-wins. See DESIGN.md
// "Generalized away" for the full rationale.
type Engine struct {
	sheet *Stylesheet
}

// NewEngine builds a cascade engine bound to a compiled stylesheet.
func NewEngine(sheet *Stylesheet) *Engine {
	return &Engine{sheet: sheet}
}

// Compute implements spec.md §4.1's compute_style(style_sets,
// inline_override, parent) -> ComputedStyle.
//
//  1. Start with a fresh ComputedStyle seeded from parent for inherited
//     properties only; non-inherited properties reset to their
//     defaults.
//  2. Apply named style sets in order (later wins).
//  3. Apply the inline override.
//  4. For each unspecified property, use its computed default;
//     resolve line_height to 1.2 x font_size if absent.
func (e *Engine) Compute(styleSetNames []string, override *ElementStyle, parent ComputedStyle) ComputedStyle {
	acc := seedFromParent(parent)
	lineHeightSet := false

	for _, name := range styleSetNames {
		if es := e.sheet.StyleByClassName(name); es != nil {
			apply(&acc, es, &lineHeightSet)
		}
	}
	if override != nil {
		apply(&acc, override, &lineHeightSet)
	}
	if !lineHeightSet {
		acc.LineHeight = 1.2 * acc.FontSize
	}
	return acc
}

// seedFromParent keeps inherited properties from the parent and resets
// every non-inherited property to the spec default (spec.md §3's
// inherited/non-inherited property lists).
func seedFromParent(parent ComputedStyle) ComputedStyle {
	def := Default()
	return ComputedStyle{
		// Inherited.
		FontFamily:        parent.FontFamily,
		FontSize:          parent.FontSize,
		FontWeight:        parent.FontWeight,
		FontStyle:         parent.FontStyle,
		LineHeight:        parent.LineHeight,
		TextAlign:         parent.TextAlign,
		Color:             parent.Color,
		TextDecoration:    parent.TextDecoration,
		Widows:            parent.Widows,
		Orphans:           parent.Orphans,
		ListStyleType:     parent.ListStyleType,
		ListStylePosition: parent.ListStylePosition,
		ListStyleImage:    parent.ListStyleImage,

		// Non-inherited: spec defaults.
		BackgroundColor: def.BackgroundColor,
		BorderTop:       def.BorderTop,
		BorderRight:     def.BorderRight,
		BorderBottom:    def.BorderBottom,
		BorderLeft:      def.BorderLeft,
		MarginTop:       def.MarginTop,
		MarginRight:     def.MarginRight,
		MarginBottom:    def.MarginBottom,
		MarginLeft:      def.MarginLeft,
		PaddingTop:      def.PaddingTop,
		PaddingRight:    def.PaddingRight,
		PaddingBottom:   def.PaddingBottom,
		PaddingLeft:     def.PaddingLeft,
		Width:           def.Width,
		Height:          def.Height,
		MinHeight:       def.MinHeight,
		BorderSpacing:   def.BorderSpacing,
		FlexDirection:   def.FlexDirection,
		FlexWrap:        def.FlexWrap,
		JustifyContent:  def.JustifyContent,
		AlignItems:      def.AlignItems,
		Order:           def.Order,
		FlexGrow:        def.FlexGrow,
		FlexShrink:      def.FlexShrink,
		FlexBasis:       def.FlexBasis,
		AlignSelf:       def.AlignSelf,
	}
}

// apply overlays one ElementStyle layer onto the accumulator, later
// calls winning over earlier ones field by field.
func apply(acc *ComputedStyle, s *ElementStyle, lineHeightSet *bool) {
	if s.FontFamily != nil {
		acc.FontFamily = *s.FontFamily
	}
	if s.FontSize != nil {
		acc.FontSize = *s.FontSize
	}
	if s.FontWeight != nil {
		acc.FontWeight = *s.FontWeight
	}
	if s.FontStyle != nil {
		acc.FontStyle = *s.FontStyle
	}
	if s.LineHeight != nil {
		acc.LineHeight = *s.LineHeight
		*lineHeightSet = true
	}
	if s.TextAlign != nil {
		acc.TextAlign = *s.TextAlign
	}
	if s.Color != nil {
		acc.Color = *s.Color
	}
	if s.TextDecoration != nil {
		acc.TextDecoration = *s.TextDecoration
	}
	if s.Widows != nil {
		acc.Widows = *s.Widows
	}
	if s.Orphans != nil {
		acc.Orphans = *s.Orphans
	}
	if s.BackgroundColor != nil {
		acc.BackgroundColor = *s.BackgroundColor
	}

	// Border shorthand acts as a default for all four sides; explicit
	// per-side values override it (spec.md §4.1).
	if s.Border != nil {
		acc.BorderTop = *s.Border
		acc.BorderRight = *s.Border
		acc.BorderBottom = *s.Border
		acc.BorderLeft = *s.Border
	}
	if s.BorderTop != nil {
		acc.BorderTop = *s.BorderTop
	}
	if s.BorderRight != nil {
		acc.BorderRight = *s.BorderRight
	}
	if s.BorderBottom != nil {
		acc.BorderBottom = *s.BorderBottom
	}
	if s.BorderLeft != nil {
		acc.BorderLeft = *s.BorderLeft
	}

	if s.MarginTop != nil {
		acc.MarginTop = *s.MarginTop
	}
	if s.MarginRight != nil {
		acc.MarginRight = *s.MarginRight
	}
	if s.MarginBottom != nil {
		acc.MarginBottom = *s.MarginBottom
	}
	if s.MarginLeft != nil {
		acc.MarginLeft = *s.MarginLeft
	}
	if s.PaddingTop != nil {
		acc.PaddingTop = *s.PaddingTop
	}
	if s.PaddingRight != nil {
		acc.PaddingRight = *s.PaddingRight
	}
	if s.PaddingBottom != nil {
		acc.PaddingBottom = *s.PaddingBottom
	}
	if s.PaddingLeft != nil {
		acc.PaddingLeft = *s.PaddingLeft
	}

	if s.Width != nil {
		acc.Width = *s.Width
	}
	if s.Height != nil {
		acc.Height = *s.Height
	}
	if s.MinHeight != nil {
		acc.MinHeight = *s.MinHeight
	}

	if s.ListStyleType != nil {
		acc.ListStyleType = *s.ListStyleType
	}
	if s.ListStylePosition != nil {
		acc.ListStylePosition = *s.ListStylePosition
	}
	if s.ListStyleImage != nil {
		acc.ListStyleImage = *s.ListStyleImage
	}
	if s.BorderSpacing != nil {
		acc.BorderSpacing = *s.BorderSpacing
	}

	if s.FlexDirection != nil {
		acc.FlexDirection = *s.FlexDirection
	}
	if s.FlexWrap != nil {
		acc.FlexWrap = *s.FlexWrap
	}
	if s.JustifyContent != nil {
		acc.JustifyContent = *s.JustifyContent
	}
	if s.AlignItems != nil {
		acc.AlignItems = *s.AlignItems
	}
	if s.Order != nil {
		acc.Order = *s.Order
	}
	if s.FlexGrow != nil {
		acc.FlexGrow = *s.FlexGrow
	}
	if s.FlexShrink != nil {
		acc.FlexShrink = *s.FlexShrink
	}
	if s.FlexBasis != nil {
		acc.FlexBasis = *s.FlexBasis
	}
	if s.AlignSelf != nil {
		acc.AlignSelf = *s.AlignSelf
	}
}
