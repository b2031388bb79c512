package text

import (
	"strings"
	"unicode"

	"github.com/sigmundgranaas/petty/internal/style"
)

// Measurer supplies glyph-advance-based text measurement. Structurally
// identical to rendertree.Measurer; kept as its own interface here so
// this package does not import rendertree (rendertree imports text,
// not the reverse).
type Measurer interface {
	MeasureWidth(text, family string, size float64, bold, italic bool) float64
}

// Word is one shaped, measured unit produced by Shape: either a
// whitespace-delimited run of glyphs, an inline image, or a hard line
// break, adapted from original_source/crates/layout/src/text/shaper.rs
// (shaping itself is approximated by fpdf string-width measurement,
// since no font-shaping library appears anywhere in the example pack —
// see DESIGN.md).
type Word struct {
	Text       string
	Width      float64
	Style      *style.ComputedStyle
	LinkIndex  int
	IsImage    bool
	ImageSrc   string
	HardBreak  bool // Text is empty; forces a line break here
	SpaceAfter bool // a break opportunity (one collapsed space) follows
}

// Shape measures each span's whitespace-delimited words, producing the
// linear word stream the line breaker consumes.
func Shape(spans []Span, m Measurer) []Word {
	var words []Word
	for _, sp := range spans {
		if sp.IsImage {
			words = append(words, Word{
				Text:      sp.Text,
				Width:     sp.Style.FontSize,
				Style:     sp.Style,
				LinkIndex: sp.LinkIndex,
				IsImage:   true,
				ImageSrc:  sp.ImageSrc,
			})
			continue
		}
		if sp.Text == "\n" {
			words = append(words, Word{HardBreak: true, Style: sp.Style, LinkIndex: sp.LinkIndex})
			continue
		}
		words = append(words, shapeSpan(sp, m)...)
	}
	return words
}

func shapeSpan(sp Span, m Measurer) []Word {
	var out []Word
	var b strings.Builder
	flush := func(spaceAfter bool) {
		if b.Len() == 0 {
			if spaceAfter && len(out) > 0 {
				out[len(out)-1].SpaceAfter = true
			}
			return
		}
		text := b.String()
		out = append(out, Word{
			Text:       text,
			Width:      m.MeasureWidth(text, sp.Style.FontFamily, sp.Style.FontSize, sp.Style.FontWeight.IsBold(), sp.Style.FontStyle == style.FontStyleItalic),
			Style:      sp.Style,
			LinkIndex:  sp.LinkIndex,
			SpaceAfter: spaceAfter,
		})
		b.Reset()
	}
	runes := []rune(sp.Text)
	for i, r := range runes {
		if unicode.IsSpace(r) {
			flush(true)
			continue
		}
		b.WriteRune(r)
		if i == len(runes)-1 {
			flush(false)
		}
	}
	return out
}
