// Package text implements paragraph shaping and line-breaking (spec.md
// §4.5): flattening inline runs into spans, shaping them into glyph
// runs, and breaking the result into lines respecting widows/orphans.
package text

import "github.com/sigmundgranaas/petty/internal/style"

// Span is one contiguous run of text sharing a single interned style
// and (optionally) a hyperlink, produced by Flatten. Grounded on
// original_source/crates/layout/src/text/builder.rs's TextSpan, with
// the byte-offset-into-one-buffer representation simplified to an
// owned string per span — an allocation-layout choice, not a semantic
// one; spec.md's invariant is round-trip resumability, not a specific
// buffer strategy.
type Span struct {
	Text      string
	Style     *style.ComputedStyle
	LinkIndex int // -1 if this span is not part of a hyperlink
	IsImage   bool
	ImageSrc  string
}

// LinkTarget is a hyperlink or page-reference site referenced by a
// Span.LinkIndex.
type LinkTarget struct {
	TargetID    string // internal anchor id ("" if external)
	ExternalURI string
}
