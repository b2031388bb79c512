// Package arena provides the per-document-build arena, which interns
// ComputedStyle values so that paragraph span merging and text shaping
// can compare styles by pointer identity (spec.md §9). It interns
// styles only; strings and RenderNodes are ordinary heap values.
//
// No third-party arena allocator appears anywhere in the example pack
// (see DESIGN.md); a plain map keyed by value equality is the
// idiomatic Go substitute and is what spec.md §9 itself prescribes
// ("intern ComputedStyle by structural hash").
package arena

import "github.com/sigmundgranaas/petty/internal/style"

// Arena owns all interned values for a single document build. Callers
// create one Arena per build and discard it when the build ends
// (spec.md §3's "Lifecycle" paragraph); there is no explicit Free —
// the Go garbage collector reclaims it once the build's last reference
// drops.
type Arena struct {
	styles map[style.ComputedStyle]*style.ComputedStyle
}

// New returns a fresh, empty arena.
func New() *Arena {
	return &Arena{styles: make(map[style.ComputedStyle]*style.ComputedStyle)}
}

// InternStyle returns a stable *ComputedStyle for cs, reusing a
// previous allocation if a structurally identical style was already
// interned. Two nodes with the same effective style get back the same
// pointer, so style.ComputedStyle equality can be checked as `a == b`
// and span-merging in the paragraph shaper is a pointer comparison.
func (a *Arena) InternStyle(cs style.ComputedStyle) *style.ComputedStyle {
	if existing, ok := a.styles[cs]; ok {
		return existing
	}
	handle := new(style.ComputedStyle)
	*handle = cs
	a.styles[cs] = handle
	return handle
}

// Len reports how many distinct styles have been interned, useful for
// build diagnostics and tests.
func (a *Arena) Len() int {
	return len(a.styles)
}
