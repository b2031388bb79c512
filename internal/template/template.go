// Package template compiles a document template plus a data record
// into an IDF tree (spec.md §6). The grammar itself is intentionally
// thin per the Non-goal on template languages; JSONTemplate exists to
// exercise the whole pipeline end to end, not to be a general-purpose
// templating engine.
package template

import (
	"github.com/sigmundgranaas/petty/internal/idf"
	"github.com/sigmundgranaas/petty/internal/style"
)

// CompiledTemplate is a template bound to its source, ready to be
// executed once per data record.
type CompiledTemplate interface {
	// Execute binds data (typically a map[string]any) and produces the
	// IDF tree for one document/record.
	Execute(data any) (*idf.Node, error)
	// Stylesheet returns the page masters and named style sets the
	// template declared.
	Stylesheet() *style.Stylesheet
	// ResourceBasePath is the directory relative resource references
	// (images, included HTML fragments) resolve against.
	ResourceBasePath() string
	// Features lists the optional template capabilities this document
	// exercises (e.g. "toc", "html-fragments"), for callers that want
	// to decide whether a two-pass render is needed.
	Features() []string
}

// Parser compiles template source into a CompiledTemplate.
type Parser interface {
	Parse(source string, basePath string) (CompiledTemplate, error)
}
