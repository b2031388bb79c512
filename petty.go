// Package petty is the top-level convenience wrapper around pkg/api,
// re-exporting the Converter and its functional options the way the
// teacher's root gompdf.go package re-exported pkg/api's HTML-to-PDF
// surface.
package petty

import (
	"github.com/sigmundgranaas/petty/pkg/api"
)

type Converter = api.Converter
type Options = api.Options
type Option = api.Option
type BatchJob = api.BatchJob

func New() *Converter                          { return api.New() }
func NewWithOptions(options Options) *Converter { return api.NewWithOptions(options) }
func DefaultOptions() Options                   { return api.DefaultOptions() }

var (
	WithResourcePath  = api.WithResourcePath
	WithFontDirectory = api.WithFontDirectory
	WithTitle         = api.WithTitle
	WithAuthor        = api.WithAuthor
	WithSubject       = api.WithSubject
	WithKeywords      = api.WithKeywords
	WithCreator       = api.WithCreator
	WithProducer      = api.WithProducer
	WithDebug         = api.WithDebug
	WithWorkers       = api.WithWorkers
	WithTwoPass       = api.WithTwoPass
)
