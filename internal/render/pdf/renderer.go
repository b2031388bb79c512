// Package pdf renders a paginated RenderNode tree to a PDF file with
// codeberg.org/go-pdf/fpdf, adapted from the teacher's
// internal/render/pdf/pdf.go box-tree walker to instead consume
// paginate.Page/rendertree.PositionedElement values (spec.md §3's
// output data model).
package pdf

import (
	"codeberg.org/go-pdf/fpdf"
	"go.uber.org/zap"

	"github.com/sigmundgranaas/petty/internal/fontprov"
	"github.com/sigmundgranaas/petty/internal/paginate"
	"github.com/sigmundgranaas/petty/internal/perr"
	"github.com/sigmundgranaas/petty/internal/res"
	"github.com/sigmundgranaas/petty/internal/rendertree"
	"github.com/sigmundgranaas/petty/internal/style"
)

// DocumentMeta carries the document-level metadata the reference
// implementation's RenderOptions exposed (title/author/subject/
// keywords/creator/producer), unchanged from the teacher.
type DocumentMeta struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
}

// Renderer is the output-stage contract: start a document, emit each
// page object and its content, wire the bookmark outline from the
// collected heading table, then finish writing the file.
type Renderer interface {
	BeginDocument(meta DocumentMeta, tables *paginate.Tables) error
	WritePageObject(page paginate.Page) error
	RenderPageContent(page paginate.Page) error
	SetOutlineRoot(headings []paginate.HeadingEntry)
	Finish(outputPath string) error
}

// FPDFRenderer is the fpdf-backed Renderer. It also implements
// rendertree.Measurer, since fpdf.GetStringWidth is the natural
// source of truth for glyph-advance measurement once a font is
// selected, the same approach the teacher's internal/layout/engine.go
// used.
type FPDFRenderer struct {
	Fonts     fontprov.Provider
	Resources res.Provider
	Log       *zap.Logger

	pdf         *fpdf.Fpdf
	headings    []paginate.HeadingEntry
	anchorLinks map[string]int
	registered  map[string]bool
	imageCache  map[string]imageInfo
	currentPage int
	pageStarted bool
}

type imageInfo struct {
	name          string
	registerError error
}

// NewFPDFRenderer builds a renderer bound to the given font and
// resource providers.
func NewFPDFRenderer(fonts fontprov.Provider, resources res.Provider, log *zap.Logger) *FPDFRenderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &FPDFRenderer{
		Fonts:       fonts,
		Resources:   resources,
		Log:         log,
		anchorLinks: make(map[string]int),
		registered:  make(map[string]bool),
		imageCache:  make(map[string]imageInfo),
		currentPage: -1,
	}
}

// BeginDocument implements Renderer.
func (r *FPDFRenderer) BeginDocument(meta DocumentMeta, tables *paginate.Tables) error {
	r.pdf = fpdf.New("P", "pt", "", "")
	r.pdf.SetAutoPageBreak(false, 0)
	r.pdf.SetTitle(meta.Title, true)
	r.pdf.SetAuthor(meta.Author, true)
	r.pdf.SetSubject(meta.Subject, true)
	r.pdf.SetKeywords(meta.Keywords, true)
	r.pdf.SetCreator(meta.Creator, true)
	r.pdf.SetProducer(meta.Producer, true)

	if tables != nil {
		r.headings = tables.Headings
		for id := range tables.Anchors {
			r.anchorLinks[id] = r.pdf.AddLink()
		}
		for id, entry := range tables.Anchors {
			r.pdf.SetLinkY(r.anchorLinks[id], entry.PageIndex+1, entry.Y)
		}
	}
	return nil
}

// WritePageObject implements Renderer: starts a fresh page sized to
// page's bounds.
func (r *FPDFRenderer) WritePageObject(page paginate.Page) error {
	orientation := "P"
	if page.Bounds.W > page.Bounds.H {
		orientation = "L"
	}
	r.pdf.AddPageFormat(orientation, fpdf.SizeType{Wd: page.Bounds.W, Ht: page.Bounds.H})
	r.currentPage++
	r.pageStarted = true

	// fpdf.Bookmark attaches to the page current when it's called, so
	// outline entries are emitted here rather than in SetOutlineRoot,
	// which only records the table up front.
	for _, h := range r.headings {
		if h.PageIndex != r.currentPage {
			continue
		}
		level := h.Level - 1
		if level < 0 {
			level = 0
		}
		r.pdf.Bookmark(h.Text, level, 0)
	}
	return nil
}

// RenderPageContent implements Renderer, drawing every positioned
// element of page onto the current page object.
func (r *FPDFRenderer) RenderPageContent(page paginate.Page) error {
	if !r.pageStarted {
		return perr.New(perr.Renderer, "RenderPageContent called before WritePageObject")
	}
	for _, el := range page.Elements {
		switch el.Kind {
		case rendertree.ElementRectangle:
			r.drawRectangle(el)
		case rendertree.ElementText:
			r.drawText(el)
		case rendertree.ElementImage:
			r.drawImage(el)
		case rendertree.ElementLink:
			r.drawLink(el)
		}
	}
	return nil
}

// SetOutlineRoot implements Renderer. The heading table is captured
// here so WritePageObject can emit each entry's bookmark while its
// page is current; fpdf has no API to attach a bookmark to an
// already-written page after the fact.
func (r *FPDFRenderer) SetOutlineRoot(headings []paginate.HeadingEntry) {
	r.headings = headings
}

// Finish implements Renderer.
func (r *FPDFRenderer) Finish(outputPath string) error {
	if err := r.pdf.OutputFileAndClose(outputPath); err != nil {
		return perr.Wrap(perr.Renderer, "write PDF output", err)
	}
	return nil
}

func (r *FPDFRenderer) drawRectangle(el rendertree.PositionedElement) {
	color := el.Rectangle.Fill
	if color == "" {
		color = el.Rectangle.BorderColor
	}
	if color == "" {
		return
	}
	rgb := parseColor(color)
	r.pdf.SetFillColor(rgb[0], rgb[1], rgb[2])
	r.pdf.Rect(el.Rect.X, el.Rect.Y, el.Rect.W, el.Rect.H, "F")
}

func (r *FPDFRenderer) drawText(el rendertree.PositionedElement) {
	for _, run := range el.Runs {
		r.selectFont(run.FontFamily, run.FontSize, run.Bold, run.Italic)
		if run.Color != "" {
			rgb := parseColor(run.Color)
			r.pdf.SetTextColor(rgb[0], rgb[1], rgb[2])
		} else {
			r.pdf.SetTextColor(0, 0, 0)
		}
		r.pdf.Text(run.X, el.Rect.Y+el.Rect.H, run.Text)
	}
}

func (r *FPDFRenderer) drawLink(el rendertree.PositionedElement) {
	if el.Link.ExternalURI != "" {
		r.pdf.LinkString(el.Rect.X, el.Rect.Y, el.Rect.W, el.Rect.H, el.Link.ExternalURI)
		return
	}
	if id, ok := r.anchorLinks[el.Link.TargetID]; ok {
		r.pdf.Link(el.Rect.X, el.Rect.Y, el.Rect.W, el.Rect.H, id)
	}
}

func (r *FPDFRenderer) drawImage(el rendertree.PositionedElement) {
	info, err := r.registerImage(el.ImageSrc)
	if err != nil {
		r.Log.Warn("skipping image that failed to load", zap.String("src", el.ImageSrc), zap.Error(err))
		return
	}
	r.pdf.ImageOptions(info.name, el.Rect.X, el.Rect.Y, el.Rect.W, el.Rect.H, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
}

// MeasureWidth implements rendertree.Measurer.
func (r *FPDFRenderer) MeasureWidth(text, family string, size float64, bold, italic bool) float64 {
	r.selectFont(family, size, bold, italic)
	return r.pdf.GetStringWidth(text)
}

// selectFont resolves family/weight/style through Fonts, registers
// the face with fpdf on first use, and calls pdf.SetFont.
func (r *FPDFRenderer) selectFont(family string, size float64, bold, italic bool) {
	weight := style.WeightRegular
	if bold {
		weight = style.WeightBold
	}
	fs := style.FontStyleNormal
	if italic {
		fs = style.FontStyleItalic
	}

	var info *fontprov.FontInfo
	if r.Fonts != nil {
		info, _ = r.Fonts.Resolve(family, weight, fs)
	}

	styleStr := coreStyleString(bold, italic)
	if info == nil {
		r.pdf.SetFont(fontprov.DefaultFamily, styleStr, size)
		return
	}
	if info.Path != "" {
		key := info.Family + "|" + styleStr
		if !r.registered[key] {
			r.pdf.AddUTF8Font(info.Family, styleStr, info.Path)
			r.registered[key] = true
		}
		r.pdf.SetFont(info.Family, styleStr, size)
		return
	}

	core := info.CoreName
	if core == "" {
		core = fontprov.DefaultFamily
	}
	r.pdf.SetFont(core, styleStr, size)
}

func coreStyleString(bold, italic bool) string {
	switch {
	case bold && italic:
		return "BI"
	case bold:
		return "B"
	case italic:
		return "I"
	default:
		return ""
	}
}

// registerImage loads src once through Resources and registers it
// with fpdf (raster formats via decoders.go's blank-imported
// image.Decode set; SVG via oksvg/rasterx rasterization in svg.go),
// caching the result under src for reuse across repeated <img> refs.
func (r *FPDFRenderer) registerImage(src string) (imageInfo, error) {
	if info, ok := r.imageCache[src]; ok {
		return info, info.registerError
	}
	info, err := r.loadAndRegisterImage(src)
	info.registerError = err
	r.imageCache[src] = info
	return info, err
}
