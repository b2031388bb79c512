package api

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/sigmundgranaas/petty/internal/arena"
	"github.com/sigmundgranaas/petty/internal/executor"
	"github.com/sigmundgranaas/petty/internal/fontprov"
	"github.com/sigmundgranaas/petty/internal/logging"
	"github.com/sigmundgranaas/petty/internal/paginate"
	"github.com/sigmundgranaas/petty/internal/perr"
	pdfrender "github.com/sigmundgranaas/petty/internal/render/pdf"
	"github.com/sigmundgranaas/petty/internal/rendertree"
	"github.com/sigmundgranaas/petty/internal/res"
	"github.com/sigmundgranaas/petty/internal/source"
	"github.com/sigmundgranaas/petty/internal/style"
	"github.com/sigmundgranaas/petty/internal/template"
)

// Converter is the main API: template source plus a data record in,
// a paginated PDF out. It wires together every stage of the pipeline
// (spec.md §1): template -> IDF -> style cascade -> RenderNode tree ->
// pagination -> PDF rendering.
type Converter struct {
	options   Options
	parser    template.Parser
	resources res.Provider
	log       *zap.Logger
}

// New creates a converter with default options.
func New() *Converter {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a converter with the given options.
func NewWithOptions(options Options) *Converter {
	loader := res.NewLoader("")
	for _, p := range options.ResourcePaths {
		loader.AddSearchPath(p)
	}
	return &Converter{
		options:   options,
		parser:    template.NewJSONParser(),
		resources: loader,
		log:       logging.New(options.Debug),
	}
}

// fontDirs returns a fresh slice combining the configured font
// directories with the template's own resource directory, never
// aliasing options.FontDirectories' backing array (the converter may
// be shared across concurrent conversions, e.g. ConvertBatch).
func (c *Converter) fontDirs(tmpl template.CompiledTemplate) []string {
	dirs := make([]string, 0, len(c.options.FontDirectories)+1)
	dirs = append(dirs, c.options.FontDirectories...)
	if base := tmpl.ResourceBasePath(); base != "" {
		dirs = append(dirs, base)
	}
	return dirs
}

func (c *Converter) docMeta() pdfrender.DocumentMeta {
	return pdfrender.DocumentMeta{
		Title:    c.options.Title,
		Author:   c.options.Author,
		Subject:  c.options.Subject,
		Keywords: c.options.Keywords,
		Creator:  c.options.Creator,
		Producer: c.options.Producer,
	}
}

// ConvertTemplate compiles templateSource (resources resolved relative
// to basePath), binds data and writes the resulting PDF to outputPath.
func (c *Converter) ConvertTemplate(templateSource, basePath string, data any, outputPath string) error {
	tmpl, err := c.parser.Parse(templateSource, basePath)
	if err != nil {
		return err
	}
	fonts := fontprov.NewRegistryProvider(c.fontDirs(tmpl))

	if c.options.TwoPass {
		return c.renderTwoPass(tmpl, fonts, data, outputPath)
	}
	return c.renderSinglePass(tmpl, fonts, data, outputPath)
}

// renderSinglePass builds the RenderNode tree once and paginates it
// straight to output (spec.md §4.8's common case).
func (c *Converter) renderSinglePass(tmpl template.CompiledTemplate, fonts fontprov.Provider, data any, outputPath string) error {
	renderer := pdfrender.NewFPDFRenderer(fonts, c.resources, c.log)
	pages, tables, err := c.layoutOnce(tmpl, fonts, renderer, data)
	if err != nil {
		return err
	}
	if err := renderer.BeginDocument(c.docMeta(), tables); err != nil {
		return err
	}
	return c.writePages(renderer, pages, outputPath)
}

// renderTwoPass runs a throwaway pass to resolve anchor page numbers,
// re-executes the template with those numbers available to it under
// the "pages" data key, then paginates and renders for real (spec.md
// §4.9's two-pass table-of-contents / forward-reference pipeline).
func (c *Converter) renderTwoPass(tmpl template.CompiledTemplate, fonts fontprov.Provider, data any, outputPath string) error {
	measuring := pdfrender.NewFPDFRenderer(fonts, c.resources, c.log)
	_, tables, err := c.layoutOnce(tmpl, fonts, measuring, data)
	if err != nil {
		return err
	}

	resolved := withPageTable(data, tables)

	renderer := pdfrender.NewFPDFRenderer(fonts, c.resources, c.log)
	pages, finalTables, err := c.layoutOnce(tmpl, fonts, renderer, resolved)
	if err != nil {
		return err
	}
	if err := renderer.BeginDocument(c.docMeta(), finalTables); err != nil {
		return err
	}
	return c.writePages(renderer, pages, outputPath)
}

// withPageTable merges a "pages" map of id -> 1-based page number into
// data so a re-executed template can substitute {{pages.someID}}.
func withPageTable(data any, tables *paginate.Tables) any {
	m, ok := data.(map[string]any)
	if !ok {
		return data
	}
	merged := make(map[string]any, len(m)+1)
	for k, v := range m {
		merged[k] = v
	}
	pages := make(map[string]any, len(tables.Anchors))
	for id := range tables.Anchors {
		if n, ok := tables.ResolvePageReference(id); ok {
			pages[id] = n
		}
	}
	merged["pages"] = pages
	return merged
}

// layoutOnce executes the template, builds the RenderNode tree and
// paginates it using measurer (typically the same FPDFRenderer that
// will go on to render the output, since fpdf.GetStringWidth needs a
// live document to measure against).
func (c *Converter) layoutOnce(tmpl template.CompiledTemplate, fonts fontprov.Provider, measurer rendertree.Measurer, data any) ([]paginate.Page, *paginate.Tables, error) {
	if r, ok := measurer.(*pdfrender.FPDFRenderer); ok {
		if err := r.BeginDocument(c.docMeta(), nil); err != nil {
			return nil, nil, err
		}
	}

	root, err := tmpl.Execute(data)
	if err != nil {
		return nil, nil, err
	}

	sheet := tmpl.Stylesheet()
	eng := style.NewEngine(sheet)
	ar := arena.New()
	tree := rendertree.Build(root, eng, ar, style.Default())

	env := &rendertree.Env{
		Measurer:  measurer,
		Fonts:     fonts,
		Resources: c.resources,
		Log:       c.log,
		OnOversizedSkip: func(kind, detail string) {
			c.log.Warn("oversized element skipped", zap.String("kind", kind), zap.String("detail", detail))
		},
	}
	paginator := paginate.NewPaginator(sheet, env)
	return paginator.Paginate(tree, "")
}

func (c *Converter) writePages(renderer *pdfrender.FPDFRenderer, pages []paginate.Page, outputPath string) error {
	for _, page := range pages {
		if err := renderer.WritePageObject(page); err != nil {
			return err
		}
		if err := renderer.RenderPageContent(page); err != nil {
			return err
		}
	}
	return renderer.Finish(outputPath)
}

// ConvertFile reads template source from templatePath (resources
// resolve relative to its directory) and writes outputPath.
func (c *Converter) ConvertFile(templatePath string, data any, outputPath string) error {
	src, err := os.ReadFile(templatePath)
	if err != nil {
		return perr.Wrap(perr.Resource, "read template file "+templatePath, err)
	}
	return c.ConvertTemplate(string(src), filepath.Dir(templatePath), data, outputPath)
}

// Convert binds data against templateSource and streams the resulting
// PDF bytes to output.
func (c *Converter) Convert(templateSource string, basePath string, data any, output io.Writer) error {
	tmp, err := os.CreateTemp("", "petty-*.pdf")
	if err != nil {
		return perr.Wrap(perr.Execution, "create temporary output file", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if err := c.ConvertTemplate(templateSource, basePath, data, tmp.Name()); err != nil {
		return err
	}
	if _, err := tmp.Seek(0, 0); err != nil {
		return perr.Wrap(perr.Execution, "seek temporary output file", err)
	}
	if _, err := io.Copy(output, tmp); err != nil {
		return perr.Wrap(perr.Execution, "copy PDF to output", err)
	}
	return nil
}

// ConvertBytes is Convert's byte-slice convenience form.
func (c *Converter) ConvertBytes(templateSource string, basePath string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Convert(templateSource, basePath, data, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BatchJob is one data record/output pair for ConvertBatch.
type BatchJob struct {
	Data       any
	OutputPath string
}

// ConvertBatch renders one PDF per job drawn from jobs, fanning out
// across a bounded goroutine pool (internal/executor). The source
// abstraction lets callers stream jobs from a channel or an iterator
// without pre-materializing the whole batch in memory, while the
// executor still needs a concrete slice to balance work across
// workers, so ConvertBatch drains jobs first.
func (c *Converter) ConvertBatch(templateSource, basePath string, jobs source.DataSource) ([]executor.Outcome[string], error) {
	tmpl, err := c.parser.Parse(templateSource, basePath)
	if err != nil {
		return nil, err
	}
	fonts := fontprov.NewRegistryProvider(c.fontDirs(tmpl))

	var drained []BatchJob
	for {
		v, ok := jobs.Next()
		if !ok {
			break
		}
		job, ok := v.(BatchJob)
		if !ok {
			return nil, perr.New(perr.Configuration, "batch source yielded a non-BatchJob value")
		}
		drained = append(drained, job)
	}

	exec := executor.NewPoolExecutor(c.options.Workers)
	outcomes := executor.ExecuteAllFallible(exec, drained, func(job BatchJob) (string, error) {
		if c.options.TwoPass {
			return job.OutputPath, c.renderTwoPass(tmpl, fonts, job.Data, job.OutputPath)
		}
		return job.OutputPath, c.renderSinglePass(tmpl, fonts, job.Data, job.OutputPath)
	})
	return outcomes, nil
}

// WithOptions returns a new converter with the specified options.
func (c *Converter) WithOptions(options Options) *Converter {
	return NewWithOptions(options)
}

// WithOption returns a new converter with the specified option applied.
func (c *Converter) WithOption(option Option) *Converter {
	newOptions := c.options
	option(&newOptions)
	return NewWithOptions(newOptions)
}

// AddResourcePath adds a path to search for resources.
func (c *Converter) AddResourcePath(path string) *Converter {
	newOptions := c.options
	newOptions.ResourcePaths = append(newOptions.ResourcePaths, path)
	return NewWithOptions(newOptions)
}

// AddFontDirectory adds a directory to search for fonts.
func (c *Converter) AddFontDirectory(dir string) *Converter {
	newOptions := c.options
	newOptions.FontDirectories = append(newOptions.FontDirectories, dir)
	return NewWithOptions(newOptions)
}

// SetDebug sets debug mode.
func (c *Converter) SetDebug(debug bool) *Converter {
	newOptions := c.options
	newOptions.Debug = debug
	return NewWithOptions(newOptions)
}

// SetTitle sets the document title.
func (c *Converter) SetTitle(title string) *Converter {
	newOptions := c.options
	newOptions.Title = title
	return NewWithOptions(newOptions)
}

// SetAuthor sets the document author.
func (c *Converter) SetAuthor(author string) *Converter {
	newOptions := c.options
	newOptions.Author = author
	return NewWithOptions(newOptions)
}
