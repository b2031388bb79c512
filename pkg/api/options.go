package api

// Options configures a Converter. It replaces the teacher's HTML-to-PDF
// Options with the settings the template/paginate/render pipeline
// needs: resource and font search paths, document metadata, and the
// ambient debug/concurrency knobs.
type Options struct {
	// Resource paths
	ResourcePaths   []string
	FontDirectories []string

	// Document metadata
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string

	// Debug enables verbose structured logging during conversion.
	Debug bool

	// Workers bounds the goroutine pool used for batch conversion
	// (internal/executor). 0 selects runtime.NumCPU().
	Workers int

	// TwoPass runs a throwaway first pagination pass to resolve page
	// references and heading anchors before the template is
	// re-executed and paginated for real (spec.md §4.9). Templates
	// with no {{pages.<id>}} references can skip it.
	TwoPass bool
}

// Option is a function that modifies Options.
type Option func(*Options)

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		ResourcePaths:   []string{},
		FontDirectories: []string{},
		Creator:         "petty",
		Producer:        "petty",
	}
}

// WithResourcePath adds a path to search for resources.
func WithResourcePath(path string) Option {
	return func(o *Options) {
		o.ResourcePaths = append(o.ResourcePaths, path)
	}
}

// WithFontDirectory adds a directory to search for fonts.
func WithFontDirectory(dir string) Option {
	return func(o *Options) {
		o.FontDirectories = append(o.FontDirectories, dir)
	}
}

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithAuthor sets the document author.
func WithAuthor(author string) Option {
	return func(o *Options) { o.Author = author }
}

// WithSubject sets the document subject.
func WithSubject(subject string) Option {
	return func(o *Options) { o.Subject = subject }
}

// WithKeywords sets the document keywords.
func WithKeywords(keywords string) Option {
	return func(o *Options) { o.Keywords = keywords }
}

// WithCreator sets the document creator metadata field.
func WithCreator(creator string) Option {
	return func(o *Options) { o.Creator = creator }
}

// WithProducer sets the document producer metadata field.
func WithProducer(producer string) Option {
	return func(o *Options) { o.Producer = producer }
}

// WithDebug sets debug mode.
func WithDebug(debug bool) Option {
	return func(o *Options) { o.Debug = debug }
}

// WithWorkers bounds the batch-conversion worker pool size.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithTwoPass enables the first-pass/rebuild/second-pass pipeline for
// resolving forward page references and a table of contents.
func WithTwoPass(enabled bool) Option {
	return func(o *Options) { o.TwoPass = enabled }
}
