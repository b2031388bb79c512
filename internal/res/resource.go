// Package res loads the byte resources a document references: images,
// fonts, stylesheets and included HTML fragments (spec.md §6). Loading
// is split behind a Provider interface so a sandboxed filesystem root,
// an in-memory map of embedded assets, and the network/data-URL Loader
// below can all serve the same pipeline code.
package res

import "bytes"

// ResourceType classifies a loaded resource by its MIME type.
type ResourceType int

const (
	ResourceTypeUnknown ResourceType = iota
	ResourceTypeImage
	ResourceTypeFont
	ResourceTypeCSS
	ResourceTypeOther
)

// Resource is one loaded byte blob plus the metadata needed to decode it.
type Resource struct {
	URL      string
	Type     ResourceType
	Data     []byte
	MimeType string
}

// GetReader returns a reader over the resource's bytes.
func (r *Resource) GetReader() *bytes.Reader {
	return bytes.NewReader(r.Data)
}

// GetString returns the resource data decoded as a string.
func (r *Resource) GetString() string {
	return string(r.Data)
}

// Provider loads a resource identified by a logical path or URL.
// Template-referenced images, fonts and stylesheets are all resolved
// through a Provider, which lets the pipeline choose a guarded
// filesystem root, an embedded in-memory set, or a caching HTTP/file
// loader without the rest of the code caring which.
type Provider interface {
	Load(path string) (*Resource, error)
	Exists(path string) bool
}
