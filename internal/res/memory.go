package res

import "fmt"

// MemoryProvider serves resources from an in-memory map keyed by a
// logical name. Useful for embedded assets and for tests that need a
// resource provider with no filesystem or network access at all.
type MemoryProvider struct {
	entries map[string]*Resource
}

// NewMemoryProvider returns an empty MemoryProvider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{entries: make(map[string]*Resource)}
}

// Put registers data under key, with its resource type inferred from
// mimeType and key's extension.
func (m *MemoryProvider) Put(key string, data []byte, mimeType string) {
	r := &Resource{URL: key, Data: data, MimeType: mimeType}
	r.Type = determineResourceType(mimeType, key)
	m.entries[key] = r
}

// Load implements Provider.
func (m *MemoryProvider) Load(path string) (*Resource, error) {
	r, ok := m.entries[path]
	if !ok {
		return nil, fmt.Errorf("resource not found: %s", path)
	}
	return r, nil
}

// Exists implements Provider.
func (m *MemoryProvider) Exists(path string) bool {
	_, ok := m.entries[path]
	return ok
}
