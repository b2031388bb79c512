package res

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoaderLoadsLocalFileRelativeToBase(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "logo.png"), []byte("pngbytes"), 0o644))

	l := NewLoader(filepath.Join(dir, "index.json"))
	r, err := l.Load("logo.png")
	assert.NoError(t, err)
	assert.Equal(t, []byte("pngbytes"), r.Data)
	assert.Equal(t, ResourceTypeImage, r.Type)
}

func TestLoaderCachesLoadedResource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.css")
	assert.NoError(t, os.WriteFile(path, []byte("body{}"), 0o644))

	l := NewLoader(filepath.Join(dir, "index.json"))
	first, err := l.Load("data.css")
	assert.NoError(t, err)

	assert.NoError(t, os.WriteFile(path, []byte("changed"), 0o644))
	second, err := l.Load("data.css")
	assert.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLoaderFallsBackToSearchPaths(t *testing.T) {
	dir := t.TempDir()
	fontsDir := filepath.Join(dir, "fonts")
	assert.NoError(t, os.Mkdir(fontsDir, 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join(fontsDir, "brand.ttf"), []byte("fontbytes"), 0o644))

	l := NewLoader(filepath.Join(dir, "index.json"))
	l.AddSearchPath(fontsDir)

	r, err := l.Load("brand.ttf")
	assert.NoError(t, err)
	assert.Equal(t, []byte("fontbytes"), r.Data)
	assert.Equal(t, ResourceTypeFont, r.Type)
}

func TestLoaderParsesBase64DataURL(t *testing.T) {
	l := NewLoader("")
	// "hi" base64-encoded is "aGk="
	r, err := l.Load("data:text/plain;base64,aGk=")
	assert.NoError(t, err)
	assert.Equal(t, "hi", string(r.Data))
}

func TestLoaderParsesPlainDataURL(t *testing.T) {
	l := NewLoader("")
	r, err := l.Load("data:text/plain,Hello%20World")
	assert.NoError(t, err)
	assert.Equal(t, "Hello World", string(r.Data))
}

func TestLoaderMissingResourceReturnsError(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "index.json"))
	_, err := l.Load("nope.png")
	assert.Error(t, err)
	assert.False(t, l.Exists("nope.png"))
}

func TestMemoryProviderLoadAndExists(t *testing.T) {
	m := NewMemoryProvider()
	m.Put("logo", []byte("bytes"), "image/png")

	assert.True(t, m.Exists("logo"))
	r, err := m.Load("logo")
	assert.NoError(t, err)
	assert.Equal(t, ResourceTypeImage, r.Type)

	_, err = m.Load("missing")
	assert.Error(t, err)
	assert.False(t, m.Exists("missing"))
}
