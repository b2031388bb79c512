package fontprov

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sigmundgranaas/petty/internal/style"
)

func writeFontFile(t *testing.T, dir, name string) {
	t.Helper()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("stub"), 0o644))
}

func TestRegistryProviderResolvesExactWeightStyleMatch(t *testing.T) {
	dir := t.TempDir()
	writeFontFile(t, dir, "OpenSans-Regular.ttf")
	writeFontFile(t, dir, "OpenSans-BoldItalic.ttf")

	p := NewRegistryProvider([]string{dir})

	info, ok := p.Resolve("OpenSans", style.WeightBold, style.FontStyleItalic)
	assert.True(t, ok)
	assert.Equal(t, style.WeightBold, info.Weight)
	assert.Equal(t, style.FontStyleItalic, info.Style)
	assert.Contains(t, info.Path, "OpenSans-BoldItalic.ttf")
}

func TestRegistryProviderFallsBackToCoreFont(t *testing.T) {
	p := NewRegistryProvider(nil)

	info, ok := p.Resolve("Times New Roman", style.WeightRegular, style.FontStyleNormal)
	assert.True(t, ok)
	assert.Equal(t, "Times", info.CoreName)
	assert.Empty(t, info.Path)
}

func TestRegistryProviderFallsBackToDefaultWhenUnknownFamily(t *testing.T) {
	p := NewRegistryProvider(nil)

	info, ok := p.Resolve("SomeUnregisteredFont", style.WeightRegular, style.FontStyleNormal)
	assert.False(t, ok)
	assert.Equal(t, DefaultFamily, info.CoreName)
}

func TestRegistryProviderSkipsUnreadableDirectory(t *testing.T) {
	assert.NotPanics(t, func() {
		NewRegistryProvider([]string{"/nonexistent/path/for/petty/tests"})
	})
}

func TestParseFontFilenameRecognizesWeightAndStyleSuffixes(t *testing.T) {
	cases := []struct {
		base       string
		wantFamily string
		wantWeight style.FontWeight
		wantStyle  style.FontStyle
	}{
		{"OpenSans-Regular", "OpenSans", style.WeightRegular, style.FontStyleNormal},
		{"OpenSans-Bold", "OpenSans", style.WeightBold, style.FontStyleNormal},
		{"OpenSans-Italic", "OpenSans", style.WeightRegular, style.FontStyleItalic},
		{"OpenSans-BoldItalic", "OpenSans", style.WeightBold, style.FontStyleItalic},
		{"OpenSans-Light", "OpenSans", style.WeightLight, style.FontStyleNormal},
		{"Roboto", "Roboto", style.WeightRegular, style.FontStyleNormal},
	}
	for _, c := range cases {
		family, weight, fs := parseFontFilename(c.base)
		assert.Equal(t, c.wantFamily, family, c.base)
		assert.Equal(t, c.wantWeight, weight, c.base)
		assert.Equal(t, c.wantStyle, fs, c.base)
	}
}
