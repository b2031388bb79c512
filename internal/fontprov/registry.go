package fontprov

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sigmundgranaas/petty/internal/style"
)

// coreFamilies maps family names onto fpdf's built-in Type1 fonts,
// always available without embedding a file. DefaultFamily resolves to
// Helvetica unless overridden.
const DefaultFamily = "Helvetica"

var coreFamilies = map[string]string{
	"helvetica":       "Helvetica",
	"arial":           "Helvetica",
	"times":           "Times",
	"times new roman": "Times",
	"courier":         "Courier",
}

type face struct {
	path   string
	weight style.FontWeight
	style  style.FontStyle
}

// RegistryProvider indexes .ttf/.otf files under a set of directories
// (adapted from the teacher's FontDirectories renderer option) by the
// family/weight/style encoded in each file's name, e.g.
// "OpenSans-BoldItalic.ttf" registers family "OpenSans" at bold
// weight and italic style. Requests that match nothing in the
// registry fall back to an fpdf core font.
type RegistryProvider struct {
	families map[string][]face
	Default  string
}

// NewRegistryProvider scans dirs for font files. Unreadable
// directories are skipped rather than treated as fatal, since a
// missing optional font directory shouldn't abort a render.
func NewRegistryProvider(dirs []string) *RegistryProvider {
	p := &RegistryProvider{families: make(map[string][]face), Default: DefaultFamily}
	for _, dir := range dirs {
		p.scan(dir)
	}
	return p
}

func (p *RegistryProvider) scan(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".ttf" && ext != ".otf" {
			continue
		}
		family, weight, fs := parseFontFilename(strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
		key := strings.ToLower(family)
		p.families[key] = append(p.families[key], face{
			path:   filepath.Join(dir, e.Name()),
			weight: weight,
			style:  fs,
		})
	}
}

// parseFontFilename splits a font file's base name into family and a
// style/weight suffix, e.g. "OpenSans-BoldItalic" -> ("OpenSans",
// bold, italic). Files with no recognized suffix are treated as
// regular weight, normal style.
func parseFontFilename(base string) (string, style.FontWeight, style.FontStyle) {
	parts := strings.SplitN(base, "-", 2)
	family := parts[0]
	weight := style.WeightRegular
	fs := style.FontStyleNormal
	if len(parts) < 2 {
		return family, weight, fs
	}
	suffix := strings.ToLower(parts[1])
	switch {
	case strings.Contains(suffix, "thin"):
		weight = style.WeightThin
	case strings.Contains(suffix, "light"):
		weight = style.WeightLight
	case strings.Contains(suffix, "medium"):
		weight = style.WeightMedium
	case strings.Contains(suffix, "black"):
		weight = style.WeightBlack
	case strings.Contains(suffix, "bold"):
		weight = style.WeightBold
	}
	if strings.Contains(suffix, "italic") {
		fs = style.FontStyleItalic
	} else if strings.Contains(suffix, "oblique") {
		fs = style.FontStyleOblique
	}
	return family, weight, fs
}

// Resolve implements Provider. If the requested family has registered
// faces, one of them is always returned: the first face with the best
// score, where a matching style counts 2 and a matching bold/not-bold
// weight counts 1 (exact numeric weights are not compared). A family
// with no registered faces resolves to a core font under the same
// family name, and failing that to Default.
func (p *RegistryProvider) Resolve(family string, weight style.FontWeight, fs style.FontStyle) (*FontInfo, bool) {
	key := strings.ToLower(family)
	if faces, ok := p.families[key]; ok {
		if f := bestFace(faces, weight, fs); f != nil {
			return &FontInfo{Family: family, Style: f.style, Weight: f.weight, Path: f.path}, true
		}
	}

	if core, ok := coreFamilies[key]; ok {
		return &FontInfo{Family: family, Style: fs, Weight: weight, CoreName: core}, true
	}

	def := p.Default
	if def == "" {
		def = DefaultFamily
	}
	return &FontInfo{Family: def, Style: fs, Weight: weight, CoreName: def}, false
}

func bestFace(faces []face, weight style.FontWeight, fs style.FontStyle) *face {
	var best *face
	bestScore := -1
	for i := range faces {
		f := &faces[i]
		score := 0
		if f.style == fs {
			score += 2
		}
		wantBold := weight.IsBold()
		if f.weight.IsBold() == wantBold {
			score += 1
		}
		if score > bestScore {
			bestScore = score
			best = f
		}
	}
	return best
}
