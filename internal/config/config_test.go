package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecodesFullConfig(t *testing.T) {
	yamlSrc := []byte(`
resource_paths:
  - ./assets
font_directories:
  - ./fonts
debug: true
workers: 4
two_pass: true
document:
  title: Quarterly Report
  author: Finance Team
`)
	cfg, err := Parse(yamlSrc)
	require.NoError(t, err)

	assert.Equal(t, []string{"./assets"}, cfg.ResourcePaths)
	assert.Equal(t, []string{"./fonts"}, cfg.FontDirectories)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.TwoPass)
	assert.Equal(t, "Quarterly Report", cfg.Document.Title)
	assert.Equal(t, "Finance Team", cfg.Document.Author)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("unknown_field: true\n"))
	assert.Error(t, err)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("not: [valid: yaml"))
	assert.Error(t, err)
}

func TestLoadReadsFileFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "petty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 2\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestToOptionsOverlaysOntoDefaults(t *testing.T) {
	cfg := &Config{
		ResourcePaths:   []string{"./assets"},
		FontDirectories: []string{"./fonts"},
		Debug:           true,
		Workers:         3,
		TwoPass:         true,
		Document:        DocumentConfig{Title: "Invoice", Author: "Billing"},
	}

	opts := cfg.ToOptions()
	assert.Contains(t, opts.ResourcePaths, "./assets")
	assert.Contains(t, opts.FontDirectories, "./fonts")
	assert.True(t, opts.Debug)
	assert.Equal(t, 3, opts.Workers)
	assert.True(t, opts.TwoPass)
	assert.Equal(t, "Invoice", opts.Title)
	assert.Equal(t, "Billing", opts.Author)
	// Creator/Producer fall back to DefaultOptions since the config left them empty.
	assert.Equal(t, "petty", opts.Creator)
	assert.Equal(t, "petty", opts.Producer)
}

func TestToOptionsLeavesDocumentFieldsAtDefaultWhenUnset(t *testing.T) {
	cfg := &Config{}
	opts := cfg.ToOptions()
	assert.Empty(t, opts.Title)
	assert.Equal(t, "petty", opts.Creator)
}
