// Package config loads a YAML configuration file into an api.Options
// value, a simplified cousin of the teacher's config/cfg.go: the same
// strict gopkg.in/yaml.v3 decoding idiom (KnownFields so a typo'd key
// fails loudly), without the teacher's templating/sanitize/validate
// framework, which has no home here since the functional-options
// surface on api.Options already owns validation-by-construction.
package config

import (
	"bytes"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/sigmundgranaas/petty/internal/perr"
	"github.com/sigmundgranaas/petty/pkg/api"
)

// DocumentConfig mirrors the document-metadata fields of api.Options.
type DocumentConfig struct {
	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	Subject  string `yaml:"subject"`
	Keywords string `yaml:"keywords"`
	Creator  string `yaml:"creator"`
	Producer string `yaml:"producer"`
}

// Config is the on-disk shape of a petty YAML configuration file.
type Config struct {
	ResourcePaths   []string       `yaml:"resource_paths"`
	FontDirectories []string       `yaml:"font_directories"`
	Debug           bool           `yaml:"debug"`
	Workers         int            `yaml:"workers"`
	TwoPass         bool           `yaml:"two_pass"`
	Document        DocumentConfig `yaml:"document"`
}

// Load reads and decodes a Config from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.Wrap(perr.Configuration, "read configuration file "+path, err)
	}
	return Parse(data)
}

// Parse decodes a Config from YAML bytes. Unknown fields are rejected
// rather than silently ignored, the same strictness the teacher's
// config/cfg.go applies via dec.KnownFields(true).
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, perr.Wrap(perr.Configuration, "decode YAML configuration", err)
	}
	return cfg, nil
}

// ToOptions overlays the loaded configuration on top of
// api.DefaultOptions(), the secondary, convenience path onto Options;
// the functional-options builder remains the primary construction
// route for callers embedding petty as a library.
func (c *Config) ToOptions() api.Options {
	opts := api.DefaultOptions()
	opts.ResourcePaths = append(opts.ResourcePaths, c.ResourcePaths...)
	opts.FontDirectories = append(opts.FontDirectories, c.FontDirectories...)
	opts.Debug = c.Debug
	opts.Workers = c.Workers
	opts.TwoPass = c.TwoPass
	if c.Document.Title != "" {
		opts.Title = c.Document.Title
	}
	if c.Document.Author != "" {
		opts.Author = c.Document.Author
	}
	if c.Document.Subject != "" {
		opts.Subject = c.Document.Subject
	}
	if c.Document.Keywords != "" {
		opts.Keywords = c.Document.Keywords
	}
	if c.Document.Creator != "" {
		opts.Creator = c.Document.Creator
	}
	if c.Document.Producer != "" {
		opts.Producer = c.Document.Producer
	}
	return opts
}
