package res

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sigmundgranaas/petty/internal/perr"
)

// FilesystemProvider loads resources relative to a base directory,
// adapted from crates/resource/src/filesystem.rs's
// resolve_path_safe: absolute paths are rejected outright, and a
// resolved path must stay within the canonicalized base directory, so
// a template cannot reach outside the directory it was loaded from
// (e.g. "../../../etc/passwd").
type FilesystemProvider struct {
	Base          string
	canonicalBase string
}

// NewFilesystemProvider roots resource loading at base. base is
// canonicalized eagerly so every subsequent load is a cheap prefix
// check rather than a fresh symlink walk.
func NewFilesystemProvider(base string) *FilesystemProvider {
	fp := &FilesystemProvider{Base: base}
	if abs, err := filepath.Abs(base); err == nil {
		if real, err := filepath.EvalSymlinks(abs); err == nil {
			fp.canonicalBase = real
		} else {
			fp.canonicalBase = abs
		}
	}
	return fp
}

// resolveSafe mirrors resolve_path_safe: reject absolute input,
// canonicalize and verify containment within the base, falling back
// to a syntactic ".." component check when the target doesn't exist
// yet to canonicalize.
func (f *FilesystemProvider) resolveSafe(path string) (string, bool) {
	if filepath.IsAbs(path) {
		return "", false
	}

	full := filepath.Join(f.Base, path)

	if real, err := filepath.EvalSymlinks(full); err == nil {
		if f.canonicalBase == "" {
			return "", false
		}
		rel, err := filepath.Rel(f.canonicalBase, real)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return "", false
		}
		return real, true
	}

	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".." {
			return "", false
		}
	}
	return full, true
}

// Exists reports whether path resolves to a readable file within the
// provider's base directory.
func (f *FilesystemProvider) Exists(path string) bool {
	full, ok := f.resolveSafe(path)
	if !ok {
		return false
	}
	_, err := os.Stat(full)
	return err == nil
}

// Load implements Provider.
func (f *FilesystemProvider) Load(path string) (*Resource, error) {
	full, ok := f.resolveSafe(path)
	if !ok {
		return nil, perr.New(perr.Resource, "path traversal blocked: "+path)
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return nil, perr.Wrap(perr.Resource, "load "+path, err)
	}

	r := &Resource{URL: path, Data: data}
	r.MimeType = determineMimeType(path)
	r.Type = determineResourceType(r.MimeType, path)
	return r, nil
}
