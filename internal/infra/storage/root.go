// Package storage confines document files to a single base directory.
// Every stored path is treated as hostile input and must pass three
// independent gates before touching the filesystem.
package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"praxis/config"

	"github.com/pkg/errors"
)

// ErrPathRejected is returned for any path that fails a gate. Callers map it
// to the same response as an authorization failure, so probing with crafted
// paths reveals nothing about the directory layout.
var ErrPathRejected = errors.New("path rejected")

// Root is the storage boundary. All document paths resolve relative to it.
type Root struct {
	base string
}

// NewRoot validates the configured root and returns the boundary. The root
// must be an absolute path; a relative root would make containment depend on
// the process working directory.
func NewRoot(cfg *config.Config) (*Root, error) {
	base := cfg.Storage.Root
	if base == "" {
		return nil, errors.New("storage root is not configured")
	}
	if !filepath.IsAbs(base) {
		return nil, errors.Errorf("storage root must be absolute: %q", base)
	}

	return &Root{base: filepath.Clean(base)}, nil
}

// Base returns the absolute base directory.
func (r *Root) Base() string {
	return r.base
}

// Resolve runs the stored path through all three gates and returns the
// absolute on-disk location. Each gate stands alone: a bypass of one is still
// caught by the others.
//
// Gate 1 rejects any path containing a ".." segment, under either separator.
// Gate 2 rejects absolute inputs, including Windows volume forms.
// Gate 3 joins, canonicalizes and verifies the result stays strictly below
// the root; resolving to the root itself is rejected.
func (r *Root) Resolve(stored string) (string, error) {
	if stored == "" {
		return "", ErrPathRejected
	}

	if hasParentSegment(stored) {
		return "", ErrPathRejected
	}

	if filepath.IsAbs(stored) || strings.HasPrefix(stored, "/") || strings.HasPrefix(stored, `\`) || hasVolume(stored) {
		return "", ErrPathRejected
	}

	joined := filepath.Join(r.base, filepath.FromSlash(stored))
	resolved, err := filepath.Abs(joined)
	if err != nil {
		return "", ErrPathRejected
	}
	rel, err := filepath.Rel(r.base, resolved)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrPathRejected
	}

	return resolved, nil
}

// hasParentSegment reports whether any slash- or backslash-delimited segment
// of the path is exactly "..".
func hasParentSegment(path string) bool {
	normalized := strings.ReplaceAll(path, `\`, "/")
	for _, segment := range strings.Split(normalized, "/") {
		if segment == ".." {
			return true
		}
	}

	return false
}

// hasVolume catches Windows drive prefixes such as "C:" that filepath.IsAbs
// does not flag on other platforms.
func hasVolume(path string) bool {
	return len(path) >= 2 && path[1] == ':' &&
		(('a' <= path[0] && path[0] <= 'z') || ('A' <= path[0] && path[0] <= 'Z'))
}

// Open resolves the stored path and opens the file for reading.
func (r *Root) Open(stored string) (*os.File, error) {
	resolved, err := r.Resolve(stored)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open document file")
	}

	return file, nil
}

// Save resolves the stored path, creates parent directories under the root
// and writes the content. Returns the number of bytes written.
func (r *Root) Save(stored string, content io.Reader) (int64, error) {
	resolved, err := r.Resolve(stored)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o750); err != nil {
		return 0, errors.Wrap(err, "failed to create document directory")
	}

	file, err := os.OpenFile(resolved, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o640)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create document file")
	}
	defer file.Close()

	written, err := io.Copy(file, content)
	if err != nil {
		return 0, errors.Wrap(err, "failed to write document file")
	}

	return written, nil
}

// Remove resolves the stored path and deletes the file. A missing file is
// not an error, so cleanup after a cascade is idempotent.
func (r *Root) Remove(stored string) error {
	resolved, err := r.Resolve(stored)
	if err != nil {
		return err
	}

	if err := os.Remove(resolved); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove document file")
	}

	return nil
}
