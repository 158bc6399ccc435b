// Package pathresolver canonicalizes paths against the real filesystem.
package pathresolver

import (
	"os"
	"path/filepath"

	"github.com/jmendive/slicer/internal/domain"
)

// Resolver implements ports.PathResolver. Getwd is swappable for tests.
type Resolver struct {
	Getwd func() (string, error)
}

func NewResolver() *Resolver {
	return &Resolver{Getwd: os.Getwd}
}

// Resolve returns the canonical absolute form of path, with all symlinks
// resolved. Under ResolveMayNotExist a failed resolution falls back to a
// lexical join with the working directory; the other modes require the path
// to exist.
func (r *Resolver) Resolve(path string, mode domain.ResolveMode) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", r.wrap(path, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}

	if mode != domain.ResolveMayNotExist {
		return "", r.wrap(path, err)
	}

	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	wd, werr := r.Getwd()
	if werr != nil {
		return "", r.wrap(path, werr)
	}
	return filepath.Join(wd, path), nil
}

func (r *Resolver) wrap(path string, err error) error {
	return &domain.OpError{
		Op:   "realpath.resolve",
		Kind: domain.KindSourceIO,
		Path: path,
		Err:  err,
	}
}
