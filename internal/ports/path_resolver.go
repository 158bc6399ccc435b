package ports

import "github.com/jmendive/slicer/internal/domain"

// PathResolver resolves a path to canonical absolute form.
type PathResolver interface {
	Resolve(path string, mode domain.ResolveMode) (string, error)
}
