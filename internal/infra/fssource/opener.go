// Package fssource opens input sources from the filesystem, with "-"
// standing in for standard input.
package fssource

import (
	"io"
	"os"

	"github.com/jmendive/slicer/internal/domain"
)

// StdinName is the display name used for standard input.
const StdinName = "standard input"

// Opener implements ports.SourceOpener over the filesystem.
// Stdin is swappable for tests.
type Opener struct {
	Stdin io.Reader
}

func NewOpener() *Opener {
	return &Opener{Stdin: os.Stdin}
}

func (o *Opener) Open(name string) (io.ReadCloser, string, error) {
	if name == "" || name == "-" {
		return io.NopCloser(o.Stdin), StdinName, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, "", &domain.OpError{
			Op:   "source.open",
			Kind: domain.KindSourceIO,
			Path: name,
			Err:  err,
		}
	}
	return f, name, nil
}
