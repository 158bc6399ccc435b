package ports

import "io"

// SourceOpener opens a named input source. The name "-" (or "") denotes
// standard input. The returned display name is what user-facing output, such
// as head's per-file headers, should call the source.
type SourceOpener interface {
	Open(name string) (r io.ReadCloser, displayName string, err error)
}
