package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrUsage     = errors.New("usage error")
	ErrRangeList = errors.New("invalid range list")
	ErrSourceIO  = errors.New("source error")
	ErrSinkIO    = errors.New("output error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindUsage     ErrorKind = "usage"
	KindRangeList ErrorKind = "range_list"
	KindSourceIO  ErrorKind = "source_io"
	KindSinkIO    ErrorKind = "sink_io"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant source path or offending token
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// UsageError builds the fatal pre-I/O error used for conflicting or missing
// flags.
func UsageError(op, msg string) error {
	return &OpError{Op: op, Kind: KindUsage, Err: errors.New(msg)}
}
