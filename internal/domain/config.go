package domain

import (
	"fmt"
	"unicode/utf8"
)

// Terminator values for OutputPolicy.
const (
	TermNewline byte = '\n'
	TermNul     byte = 0
)

// OutputPolicy governs record re-assembly on the output side.
type OutputPolicy struct {
	LineTerminator      byte
	SuppressUndelimited bool
}

// CutConfig is the immutable configuration for one cut invocation.
// It is constructed once from validated input and shared read-only with the
// stream processor.
type CutConfig struct {
	Mode      SelectionMode
	Ranges    RangeSet
	Delimiter string // single character, Fields mode only
	Chars     CharHandling
	Output    OutputPolicy
}

// Validate checks the cross-field invariants the flag layer cannot express.
func (c CutConfig) Validate() error {
	switch c.Mode {
	case ModeBytes, ModeCharacters, ModeFields:
	default:
		return UsageError("cut", "you must specify a list of bytes, characters, or fields")
	}
	if len(c.Ranges) == 0 {
		return &OpError{
			Op:   "cut",
			Kind: KindRangeList,
			Err:  fmt.Errorf("empty range list: %w", ErrRangeList),
		}
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return UsageError("cut", "the delimiter must be a single character")
	}
	return nil
}

// HeaderMode controls per-file headers in head output.
type HeaderMode string

const (
	HeadersAuto   HeaderMode = "auto" // headers when more than one file
	HeadersNever  HeaderMode = "never"
	HeadersAlways HeaderMode = "always"
)

// HeadConfig is the immutable configuration for one head invocation.
type HeadConfig struct {
	Lines   int64
	Headers HeaderMode
}

func (c HeadConfig) Validate() error {
	if c.Lines <= 0 {
		return UsageError("head", fmt.Sprintf("invalid number of lines: '%d'", c.Lines))
	}
	return nil
}

// ResolveMode selects how realpath treats missing path components.
type ResolveMode string

const (
	ResolveDefault     ResolveMode = "default"       // resolution must succeed
	ResolveMustExist   ResolveMode = "must_exist"    // all components must exist
	ResolveMayNotExist ResolveMode = "may_not_exist" // fall back to lexical joining
)

// RealpathConfig is the immutable configuration for one realpath invocation.
type RealpathConfig struct {
	Mode       ResolveMode
	Quiet      bool
	Terminator byte
}

// Defaults is the tunable subset of configuration that may come from an
// optional slicer.yaml; flags always override it.
type Defaults struct {
	CutDelimiter string
	HeadLines    int64
}

// DefaultConfig provides the built-in defaults used when no slicer.yaml is
// found or when it is partially missing.
func DefaultConfig() Defaults {
	return Defaults{
		CutDelimiter: "\t",
		HeadLines:    10,
	}
}
