package domain

// SelectionMode is the addressing unit a range list applies to.
type SelectionMode string

const (
	ModeBytes      SelectionMode = "bytes"
	ModeCharacters SelectionMode = "characters"
	ModeFields     SelectionMode = "fields"
)

// CharHandling selects how Characters mode decomposes a record.
type CharHandling string

const (
	// ByteOriented treats every byte as one character; this matches the
	// historical behavior of the original tool and is the default.
	ByteOriented CharHandling = "byte_oriented"
	// CodepointOriented segments the record into user-perceived characters
	// (grapheme clusters).
	CodepointOriented CharHandling = "codepoint_oriented"
)
