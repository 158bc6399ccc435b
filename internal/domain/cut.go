package domain

import (
	"strings"

	"github.com/jmendive/slicer/internal/textseg"
)

// CutBytes keeps the bytes of record whose 1-based positions are selected.
// The record carries no terminator; kept bytes are concatenated with no
// separator.
func CutBytes(record []byte, set RangeSet) []byte {
	out := make([]byte, 0, len(record))
	for i, b := range record {
		if set.Contains(i + 1) {
			out = append(out, b)
		}
	}
	return out
}

// CutChars keeps the characters of record whose 1-based positions are
// selected. ByteOriented handling is identical to CutBytes; CodepointOriented
// addresses user-perceived characters.
func CutChars(record string, set RangeSet, handling CharHandling) string {
	if handling != CodepointOriented {
		return string(CutBytes([]byte(record), set))
	}

	var sb strings.Builder
	for i, ch := range textseg.Split(record) {
		if set.Contains(i + 1) {
			sb.WriteString(ch)
		}
	}
	return sb.String()
}

// SplitFields decomposes a record into 1-indexed fields on every occurrence
// of the delimiter. Consecutive delimiters yield empty fields; a record with
// no delimiter is a single field spanning the whole record.
func SplitFields(record, delimiter string) []string {
	return strings.Split(record, delimiter)
}

// CutFields keeps the fields of record whose 1-based indices are selected and
// rejoins them with the same delimiter, in input order, with no trailing
// delimiter. Records without the delimiter are the caller's concern
// (suppression policy); here they are simply one field.
func CutFields(record, delimiter string, set RangeSet) string {
	fields := SplitFields(record, delimiter)
	kept := make([]string, 0, len(fields))
	for i, f := range fields {
		if set.Contains(i + 1) {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, delimiter)
}
