package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unbounded marks a range that extends to the end of the record.
const Unbounded = math.MaxInt

// Range is an inclusive interval of 1-based positions.
// Start >= 1; End >= Start, or Unbounded for an open-ended range.
// Ranges are created only by ParseRangeList and never mutated afterwards.
type Range struct {
	Start int
	End   int
}

// Contains reports whether the 1-based position falls inside the range.
func (r Range) Contains(pos int) bool {
	return pos >= r.Start && pos <= r.End
}

// RangeSet is an ordered collection of ranges built once per invocation.
// Overlapping or duplicate ranges are permitted; membership is a union test,
// not a merge.
type RangeSet []Range

// Contains reports whether pos is selected by any range in the set.
// Linear scan with short-circuit; typical sets are tiny, so no interval
// structure is warranted.
func (rs RangeSet) Contains(pos int) bool {
	for _, r := range rs {
		if r.Contains(pos) {
			return true
		}
	}
	return false
}

// ParseRangeList parses a comma-separated range list into a RangeSet.
//
// Each token is one of:
//
//	N    position N
//	N-   position N to end of record
//	-M   position 1 through M
//	N-M  positions N through M, N <= M
//
// Positions are decimal and counted from 1. Empty lists, empty tokens,
// non-numeric values, zero, and inverted N-M tokens are rejected.
func ParseRangeList(list string) (RangeSet, error) {
	if list == "" {
		return nil, &OpError{
			Op:   "ranges.parse",
			Kind: KindRangeList,
			Err:  fmt.Errorf("empty range list: %w", ErrRangeList),
		}
	}

	tokens := strings.Split(list, ",")
	set := make(RangeSet, 0, len(tokens))

	for _, tok := range tokens {
		r, err := parseToken(tok)
		if err != nil {
			return nil, &OpError{
				Op:   "ranges.parse",
				Kind: KindRangeList,
				Path: tok,
				Err:  err,
			}
		}
		set = append(set, r)
	}

	return set, nil
}

func parseToken(tok string) (Range, error) {
	dash := strings.IndexByte(tok, '-')

	switch {
	case dash < 0:
		// N
		n, err := parsePosition(tok)
		if err != nil {
			return Range{}, err
		}
		return Range{Start: n, End: n}, nil

	case dash == 0:
		// -M
		m, err := parsePosition(tok[1:])
		if err != nil {
			return Range{}, err
		}
		return Range{Start: 1, End: m}, nil

	case dash == len(tok)-1:
		// N-
		n, err := parsePosition(tok[:dash])
		if err != nil {
			return Range{}, err
		}
		return Range{Start: n, End: Unbounded}, nil

	default:
		// N-M
		n, err := parsePosition(tok[:dash])
		if err != nil {
			return Range{}, err
		}
		m, err := parsePosition(tok[dash+1:])
		if err != nil {
			return Range{}, err
		}
		if n > m {
			return Range{}, fmt.Errorf("inverted range %d-%d: %w", n, m, ErrRangeList)
		}
		return Range{Start: n, End: m}, nil
	}
}

func parsePosition(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("missing position: %w", ErrRangeList)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q: %w", s, ErrRangeList)
	}
	if n < 1 {
		return 0, fmt.Errorf("positions are counted from 1, got %d: %w", n, ErrRangeList)
	}
	return n, nil
}
