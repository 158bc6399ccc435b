package domain

import "testing"

func mustRanges(t *testing.T, list string) RangeSet {
	t.Helper()
	set, err := ParseRangeList(list)
	if err != nil {
		t.Fatalf("ParseRangeList(%q): %v", list, err)
	}
	return set
}

// --- CutBytes ---

func TestCutBytes_Prefix(t *testing.T) {
	got := CutBytes([]byte("hello"), mustRanges(t, "1-3"))
	if string(got) != "hel" {
		t.Fatalf("expected %q, got %q", "hel", got)
	}
}

func TestCutBytes_FullRangeIsIdentity(t *testing.T) {
	in := "a\tb:c with spaces"
	got := CutBytes([]byte(in), mustRanges(t, "1-"))
	if string(got) != in {
		t.Fatalf("1- must reproduce the record, got %q", got)
	}
}

func TestCutBytes_OrderFollowsInputNotList(t *testing.T) {
	got := CutBytes([]byte("abc"), mustRanges(t, "3,1"))
	if string(got) != "ac" {
		t.Fatalf("expected %q, got %q", "ac", got)
	}
}

func TestCutBytes_PositionsPastEnd(t *testing.T) {
	got := CutBytes([]byte("ab"), mustRanges(t, "5-9"))
	if string(got) != "" {
		t.Fatalf("expected empty selection, got %q", got)
	}
}

// --- CutChars ---

func TestCutChars_ByteOrientedMatchesBytes(t *testing.T) {
	// 'é' is two bytes in UTF-8; byte-oriented addressing splits it.
	got := CutChars("héllo", mustRanges(t, "1-3"), ByteOriented)
	want := string([]byte("héllo")[:3])
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCutChars_CodepointOriented(t *testing.T) {
	got := CutChars("héllo", mustRanges(t, "1-3"), CodepointOriented)
	if got != "hél" {
		t.Fatalf("expected %q, got %q", "hél", got)
	}
}

func TestCutChars_CodepointOrientedKeepsClustersWhole(t *testing.T) {
	// The flag emoji is a single user-perceived character.
	got := CutChars("🇪🇸ab", mustRanges(t, "1,3"), CodepointOriented)
	if got != "🇪🇸b" {
		t.Fatalf("expected %q, got %q", "🇪🇸b", got)
	}
}

// --- SplitFields / CutFields ---

func TestSplitFields_EmptyFieldsPreserved(t *testing.T) {
	got := SplitFields("a::b:", ":")
	want := []string{"a", "", "b", ""}
	if len(got) != len(want) {
		t.Fatalf("expected %d fields, got %d (%q)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d = %q, want %q", i+1, got[i], want[i])
		}
	}
}

func TestSplitFields_NoDelimiterIsOneField(t *testing.T) {
	got := SplitFields("plain", ":")
	if len(got) != 1 || got[0] != "plain" {
		t.Fatalf("expected the whole record as one field, got %q", got)
	}
}

func TestCutFields_SingleField(t *testing.T) {
	got := CutFields("a:b:c", ":", mustRanges(t, "2"))
	if got != "b" {
		t.Fatalf("expected %q, got %q", "b", got)
	}
}

func TestCutFields_RejoinsWithDelimiter(t *testing.T) {
	got := CutFields("a:b:c", ":", mustRanges(t, "1,3"))
	if got != "a:c" {
		t.Fatalf("expected %q, got %q", "a:c", got)
	}
}

func TestCutFields_OpenRange(t *testing.T) {
	got := CutFields("a:b:c", ":", mustRanges(t, "2-"))
	if got != "b:c" {
		t.Fatalf("expected %q, got %q", "b:c", got)
	}
}

func TestCutFields_InputOrderRegardlessOfListOrder(t *testing.T) {
	got := CutFields("a:b:c", ":", mustRanges(t, "3,1"))
	if got != "a:c" {
		t.Fatalf("expected %q (input order), got %q", "a:c", got)
	}
}

func TestCutFields_NothingSelectedIsEmpty(t *testing.T) {
	got := CutFields("a:b", ":", mustRanges(t, "9"))
	if got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
