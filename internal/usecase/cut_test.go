package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/jmendive/slicer/internal/domain"
)

// fakeOpener serves named sources from memory; unknown names fail to open.
type fakeOpener struct {
	sources map[string]string
}

func (f *fakeOpener) Open(name string) (io.ReadCloser, string, error) {
	content, ok := f.sources[name]
	if !ok {
		return nil, "", &domain.OpError{
			Op:   "source.open",
			Kind: domain.KindSourceIO,
			Path: name,
			Err:  fmt.Errorf("open %s: no such file or directory", name),
		}
	}
	display := name
	if name == "-" {
		display = "standard input"
	}
	return io.NopCloser(strings.NewReader(content)), display, nil
}

// failingWriter fails every write, standing in for a broken output sink.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func cutConfig(t *testing.T, mode domain.SelectionMode, list, delim string) domain.CutConfig {
	t.Helper()
	ranges, err := domain.ParseRangeList(list)
	if err != nil {
		t.Fatalf("ParseRangeList(%q): %v", list, err)
	}
	return domain.CutConfig{
		Mode:      mode,
		Ranges:    ranges,
		Delimiter: delim,
		Chars:     domain.ByteOriented,
		Output:    domain.OutputPolicy{LineTerminator: domain.TermNewline},
	}
}

func runCut(t *testing.T, cfg domain.CutConfig, sources map[string]string, args []string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	uc := NewCut(cfg, &fakeOpener{sources: sources}, nil)
	err := uc.Execute(context.Background(), &out, &errOut, args)
	return out.String(), errOut.String(), err
}

// --- Fields mode ---

func TestCut_FieldsSingle(t *testing.T) {
	cfg := cutConfig(t, domain.ModeFields, "2", ":")
	out, _, err := runCut(t, cfg, map[string]string{"-": "a:b:c\n"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "b\n" {
		t.Fatalf("expected %q, got %q", "b\n", out)
	}
}

func TestCut_FieldsUnion(t *testing.T) {
	cfg := cutConfig(t, domain.ModeFields, "1,3", ":")
	out, _, err := runCut(t, cfg, map[string]string{"-": "a:b:c\n"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a:c\n" {
		t.Fatalf("expected %q, got %q", "a:c\n", out)
	}
}

func TestCut_FieldsOpenRange(t *testing.T) {
	cfg := cutConfig(t, domain.ModeFields, "2-", ":")
	out, _, err := runCut(t, cfg, map[string]string{"-": "a:b:c\n"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "b:c\n" {
		t.Fatalf("expected %q, got %q", "b:c\n", out)
	}
}

func TestCut_FieldsListOrderDoesNotReorder(t *testing.T) {
	cfg := cutConfig(t, domain.ModeFields, "3,1", ":")
	out, _, err := runCut(t, cfg, map[string]string{"-": "a:b:c\n"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a:c\n" {
		t.Fatalf("expected input order %q, got %q", "a:c\n", out)
	}
}

func TestCut_FieldsUndelimitedPassthrough(t *testing.T) {
	cfg := cutConfig(t, domain.ModeFields, "2", ":")
	out, _, err := runCut(t, cfg, map[string]string{"-": "no delimiter here\n"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "no delimiter here\n" {
		t.Fatalf("expected passthrough, got %q", out)
	}
}

func TestCut_FieldsUndelimitedSuppressed(t *testing.T) {
	cfg := cutConfig(t, domain.ModeFields, "2", ":")
	cfg.Output.SuppressUndelimited = true
	out, _, err := runCut(t, cfg, map[string]string{"-": "plain\na:b\nalso plain\n"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Suppressed records produce no output at all, not even a terminator.
	if out != "b\n" {
		t.Fatalf("expected %q, got %q", "b\n", out)
	}
}

func TestCut_FieldsNothingSelectedEmitsBareTerminator(t *testing.T) {
	cfg := cutConfig(t, domain.ModeFields, "9", ":")
	out, _, err := runCut(t, cfg, map[string]string{"-": "a:b\n"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "\n" {
		t.Fatalf("expected a bare terminator, got %q", out)
	}
}

func TestCut_FieldsEmptyFieldsKept(t *testing.T) {
	cfg := cutConfig(t, domain.ModeFields, "1-3", ":")
	out, _, err := runCut(t, cfg, map[string]string{"-": "a::c\n"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a::c\n" {
		t.Fatalf("expected empty field preserved, got %q", out)
	}
}

// --- Bytes mode ---

func TestCut_BytesPrefix(t *testing.T) {
	cfg := cutConfig(t, domain.ModeBytes, "1-3", "\t")
	out, _, err := runCut(t, cfg, map[string]string{"-": "hello\n"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hel\n" {
		t.Fatalf("expected %q, got %q", "hel\n", out)
	}
}

func TestCut_BytesFullRangeReproducesInput(t *testing.T) {
	in := "first line\nsecond\tline\n\nlast"
	cfg := cutConfig(t, domain.ModeBytes, "1-", "\t")
	out, _, err := runCut(t, cfg, map[string]string{"-": in}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The unterminated final record gains a terminator; everything else is
	// byte-for-byte identical.
	if out != "first line\nsecond\tline\n\nlast\n" {
		t.Fatalf("expected identity modulo final terminator, got %q", out)
	}
}

func TestCut_UnterminatedFinalRecordIsEmitted(t *testing.T) {
	cfg := cutConfig(t, domain.ModeBytes, "1", "\t")
	out, _, err := runCut(t, cfg, map[string]string{"-": "ab\ncd"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a\nc\n" {
		t.Fatalf("expected %q, got %q", "a\nc\n", out)
	}
}

// --- NUL terminator mode ---

func TestCut_NulTerminatedRecords(t *testing.T) {
	cfg := cutConfig(t, domain.ModeBytes, "1", "\t")
	cfg.Output.LineTerminator = domain.TermNul
	out, _, err := runCut(t, cfg, map[string]string{"-": "a\x00b\x00"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a\x00b\x00" {
		t.Fatalf("expected two NUL-terminated records, got %q", out)
	}
}

func TestCut_NulModeTreatsNewlineAsData(t *testing.T) {
	cfg := cutConfig(t, domain.ModeBytes, "1-", "\t")
	cfg.Output.LineTerminator = domain.TermNul
	out, _, err := runCut(t, cfg, map[string]string{"-": "a\nb\x00"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a\nb\x00" {
		t.Fatalf("expected newline kept as record data, got %q", out)
	}
}

// --- Multi-source handling ---

func TestCut_SourcesInArgumentOrder(t *testing.T) {
	cfg := cutConfig(t, domain.ModeFields, "1", ":")
	sources := map[string]string{
		"one.txt": "1:a\n",
		"two.txt": "2:b\n",
	}
	out, _, err := runCut(t, cfg, sources, []string{"two.txt", "one.txt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "2\n1\n" {
		t.Fatalf("expected argument order, got %q", out)
	}
}

func TestCut_MissingSourceIsSkippedAndAggregated(t *testing.T) {
	cfg := cutConfig(t, domain.ModeFields, "1", ":")
	sources := map[string]string{"good.txt": "a:b\n"}
	out, errOut, err := runCut(t, cfg, sources, []string{"missing.txt", "good.txt"})

	if out != "a\n" {
		t.Fatalf("expected the good source to be fully processed, got %q", out)
	}
	if !strings.Contains(errOut, "missing.txt") {
		t.Fatalf("expected an error report naming missing.txt, got %q", errOut)
	}
	if !domain.IsKind(err, domain.KindSourceIO) {
		t.Fatalf("expected aggregate source_io error, got %v", err)
	}
}

func TestCut_NoSourcesMeansStdin(t *testing.T) {
	cfg := cutConfig(t, domain.ModeFields, "1", ":")
	out, _, err := runCut(t, cfg, map[string]string{"-": "x:y\n"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "x\n" {
		t.Fatalf("expected stdin to be read, got %q", out)
	}
}

// --- Sink failures ---

func TestCut_SinkFailureAborts(t *testing.T) {
	cfg := cutConfig(t, domain.ModeBytes, "1-", "\t")
	uc := NewCut(cfg, &fakeOpener{sources: map[string]string{"-": strings.Repeat("x", 64*1024)}}, nil)

	var errOut bytes.Buffer
	err := uc.Execute(context.Background(), failingWriter{}, &errOut, nil)
	if !domain.IsKind(err, domain.KindSinkIO) {
		t.Fatalf("expected sink_io error, got %v", err)
	}
}

// --- Cancellation ---

func TestCut_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := cutConfig(t, domain.ModeBytes, "1", "\t")
	uc := NewCut(cfg, &fakeOpener{sources: map[string]string{"-": "x\n"}}, nil)

	var out, errOut bytes.Buffer
	if err := uc.Execute(ctx, &out, &errOut, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
