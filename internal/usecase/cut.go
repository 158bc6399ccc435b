package usecase

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jmendive/slicer/internal/domain"
	"github.com/jmendive/slicer/internal/ports"
)

// Cut streams records from the given sources, keeps the units selected by the
// configured range set, and re-assembles them onto the output sink.
type Cut struct {
	cfg    domain.CutConfig
	opener ports.SourceOpener
	log    *slog.Logger
}

func NewCut(cfg domain.CutConfig, opener ports.SourceOpener, log *slog.Logger) *Cut {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Cut{cfg: cfg, opener: opener, log: log}
}

// Execute processes sources strictly in argument order; no sources means
// standard input. A source that fails to open or read is reported to errOut
// and skipped, and the aggregate failure is returned after the remaining
// sources finish. A sink write failure aborts immediately.
func (uc *Cut) Execute(ctx context.Context, out, errOut io.Writer, sources []string) error {
	if len(sources) == 0 {
		sources = []string{"-"}
	}

	w := bufio.NewWriter(out)
	failed := 0

	for _, name := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}

		r, _, err := uc.opener.Open(name)
		if err != nil {
			uc.log.Warn("cut.open_failed", "source", name, "err", err)
			fmt.Fprintf(errOut, "slicer: cut: %s: %v\n", name, causeOf(err))
			failed++
			continue
		}

		err = uc.processSource(r, w)
		_ = r.Close()
		if err != nil {
			if domain.IsKind(err, domain.KindSinkIO) {
				return err
			}
			uc.log.Warn("cut.read_failed", "source", name, "err", err)
			fmt.Fprintf(errOut, "slicer: cut: %s: %v\n", name, err)
			failed++
		}
	}

	if err := w.Flush(); err != nil {
		return sinkError("cut.write", err)
	}

	if failed > 0 {
		return &domain.OpError{
			Op:   "cut",
			Kind: domain.KindSourceIO,
			Err:  fmt.Errorf("%d of %d source(s) failed", failed, len(sources)),
		}
	}
	return nil
}

// processSource reads records terminated by the configured byte. A final
// unterminated record at end of input is still processed.
func (uc *Cut) processSource(r io.Reader, w *bufio.Writer) error {
	term := uc.cfg.Output.LineTerminator
	br := bufio.NewReader(r)

	for {
		chunk, err := br.ReadBytes(term)
		if len(chunk) > 0 {
			record := chunk
			if record[len(record)-1] == term {
				record = record[:len(record)-1]
			}
			if werr := uc.writeRecord(w, record); werr != nil {
				return werr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return &domain.OpError{Op: "cut.read", Kind: domain.KindSourceIO, Err: err}
		}
	}
}

func (uc *Cut) writeRecord(w *bufio.Writer, record []byte) error {
	switch uc.cfg.Mode {
	case domain.ModeFields:
		line := string(record)
		if !strings.Contains(line, uc.cfg.Delimiter) {
			// Suppression policy: a delimiter-free record is dropped entirely
			// under -s, passed through unchanged otherwise.
			if uc.cfg.Output.SuppressUndelimited {
				return nil
			}
			return uc.emit(w, record)
		}
		// A record that had a delimiter but selects nothing still emits a
		// bare terminator, keeping input and output record counts equal.
		return uc.emit(w, []byte(domain.CutFields(line, uc.cfg.Delimiter, uc.cfg.Ranges)))

	case domain.ModeCharacters:
		return uc.emit(w, []byte(domain.CutChars(string(record), uc.cfg.Ranges, uc.cfg.Chars)))

	default: // domain.ModeBytes
		return uc.emit(w, domain.CutBytes(record, uc.cfg.Ranges))
	}
}

func (uc *Cut) emit(w *bufio.Writer, b []byte) error {
	if _, err := w.Write(b); err != nil {
		return sinkError("cut.write", err)
	}
	if err := w.WriteByte(uc.cfg.Output.LineTerminator); err != nil {
		return sinkError("cut.write", err)
	}
	return nil
}

func sinkError(op string, err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindSinkIO, Err: err}
}

// causeOf strips the OpError envelope for user-facing messages, which already
// name the source themselves.
func causeOf(err error) error {
	if cause := errors.Unwrap(err); cause != nil {
		return cause
	}
	return err
}
