package usecase

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmendive/slicer/internal/domain"
	"github.com/jmendive/slicer/internal/ports"
)

// Head emits the first N records of each source, optionally preceded by a
// per-file header.
type Head struct {
	cfg    domain.HeadConfig
	opener ports.SourceOpener
	log    *slog.Logger
}

func NewHead(cfg domain.HeadConfig, opener ports.SourceOpener, log *slog.Logger) *Head {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Head{cfg: cfg, opener: opener, log: log}
}

// Execute processes sources in argument order with the same per-file recovery
// as cut. Headers follow the historical rule: shown automatically only when
// more than one file operand is given, never when reading bare stdin.
func (uc *Head) Execute(ctx context.Context, out, errOut io.Writer, sources []string) error {
	showHeaders := false
	switch uc.cfg.Headers {
	case domain.HeadersAlways:
		showHeaders = len(sources) > 0
	case domain.HeadersAuto:
		showHeaders = len(sources) > 1
	}

	if len(sources) == 0 {
		sources = []string{"-"}
	}

	w := bufio.NewWriter(out)
	failed := 0
	first := true

	for _, name := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}

		r, display, err := uc.opener.Open(name)
		if err != nil {
			uc.log.Warn("head.open_failed", "source", name, "err", err)
			fmt.Fprintf(errOut, "slicer: head: %s: %v\n", name, causeOf(err))
			failed++
			continue
		}

		if showHeaders {
			if !first {
				if err := w.WriteByte('\n'); err != nil {
					_ = r.Close()
					return sinkError("head.write", err)
				}
			}
			if _, err := fmt.Fprintf(w, "==> %s <==\n", display); err != nil {
				_ = r.Close()
				return sinkError("head.write", err)
			}
		}
		first = false

		err = uc.copyLines(r, w)
		_ = r.Close()
		if err != nil {
			if domain.IsKind(err, domain.KindSinkIO) {
				return err
			}
			uc.log.Warn("head.read_failed", "source", name, "err", err)
			fmt.Fprintf(errOut, "slicer: head: %s: %v\n", name, err)
			failed++
		}
	}

	if err := w.Flush(); err != nil {
		return sinkError("head.write", err)
	}

	if failed > 0 {
		return &domain.OpError{
			Op:   "head",
			Kind: domain.KindSourceIO,
			Err:  fmt.Errorf("%d of %d source(s) failed", failed, len(sources)),
		}
	}
	return nil
}

// copyLines passes through up to cfg.Lines records verbatim, terminators
// included; a final unterminated record is still emitted.
func (uc *Head) copyLines(r io.Reader, w *bufio.Writer) error {
	br := bufio.NewReader(r)

	for n := int64(0); n < uc.cfg.Lines; n++ {
		chunk, err := br.ReadBytes('\n')
		if len(chunk) > 0 {
			if _, werr := w.Write(chunk); werr != nil {
				return sinkError("head.write", werr)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return &domain.OpError{Op: "head.read", Kind: domain.KindSourceIO, Err: err}
		}
	}
	return nil
}
