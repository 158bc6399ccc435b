package usecase

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jmendive/slicer/internal/domain"
	"github.com/jmendive/slicer/internal/ports"
)

// ResolvePaths canonicalizes a batch of paths through a PathResolver.
type ResolvePaths struct {
	cfg      domain.RealpathConfig
	resolver ports.PathResolver
	log      *slog.Logger
}

func NewResolvePaths(cfg domain.RealpathConfig, resolver ports.PathResolver, log *slog.Logger) *ResolvePaths {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &ResolvePaths{cfg: cfg, resolver: resolver, log: log}
}

// Execute resolves every path in order. A path that fails to resolve is
// reported (unless quiet) and the failure is carried into the return value;
// the remaining paths still resolve.
func (uc *ResolvePaths) Execute(out, errOut io.Writer, paths []string) error {
	failed := 0

	for _, p := range paths {
		resolved, err := uc.resolver.Resolve(p, uc.cfg.Mode)
		if err != nil {
			uc.log.Warn("realpath.failed", "path", p, "err", err)
			if !uc.cfg.Quiet {
				fmt.Fprintf(errOut, "slicer: realpath: %s: %v\n", p, causeOf(err))
			}
			failed++
			continue
		}
		if _, err := fmt.Fprintf(out, "%s%c", resolved, uc.cfg.Terminator); err != nil {
			return sinkError("realpath.write", err)
		}
	}

	if failed > 0 {
		return &domain.OpError{
			Op:   "realpath",
			Kind: domain.KindSourceIO,
			Err:  fmt.Errorf("%d of %d path(s) failed", failed, len(paths)),
		}
	}
	return nil
}
