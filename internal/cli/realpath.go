package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmendive/slicer/internal/domain"
	"github.com/jmendive/slicer/internal/infra/logger"
	"github.com/jmendive/slicer/internal/infra/pathresolver"
	"github.com/jmendive/slicer/internal/usecase"
)

func newRealpathCmd() *cobra.Command {
	var mustExist, mayNotExist, quiet, zeroTerminated bool

	c := &cobra.Command{
		Use:   "realpath [-e|-m] [-q] [-z] FILE...",
		Short: "Print the resolved absolute file name",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return domain.UsageError("realpath", "missing operand")
			}

			mode := domain.ResolveDefault
			if mustExist {
				mode = domain.ResolveMustExist
			}
			if mayNotExist {
				mode = domain.ResolveMayNotExist
			}

			cfg := domain.RealpathConfig{
				Mode:       mode,
				Quiet:      quiet,
				Terminator: separator(zeroTerminated),
			}

			uc := usecase.NewResolvePaths(cfg, pathresolver.NewResolver(), logger.L())
			return uc.Execute(cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}

	c.Flags().BoolVarP(&mustExist, "canonicalize-existing", "e", false, "all path components must exist")
	c.Flags().BoolVarP(&mayNotExist, "canonicalize-missing", "m", false, "no path components need exist")
	c.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress error messages")
	c.Flags().BoolVarP(&zeroTerminated, "zero", "z", false, "separate output with NUL rather than newline")
	c.MarkFlagsMutuallyExclusive("canonicalize-existing", "canonicalize-missing")
	return c
}
