package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmendive/slicer/internal/buildinfo"
	"github.com/jmendive/slicer/internal/domain"
	"github.com/jmendive/slicer/internal/infra/config"
	"github.com/jmendive/slicer/internal/infra/logger"
)

// appState carries flag-independent state shared by the subcommands.
type appState struct {
	debug    bool
	defaults domain.Defaults
	cleanup  func() error
}

// Execute runs the root command and maps errors to exit codes: 2 for usage
// and range-list errors, 1 for everything else.
func Execute() int {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		switch {
		case domain.IsKind(err, domain.KindSourceIO):
			// Per-source failures were already reported by the usecase.
			return 1
		case domain.IsKind(err, domain.KindSinkIO):
			fmt.Fprintf(os.Stderr, "slicer: write error: %v\n", err)
			return 1
		default:
			// Usage, range-list, and flag-parse errors.
			fmt.Fprintf(os.Stderr, "slicer: %v\n", err)
			return 2
		}
	}
	return 0
}

func newRootCmd() *cobra.Command {
	state := &appState{defaults: domain.DefaultConfig()}

	cmd := &cobra.Command{
		Use:           "slicer",
		Short:         "Slicer — select parts of lines, plus small path helpers",
		Version:       buildinfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			cleanup, _ := logger.Setup(logger.Config{Debug: state.debug})
			state.cleanup = cleanup

			if path := config.Discover(); path != "" {
				d, err := config.Load(path)
				if err != nil {
					logger.L().Warn("config.load_failed", "path", path, "err", err)
				}
				state.defaults = d
			}
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if state.cleanup != nil {
				_ = state.cleanup()
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&state.debug, "debug", false, "enable verbose logging to the slicer log file")

	cmd.AddCommand(
		newCutCmd(state),
		newHeadCmd(state),
		newBasenameCmd(),
		newDirnameCmd(),
		newRealpathCmd(),
	)
	return cmd
}
