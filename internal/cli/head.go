package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmendive/slicer/internal/domain"
	"github.com/jmendive/slicer/internal/infra/fssource"
	"github.com/jmendive/slicer/internal/infra/logger"
	"github.com/jmendive/slicer/internal/usecase"
)

func newHeadCmd(state *appState) *cobra.Command {
	var lines int64
	var quiet, verbose bool

	c := &cobra.Command{
		Use:   "head [flags] [FILE...]",
		Short: "Print the first lines of each FILE",
		Long: `Print the first 10 lines of each FILE to standard output.
With more than one FILE, precede each with a header giving the file name.

With no FILE, or when FILE is -, read standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("lines") {
				lines = state.defaults.HeadLines
			}

			headers := domain.HeadersAuto
			if quiet {
				headers = domain.HeadersNever
			} else if verbose {
				headers = domain.HeadersAlways
			}

			cfg := domain.HeadConfig{Lines: lines, Headers: headers}
			if err := cfg.Validate(); err != nil {
				return err
			}

			uc := usecase.NewHead(cfg, fssource.NewOpener(), logger.L())
			return uc.Execute(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}

	c.Flags().Int64VarP(&lines, "lines", "n", 10, "print first NUM lines instead of first 10")
	c.Flags().BoolVarP(&quiet, "quiet", "q", false, "never print headers giving file names")
	c.Flags().BoolVarP(&verbose, "verbose", "v", false, "always print headers giving file names")
	return c
}
