package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmendive/slicer/internal/domain"
)

func newDirnameCmd() *cobra.Command {
	var zeroTerminated bool

	c := &cobra.Command{
		Use:   "dirname [-z] NAME...",
		Short: "Strip the last component from file names",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return domain.UsageError("dirname", "missing operand")
			}

			sep := separator(zeroTerminated)
			out := cmd.OutOrStdout()
			for _, arg := range args {
				if _, err := fmt.Fprintf(out, "%s%c", domain.Dirname(arg), sep); err != nil {
					return err
				}
			}
			return nil
		},
	}

	c.Flags().BoolVarP(&zeroTerminated, "zero", "z", false, "separate output with NUL rather than newline")
	return c
}
