package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmendive/slicer/internal/domain"
)

func newBasenameCmd() *cobra.Command {
	var multiple, zeroTerminated bool
	var suffix string

	c := &cobra.Command{
		Use:   "basename NAME [SUFFIX] | basename [-a] [-s SUFFIX] [-z] NAME...",
		Short: "Strip directory and suffix from filenames",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return domain.UsageError("basename", "missing operand")
			}

			sep := separator(zeroTerminated)
			out := cmd.OutOrStdout()

			if multiple || cmd.Flags().Changed("suffix") {
				for _, arg := range args {
					name := domain.StripSuffix(domain.Basename(arg), suffix)
					if _, err := fmt.Fprintf(out, "%s%c", name, sep); err != nil {
						return err
					}
				}
				return nil
			}

			// Legacy form: NAME [SUFFIX].
			if len(args) > 2 {
				return domain.UsageError("basename", fmt.Sprintf("extra operand '%s'", args[2]))
			}
			name := domain.Basename(args[0])
			if len(args) == 2 {
				name = domain.StripSuffix(name, args[1])
			}
			_, err := fmt.Fprintf(out, "%s%c", name, sep)
			return err
		},
	}

	c.Flags().BoolVarP(&multiple, "multiple", "a", false, "support multiple arguments")
	c.Flags().StringVarP(&suffix, "suffix", "s", "", "remove a trailing SUFFIX (implies -a)")
	c.Flags().BoolVarP(&zeroTerminated, "zero", "z", false, "separate output with NUL rather than newline")
	return c
}

func separator(zeroTerminated bool) byte {
	if zeroTerminated {
		return domain.TermNul
	}
	return domain.TermNewline
}
