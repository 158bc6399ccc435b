package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmendive/slicer/internal/domain"
	"github.com/jmendive/slicer/internal/infra/fssource"
	"github.com/jmendive/slicer/internal/infra/logger"
	"github.com/jmendive/slicer/internal/usecase"
)

func newCutCmd(state *appState) *cobra.Command {
	var bytesList, charsList, fieldsList, delimiter string
	var onlyDelimited, zeroTerminated, unicodeChars bool

	c := &cobra.Command{
		Use:   "cut [flags] [FILE...]",
		Short: "Print selected parts of lines from each FILE",
		Long: `Print selected parts of lines from each FILE to standard output.

With no FILE, or when FILE is -, read standard input.

LIST is made up of one range, or many ranges separated by commas.
Each range is one of:
  N     N'th byte, character or field, counted from 1
  N-    from N'th byte, character or field, to end of line
  N-M   from N'th to M'th (included) byte, character or field
  -M    from first to M'th (included) byte, character or field`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("delimiter") {
				delimiter = state.defaults.CutDelimiter
			}

			cfg, err := buildCutConfig(cmd, bytesList, charsList, fieldsList,
				delimiter, onlyDelimited, zeroTerminated, unicodeChars)
			if err != nil {
				return err
			}

			uc := usecase.NewCut(cfg, fssource.NewOpener(), logger.L())
			return uc.Execute(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}

	c.Flags().StringVarP(&bytesList, "bytes", "b", "", "select only these bytes")
	c.Flags().StringVarP(&charsList, "characters", "c", "", "select only these characters")
	c.Flags().StringVarP(&fieldsList, "fields", "f", "", "select only these fields")
	c.Flags().StringVarP(&delimiter, "delimiter", "d", "\t", "use DELIM instead of TAB for field delimiter")
	c.Flags().BoolVarP(&onlyDelimited, "only-delimited", "s", false, "do not print lines not containing delimiters")
	c.Flags().BoolVarP(&zeroTerminated, "zero-terminated", "z", false, "line delimiter is NUL, not newline")
	c.Flags().BoolVar(&unicodeChars, "unicode", false, "address characters as Unicode text, not bytes")
	return c
}

func buildCutConfig(cmd *cobra.Command, bytesList, charsList, fieldsList, delimiter string,
	onlyDelimited, zeroTerminated, unicodeChars bool) (domain.CutConfig, error) {

	var mode domain.SelectionMode
	var list string
	modes := 0

	if cmd.Flags().Changed("bytes") {
		mode, list = domain.ModeBytes, bytesList
		modes++
	}
	if cmd.Flags().Changed("characters") {
		mode, list = domain.ModeCharacters, charsList
		modes++
	}
	if cmd.Flags().Changed("fields") {
		mode, list = domain.ModeFields, fieldsList
		modes++
	}

	if modes > 1 {
		return domain.CutConfig{}, domain.UsageError("cut", "only one type of list may be specified")
	}
	if modes == 0 {
		return domain.CutConfig{}, domain.UsageError("cut", "you must specify a list of bytes, characters, or fields")
	}

	ranges, err := domain.ParseRangeList(list)
	if err != nil {
		return domain.CutConfig{}, err
	}

	chars := domain.ByteOriented
	if unicodeChars {
		chars = domain.CodepointOriented
	}

	term := domain.TermNewline
	if zeroTerminated {
		term = domain.TermNul
	}

	cfg := domain.CutConfig{
		Mode:      mode,
		Ranges:    ranges,
		Delimiter: delimiter,
		Chars:     chars,
		Output: domain.OutputPolicy{
			LineTerminator:      term,
			SuppressUndelimited: onlyDelimited,
		},
	}
	return cfg, cfg.Validate()
}
