package main

import (
	"github.com/nao1215/seedscan/internal/model"
	"github.com/spf13/cobra"
)

// NewPatternCmd creates the pattern command.
func NewPatternCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pattern [known words...]",
		Short: "Complete a phrase whose address ends with a known pattern",
		Long: `Pattern appends combinations of wordlist words to the known leading words
and reports every checksum-valid completion whose derived address ends with
--suffix (compared case-insensitively). With an empty suffix every
checksum-valid completion is reported together with its address.

Fill words are tried as combinations: they are appended in wordlist order,
not in every relative order. The number of candidates grows as
C(2048, missing), so more than two missing words is rarely feasible.

Examples:
  # 22 known words of a 24-word phrase, address ends with "eda94"
  seedscan pattern --suffix eda94 < known.txt

  # 11 known words of a 12-word phrase
  seedscan pattern --length 12 --suffix eda94 < known.txt`,
		Args: cobra.ArbitraryArgs,
		RunE: runPatternCmd,
	}

	cmd.Flags().StringP("suffix", "s", "",
		"Address suffix the completed phrase must derive")
	cmd.Flags().IntP("length", "n", model.DefaultPatternLength,
		"Length of the complete phrase (12, 15, 18 or 24)")
	addSearchFlags(cmd)

	return cmd
}

// runPatternCmd executes the pattern command.
func runPatternCmd(cmd *cobra.Command, args []string) error {
	suffix, err := cmd.Flags().GetString("suffix")
	if err != nil {
		return err
	}
	length, err := cmd.Flags().GetInt("length")
	if err != nil {
		return err
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	words, err := readWords(cmd, args)
	if err != nil {
		return err
	}

	return s.runSearch(cmd, model.PatternCompletion{
		Known:         words,
		Length:        length,
		AddressSuffix: suffix,
	}, words)
}
