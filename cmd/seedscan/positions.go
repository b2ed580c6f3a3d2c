package main

import (
	"github.com/nao1215/seedscan/internal/model"
	"github.com/spf13/cobra"
)

// NewPositionsCmd creates the positions command.
func NewPositionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "positions [phrase...]",
		Short: "Find a single wrong word in a complete phrase",
		Long: `Positions replaces each word of the phrase, one position at a time, with
every other word of the wordlist and reports the checksum-valid results.

With --target, only substitutions whose derived address equals the target
(compared case-insensitively) are reported. Without it, every checksum-valid
substitution is listed, which for a 12-word phrase is usually over a thousand.

Examples:
  # Read the phrase from standard input and compare with a known address
  seedscan positions --target 0x9858EfFD232B4033E47d90003D41EC34EcaEda94 < phrase.txt

  # Search with four workers and print a Markdown report
  seedscan positions -w 4 -m --target 1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA --chain bitcoin < phrase.txt`,
		Args: cobra.ArbitraryArgs,
		RunE: runPositionsCmd,
	}

	cmd.Flags().StringP("target", "t", "",
		"Address the corrected phrase must derive")
	addSearchFlags(cmd)

	return cmd
}

// runPositionsCmd executes the positions command.
func runPositionsCmd(cmd *cobra.Command, args []string) error {
	target, err := cmd.Flags().GetString("target")
	if err != nil {
		return err
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	phrase, err := readMnemonic(cmd, args)
	if err != nil {
		return err
	}
	words := phrase.Words()

	return s.runSearch(cmd, model.PositionSubstitution{
		Phrase:        words,
		TargetAddress: target,
	}, words)
}
