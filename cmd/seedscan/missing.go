package main

import (
	"github.com/nao1215/seedscan/internal/model"
	"github.com/spf13/cobra"
)

// NewMissingCmd creates the missing command.
func NewMissingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "missing [known words...]",
		Short: "Fill in missing trailing words",
		Long: `Missing appends combinations of --count wordlist words to the known words
and reports every checksum-valid result. No address is derived.

One missing word of a 12-word phrase yields about 128 valid phrases, because
the last word carries only 4 checksum bits. Use "pattern" when part of the
address is known to narrow the result.

Examples:
  # The last word of a 12-word phrase is lost
  seedscan missing --count 1 < known.txt`,
		Args: cobra.ArbitraryArgs,
		RunE: runMissingCmd,
	}

	cmd.Flags().IntP("count", "n", 1, "Number of missing words")
	addSearchFlags(cmd)

	return cmd
}

// runMissingCmd executes the missing command.
func runMissingCmd(cmd *cobra.Command, args []string) error {
	count, err := cmd.Flags().GetInt("count")
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

	return s.runSearch(cmd, model.MissingWords{
		Known:   words,
		Missing: count,
	}, words)
}
