package main

import (
	"github.com/nao1215/seedscan/internal/model"
	"github.com/spf13/cobra"
)

// NewDescrambleCmd creates the descramble command.
func NewDescrambleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "descramble [words...]",
		Short: "Find the order of a complete set of words",
		Long: `Descramble tries every distinct ordering of the given words and reports the
checksum-valid ones.

A 12-word phrase has 479,001,600 orderings; 24 words are far beyond reach.
Run "seedscan estimate descramble" first for anything but short phrases.

Examples:
  seedscan descramble -w 8 < words.txt`,
		Args: cobra.ArbitraryArgs,
		RunE: runDescrambleCmd,
	}

	addSearchFlags(cmd)

	return cmd
}

// runDescrambleCmd executes the descramble command.
func runDescrambleCmd(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	phrase, err := readMnemonic(cmd, args)
	if err != nil {
		return err
	}
	words := phrase.Words()

	return s.runSearch(cmd, model.Descramble{Words: words}, words)
}
