package main

import (
	"errors"
	"fmt"

	"github.com/nao1215/seedscan/internal/chain"
	"github.com/nao1215/seedscan/internal/model"
	"github.com/spf13/cobra"
)

// errInvalidPhrase is returned when validate rejects a phrase.
var errInvalidPhrase = errors.New("invalid seed phrase")

// NewValidateCmd creates the validate command.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [phrase...]",
		Short: "Check a phrase and print its derived addresses",
		Long: `Validate checks the length, the words and the checksum of a complete
phrase. For a valid phrase it prints the derivation path and address for the
selected chain, account and index.

Examples:
  seedscan validate < phrase.txt

  # First five Bitcoin receiving addresses
  seedscan validate --chain bitcoin --addresses 5 < phrase.txt`,
		Args: cobra.ArbitraryArgs,
		RunE: runValidateCmd,
	}

	cmd.Flags().IntP("addresses", "a", 1,
		"Number of consecutive addresses to derive, starting at --index")
	addWordlistFlags(cmd)
	addDerivationFlags(cmd)

	return cmd
}

// runValidateCmd executes the validate command.
func runValidateCmd(cmd *cobra.Command, args []string) error {
	count, err := cmd.Flags().GetInt("addresses")
	if err != nil {
		return err
	}
	if count < 1 {
		return fmt.Errorf("--addresses must be at least 1, got %d", count)
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	last := uint64(s.cfg.AddressIndex) + uint64(count) - 1
	if last > chain.MaxPathIndex {
		return fmt.Errorf("%w: --index %d with --addresses %d reaches %d, maximum %d",
			chain.ErrPathIndexOutOfRange, s.cfg.AddressIndex, count, last, uint64(chain.MaxPathIndex))
	}

	out := cmd.OutOrStdout()
	phrase, err := readMnemonic(cmd, args)
	if errors.Is(err, model.ErrInvalidLength) {
		fmt.Fprintf(out, "Invalid: %v\n", err)
		return fmt.Errorf("%w: %w", errInvalidPhrase, err)
	}
	if err != nil {
		return err
	}

	words := phrase.Words()
	if err := s.validator.Check(words); err != nil {
		fmt.Fprintf(out, "Invalid: %v\n", err)
		return fmt.Errorf("%w: %w", errInvalidPhrase, err)
	}

	fmt.Fprintf(out, "Valid %d-word %s phrase\n", phrase.Len(), s.validator.Language())
	fmt.Fprintf(out, "Chain: %s\n", s.deriver.Chain())
	if s.cfg.Passphrase != "" {
		fmt.Fprintln(out, "Passphrase: set")
	}

	for i := range count {
		d, err := chain.NewDeriver(s.deriver.Chain(),
			chain.WithPassphrase(s.cfg.Passphrase),
			chain.WithAccount(s.cfg.Account),
			chain.WithAddressIndex(s.cfg.AddressIndex+uint32(i)), //nolint:gosec // Bounded by MaxPathIndex above
		)
		if err != nil {
			return err
		}
		address, err := d.DeriveAddress(words)
		if err != nil {
			return fmt.Errorf("failed to derive %s: %w", d.Path(), err)
		}
		fmt.Fprintf(out, "%s  %s\n", d.Path(), address)
	}
	return nil
}
