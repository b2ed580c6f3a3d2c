package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for seedscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seedscan",
		Short: "Offline recovery tool for damaged BIP39 seed phrases",
		Long: `seedscan searches for the correct BIP39 seed phrase when the one you have
contains a wrong word, is missing words, or has its words out of order.

Every candidate is checked against the BIP39 checksum. When a target address
is given, checksum-valid candidates are also derived along the BIP44 path and
compared with it. Nothing is sent over the network.

Phrases are read from the arguments, or from standard input when no
arguments are given. Prefer standard input to keep phrases out of your
shell history.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .seedscan in current or home directory)")

	// Add subcommands
	cmd.AddCommand(NewPositionsCmd())
	cmd.AddCommand(NewPatternCmd())
	cmd.AddCommand(NewMissingCmd())
	cmd.AddCommand(NewDescrambleCmd())
	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewEstimateCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
