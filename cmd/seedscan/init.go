package main

import (
	"errors"
	"fmt"

	"github.com/nao1215/seedscan/internal/config"
	"github.com/spf13/cobra"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new seedscan configuration file",
		Long: `Initialize creates a new .seedscan configuration file in the current directory.

The generated file contains every setting with its default value and a
comment describing each key. The BIP39 passphrase is never written to it.

Examples:
  # Create .seedscan in current directory
  seedscan init

  # Create config file at a specific path
  seedscan init -o myconfig.yaml

  # Force overwrite existing file
  seedscan init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	f := config.FileFromConfig(config.NewConfig())
	if err := config.WriteConfigFile(outputPath, f, force); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return fmt.Errorf("%w (use -f to overwrite)", err)
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to change the defaults for:")
	fmt.Fprintln(out, "  - Wordlist language and chain")
	fmt.Fprintln(out, "  - Derivation account and address index")
	fmt.Fprintln(out, "  - Workers, candidate limit and report format")

	return nil
}
