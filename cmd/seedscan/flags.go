package main

import (
	"fmt"
	"strings"

	"github.com/nao1215/seedscan/internal/chain"
	"github.com/nao1215/seedscan/internal/config"
	"github.com/nao1215/seedscan/internal/wordlist"
	"github.com/spf13/cobra"
)

// addWordlistFlags adds the flags that select the vocabulary.
func addWordlistFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("language", "l", config.DefaultLanguage,
		"BIP39 wordlist ("+strings.Join(wordlist.Languages(), ", ")+")")
	cmd.Flags().Uint64("max-candidates", config.DefaultMaxCandidates,
		"Refuse searches with more candidates than this (0 disables the limit)")
}

// addDerivationFlags adds the flags that select the chain and BIP44 path.
func addDerivationFlags(cmd *cobra.Command) {
	cmd.Flags().String("chain", config.DefaultChain,
		"Chain used to derive addresses ("+strings.Join(chain.Chains(), ", ")+")")
	cmd.Flags().String("passphrase", "",
		"Optional BIP39 passphrase (the \"25th word\")")
	cmd.Flags().Uint32("account", 0, "BIP44 account index")
	cmd.Flags().Uint32("index", 0, "BIP44 address index")
}

// addSearchFlags adds the flags shared by every search command.
func addSearchFlags(cmd *cobra.Command) {
	addWordlistFlags(cmd)
	addDerivationFlags(cmd)

	// Execution flags
	cmd.Flags().IntP("workers", "w", config.DefaultWorkers,
		"Number of concurrent search workers")
	cmd.Flags().BoolP("force", "f", false,
		"Run even if the candidate estimate exceeds --max-candidates")
	cmd.Flags().BoolP("quiet", "q", false,
		"Do not print progress and match notifications to stderr")
	cmd.Flags().Duration("progress-interval", config.DefaultProgressInterval,
		"Minimum time between progress lines")

	addReportFlags(cmd)
	addHistoryFlags(cmd)
	cmd.Flags().Bool("no-history", false,
		"Do not record this run in the history database")
}

// addReportFlags adds the report format and destination flags.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("tee", false,
		"With --output, also print the report to stdout")
}

// addHistoryFlags adds the flag locating the history database.
func addHistoryFlags(cmd *cobra.Command) {
	cmd.Flags().String("history-dir", "",
		"Directory of the history database (default: XDG data directory)")
}

// buildConfig creates a Config from defaults, the configuration file and the
// command-line flags, in increasing order of precedence. Only flags the user
// actually set override the file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	if flags.Changed("config") {
		if cfg.ConfigFilePath, err = flags.GetString("config"); err != nil {
			return nil, err
		}
	}
	if err := applyConfigFile(cfg); err != nil {
		return nil, err
	}

	for name, dst := range map[string]*string{
		"language":    &cfg.Language,
		"chain":       &cfg.Chain,
		"passphrase":  &cfg.Passphrase,
		"output":      &cfg.ReportFile,
		"history-dir": &cfg.HistoryDir,
	} {
		if !flags.Changed(name) {
			continue
		}
		if *dst, err = flags.GetString(name); err != nil {
			return nil, err
		}
	}

	for name, dst := range map[string]*bool{
		"verbose":  &cfg.Verbose,
		"log-json": &cfg.LogJSON,
		"force":    &cfg.Force,
		"quiet":    &cfg.Quiet,
		"tee":      &cfg.TeeReport,
	} {
		if !flags.Changed(name) {
			continue
		}
		if *dst, err = flags.GetBool(name); err != nil {
			return nil, err
		}
	}

	// Either format flag replaces the format of the file as a whole.
	if flags.Changed("json") || flags.Changed("markdown") {
		if cfg.JSONReport, err = getBoolFlag(cmd, "json"); err != nil {
			return nil, err
		}
		if cfg.MarkdownReport, err = getBoolFlag(cmd, "markdown"); err != nil {
			return nil, err
		}
	}

	if flags.Changed("workers") {
		if cfg.Workers, err = flags.GetInt("workers"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("max-candidates") {
		if cfg.MaxCandidates, err = flags.GetUint64("max-candidates"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("account") {
		if cfg.Account, err = flags.GetUint32("account"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("index") {
		if cfg.AddressIndex, err = flags.GetUint32("index"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("progress-interval") {
		if cfg.ProgressInterval, err = flags.GetDuration("progress-interval"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("no-history") {
		noHistory, err := flags.GetBool("no-history")
		if err != nil {
			return nil, err
		}
		cfg.SaveHistory = !noHistory
	}

	return cfg, nil
}

// applyConfigFile loads the configuration file, if any, onto cfg.
// A file the user named explicitly must exist; the default locations are optional.
func applyConfigFile(cfg *config.Config) error {
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath == "" {
		if explicitConfigPath {
			return fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
		}
		return nil
	}

	f, err := config.LoadConfigFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}
	if err := f.Apply(cfg); err != nil {
		return fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return nil
}

// getBoolFlag returns a bool flag, or false when the command does not define it.
func getBoolFlag(cmd *cobra.Command, name string) (bool, error) {
	if cmd.Flags().Lookup(name) == nil {
		return false, nil
	}
	return cmd.Flags().GetBool(name)
}
