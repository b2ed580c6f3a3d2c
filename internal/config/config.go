package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "seedscan"

	// DefaultLanguage is the BIP39 word list used when none is configured.
	DefaultLanguage = "english"

	// DefaultChain is the chain whose addresses are derived for address targets.
	DefaultChain = "ethereum"

	// DefaultWorkers of 1 keeps the search sequential. Raising it shards the
	// candidate space across CPU cores without changing the match order.
	DefaultWorkers = 1

	// DefaultMaxCandidates rejects searches above ten billion candidates.
	// At a few hundred thousand checksum checks per second such a search
	// takes hours; anything larger is almost always a mistaken input.
	// Use --force to ignore the limit.
	DefaultMaxCandidates = 10_000_000_000

	// DefaultProgressInterval is the minimum time between progress reports.
	DefaultProgressInterval = 2 * time.Second
)

// Config holds all configuration options for seedscan.
// It is populated from CLI flags and the optional .seedscan file and passed
// through the application rather than kept in global state.
type Config struct {
	// Language is the BIP39 word list language.
	Language string

	// Chain is the chain used to derive addresses ("ethereum" or "bitcoin").
	Chain string

	// Passphrase is the optional BIP39 passphrase ("25th word").
	// It is never written to the config file, logs or history.
	Passphrase string

	// Account is the hardened BIP44 account index.
	Account uint32

	// AddressIndex is the BIP44 address index on the receiving chain.
	AddressIndex uint32

	// Workers is the number of concurrent search workers.
	Workers int

	// MaxCandidates is the largest estimated search the tool runs without --force.
	// Zero disables the limit.
	MaxCandidates uint64

	// Force disables the MaxCandidates check for one run.
	Force bool

	// ProgressInterval is the minimum time between progress reports.
	ProgressInterval time.Duration

	// Quiet disables progress reports on stderr.
	Quiet bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// LogJSON switches log output to JSON lines.
	LogJSON bool

	// JSONReport enables JSON report output instead of the text format.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the text format.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string

	// TeeReport also writes the report to stdout when ReportFile is set.
	TeeReport bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .seedscan in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// HistoryDir is the directory of the SQLite run history database.
	// Defaults to the XDG data directory (~/.local/share/seedscan on Linux).
	HistoryDir string

	// SaveHistory records run metadata in the history database.
	SaveHistory bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Language:         DefaultLanguage,
		Chain:            DefaultChain,
		Workers:          DefaultWorkers,
		MaxCandidates:    DefaultMaxCandidates,
		ProgressInterval: DefaultProgressInterval,
		HistoryDir:       XDGDataDir(),
		SaveHistory:      true,
	}
}

// XDGDataDir returns the XDG data directory for seedscan.
// On Linux: ~/.local/share/seedscan
// On macOS: ~/Library/Application Support/seedscan
// On Windows: %LOCALAPPDATA%\seedscan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for seedscan.
// On Linux: ~/.config/seedscan
// On macOS: ~/Library/Application Support/seedscan
// On Windows: %APPDATA%\seedscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as a sentinel error.
func (c *Config) Validate() error {
	if c.Language == "" {
		return ErrNoLanguage
	}

	if c.Chain == "" {
		return ErrNoChain
	}

	// Workers must be positive; zero would mean no searching
	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.ProgressInterval <= 0 {
		return ErrInvalidProgressInterval
	}

	if c.SaveHistory && c.HistoryDir == "" {
		return ErrNoHistoryDir
	}

	return nil
}

// CandidateLimit returns the effective candidate limit, or zero when the
// limit is disabled.
func (c *Config) CandidateLimit() uint64 {
	if c.Force {
		return 0
	}
	return c.MaxCandidates
}
