package config

import "fmt"

// Report format names accepted in the config file.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// File represents the structure of the .seedscan configuration file.
// Pointer fields distinguish "not set" from a zero value, so that only keys
// present in the file override the defaults.
//
// The BIP39 passphrase is deliberately not a file key.
type File struct {
	Language      string  `yaml:"language,omitempty"`
	Chain         string  `yaml:"chain,omitempty"`
	Workers       *int    `yaml:"workers,omitempty"`
	MaxCandidates *uint64 `yaml:"maxCandidates,omitempty"`
	Account       *uint32 `yaml:"accountIndex,omitempty"`
	AddressIndex  *uint32 `yaml:"addressIndex,omitempty"`
	History       *bool   `yaml:"history,omitempty"`
	HistoryDir    string  `yaml:"historyDir,omitempty"`

	// Format is one of text, json or markdown.
	Format string `yaml:"format,omitempty"`
}

// Apply copies every key set in the file onto cfg.
func (f *File) Apply(cfg *Config) error {
	if f.Language != "" {
		cfg.Language = f.Language
	}
	if f.Chain != "" {
		cfg.Chain = f.Chain
	}
	if f.Workers != nil {
		cfg.Workers = *f.Workers
	}
	if f.MaxCandidates != nil {
		cfg.MaxCandidates = *f.MaxCandidates
	}
	if f.Account != nil {
		cfg.Account = *f.Account
	}
	if f.AddressIndex != nil {
		cfg.AddressIndex = *f.AddressIndex
	}
	if f.History != nil {
		cfg.SaveHistory = *f.History
	}
	if f.HistoryDir != "" {
		cfg.HistoryDir = f.HistoryDir
	}

	switch f.Format {
	case "":
	case FormatText:
		cfg.JSONReport, cfg.MarkdownReport = false, false
	case FormatJSON:
		cfg.JSONReport, cfg.MarkdownReport = true, false
	case FormatMarkdown:
		cfg.JSONReport, cfg.MarkdownReport = false, true
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, f.Format)
	}
	return nil
}

// FileFromConfig builds the file representation of cfg, as written by
// "seedscan init". Every key is set explicitly.
func FileFromConfig(cfg *Config) *File {
	format := FormatText
	switch {
	case cfg.JSONReport:
		format = FormatJSON
	case cfg.MarkdownReport:
		format = FormatMarkdown
	}
	workers := cfg.Workers
	maxCandidates := cfg.MaxCandidates
	account := cfg.Account
	index := cfg.AddressIndex
	history := cfg.SaveHistory

	return &File{
		Language:      cfg.Language,
		Chain:         cfg.Chain,
		Workers:       &workers,
		MaxCandidates: &maxCandidates,
		Account:       &account,
		AddressIndex:  &index,
		History:       &history,
		Format:        format,
	}
}
