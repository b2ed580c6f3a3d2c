package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Package-level sentinel errors let callers use errors.Is() for programmatic
// handling while the messages stay human-readable.
var (
	// ErrNoLanguage is returned when the word list language is empty.
	ErrNoLanguage = errors.New("no wordlist language specified")

	// ErrNoChain is returned when the derivation chain is empty.
	ErrNoChain = errors.New("no chain specified")

	// ErrInvalidWorkers is returned when the worker count is not positive.
	ErrInvalidWorkers = errors.New("invalid worker count: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidProgressInterval is returned when the progress interval is not positive.
	ErrInvalidProgressInterval = errors.New("invalid progress interval: must be positive")

	// ErrNoHistoryDir is returned when history is enabled without a directory.
	ErrNoHistoryDir = errors.New("history is enabled but no history directory is set")

	// ErrInvalidFormat is returned when the config file names an unknown report format.
	ErrInvalidFormat = errors.New("invalid report format: must be text, json or markdown")
)
