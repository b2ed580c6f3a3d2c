package search

import "errors"

// Setup errors.
// These are returned by Engine.Run before any candidate is generated.
// Per-candidate failures (invalid checksum, failed derivation) are never
// returned as errors; they only mean "no match for this candidate".
var (
	// ErrNoStrategy is returned when Run is called with a nil strategy.
	ErrNoStrategy = errors.New("no search strategy specified")

	// ErrEmptyWordSet is returned when the word set is missing or empty.
	// Searching against an empty vocabulary would silently find nothing.
	ErrEmptyWordSet = errors.New("word set is empty or missing")

	// ErrNoValidator is returned when no checksum validator is supplied.
	ErrNoValidator = errors.New("checksum validator is missing")

	// ErrNoDeriver is returned when the strategy has an address target but
	// no address deriver is supplied.
	ErrNoDeriver = errors.New("address deriver is missing for a strategy with an address target")

	// ErrSearchTooLarge is returned when the pre-flight estimate exceeds the
	// configured candidate limit.
	ErrSearchTooLarge = errors.New("search space exceeds the candidate limit")
)
