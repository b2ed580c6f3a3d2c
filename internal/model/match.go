package model

import (
	"slices"
	"strings"
	"time"
)

// NoPosition marks candidates and matches where no single position varied.
const NoPosition = -1

// Candidate is one fully-formed word sequence produced by a strategy.
//
// Words is owned by the generator and is overwritten by the next candidate.
// Callers that keep a candidate must copy Words (NewMatch does this).
type Candidate struct {
	// Words is the candidate phrase.
	Words []string

	// Position is the zero-based index that was substituted, or NoPosition.
	Position int

	// Original is the word that was replaced at Position.
	Original string

	// Replacement is the word placed at Position.
	Replacement string
}

// Match is a candidate that passed checksum validation and, where the
// strategy requires it, address comparison. Matches are never mutated after
// creation.
type Match struct {
	// Strategy is the kind of search that found the match.
	Strategy StrategyKind `json:"strategy"`

	// Phrase is the recovered word sequence.
	Phrase []string `json:"phrase"`

	// Position is the zero-based substituted index, or NoPosition.
	Position int `json:"position"`

	// Original is the replaced word (PositionSubstitution only).
	Original string `json:"original,omitempty"`

	// Replacement is the substituted word (PositionSubstitution only).
	Replacement string `json:"replacement,omitempty"`

	// Address is the derived address, when one was derived.
	Address string `json:"address,omitempty"`
}

// NewMatch builds a Match from a candidate, copying its words.
func NewMatch(kind StrategyKind, c Candidate, address string) Match {
	return Match{
		Strategy:    kind,
		Phrase:      slices.Clone(c.Words),
		Position:    c.Position,
		Original:    c.Original,
		Replacement: c.Replacement,
		Address:     address,
	}
}

// PhraseString returns the phrase joined by single spaces.
func (m Match) PhraseString() string {
	return strings.Join(m.Phrase, " ")
}

// HasPosition reports whether the match records a substituted position.
func (m Match) HasPosition() bool {
	return m.Position != NoPosition
}

// ProgressSnapshot is a point-in-time view of search throughput.
type ProgressSnapshot struct {
	// Processed is the number of candidates tried so far.
	Processed uint64 `json:"processed"`

	// Elapsed is the time since the search started.
	Elapsed time.Duration `json:"elapsed"`

	// Rate is Processed per second of Elapsed; zero when no time has elapsed.
	Rate float64 `json:"rate"`
}

// NewProgressSnapshot computes a snapshot whose rate is consistent with its
// processed count and elapsed time.
func NewProgressSnapshot(processed uint64, elapsed time.Duration) ProgressSnapshot {
	s := ProgressSnapshot{Processed: processed, Elapsed: elapsed}
	if elapsed > 0 {
		s.Rate = float64(processed) / elapsed.Seconds()
	}
	return s
}
