package model

import (
	"math/big"
	"time"
)

// SearchResult is the outcome of one search invocation.
// A result is returned both for exhausted and for cancelled searches;
// Cancelled tells them apart.
type SearchResult struct {
	// Strategy is the kind of search that was run.
	Strategy StrategyKind `json:"strategy"`

	// PhraseLength is the length of every candidate.
	PhraseLength int `json:"phraseLength"`

	// Matches are in candidate generation order.
	Matches []Match `json:"matches"`

	// Processed is the number of candidates tried.
	Processed uint64 `json:"processed"`

	// Estimated is the pre-flight candidate count.
	Estimated *big.Int `json:"estimated"`

	// Workers is the number of workers that enumerated shards.
	Workers int `json:"workers"`

	// StartedAt is when enumeration began.
	StartedAt time.Time `json:"startedAt"`

	// Elapsed is the wall-clock duration of the search.
	Elapsed time.Duration `json:"elapsed"`

	// Cancelled is true when the search stopped before exhausting its candidates.
	Cancelled bool `json:"cancelled"`
}

// HasMatches returns true if at least one match was found.
func (r *SearchResult) HasMatches() bool {
	return len(r.Matches) > 0
}

// Snapshot returns the final progress numbers of the search.
func (r *SearchResult) Snapshot() ProgressSnapshot {
	return NewProgressSnapshot(r.Processed, r.Elapsed)
}
