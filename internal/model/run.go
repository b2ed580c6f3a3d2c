package model

import "time"

// Run is the persisted summary of one search. It deliberately carries no
// phrase, word or address: the history database must not become a second
// copy of the secret it helps recover.
type Run struct {
	// ID is assigned by the history database.
	ID int64 `json:"id"`

	Strategy     StrategyKind `json:"strategy"`
	PhraseLength int          `json:"phraseLength"`

	// Estimated is the decimal candidate estimate.
	// It can exceed 64 bits, so it is kept as text.
	Estimated string `json:"estimated"`

	Processed uint64        `json:"processed"`
	Matches   int           `json:"matches"`
	Workers   int           `json:"workers"`
	Cancelled bool          `json:"cancelled"`
	StartedAt time.Time     `json:"startedAt"`
	Elapsed   time.Duration `json:"elapsed"`

	// Chain and Language record the derivation settings of the run.
	Chain    string `json:"chain"`
	Language string `json:"language"`
}

// NewRun summarizes a search result for the history database.
func NewRun(r *SearchResult, chain, language string) Run {
	estimated := "0"
	if r.Estimated != nil {
		estimated = r.Estimated.String()
	}
	return Run{
		Strategy:     r.Strategy,
		PhraseLength: r.PhraseLength,
		Estimated:    estimated,
		Processed:    r.Processed,
		Matches:      len(r.Matches),
		Workers:      r.Workers,
		Cancelled:    r.Cancelled,
		StartedAt:    r.StartedAt,
		Elapsed:      r.Elapsed,
		Chain:        chain,
		Language:     language,
	}
}
