package model

import (
	"math/big"
	"testing"
	"time"
)

func TestNewRun(t *testing.T) {
	t.Parallel()

	started := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	result := &SearchResult{
		Strategy:     KindDescramble,
		PhraseLength: 12,
		Matches:      []Match{{Phrase: []string{"secret"}}, {Phrase: []string{"words"}}},
		Processed:    132,
		Estimated:    big.NewInt(132),
		Workers:      4,
		StartedAt:    started,
		Elapsed:      3 * time.Second,
		Cancelled:    true,
	}

	run := NewRun(result, "bitcoin", "english")
	if run.Strategy != KindDescramble || run.PhraseLength != 12 {
		t.Errorf("unexpected strategy/length %v/%d", run.Strategy, run.PhraseLength)
	}
	if run.Matches != 2 || run.Processed != 132 || run.Estimated != "132" {
		t.Errorf("unexpected counts %+v", run)
	}
	if !run.Cancelled || run.Workers != 4 || !run.StartedAt.Equal(started) || run.Elapsed != 3*time.Second {
		t.Errorf("unexpected run metadata %+v", run)
	}
	if run.Chain != "bitcoin" || run.Language != "english" {
		t.Errorf("unexpected settings %q/%q", run.Chain, run.Language)
	}

	t.Run("nil estimate", func(t *testing.T) {
		t.Parallel()

		if got := NewRun(&SearchResult{}, "", "").Estimated; got != "0" {
			t.Errorf("expected estimate \"0\", got %q", got)
		}
	})
}
