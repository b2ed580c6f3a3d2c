package model

import (
	"testing"
	"time"
)

func TestNewMatch(t *testing.T) {
	t.Parallel()

	c := Candidate{
		Words:       []string{"a", "b", "c"},
		Position:    1,
		Original:    "x",
		Replacement: "b",
	}
	m := NewMatch(KindPositionSubstitution, c, "0xabc")

	c.Words[0] = "mutated"
	if m.Phrase[0] != "a" {
		t.Errorf("match shares the candidate buffer: %q", m.Phrase[0])
	}
	if !m.HasPosition() || m.Position != 1 {
		t.Errorf("expected position 1, got %d", m.Position)
	}
	if m.PhraseString() != "a b c" {
		t.Errorf("unexpected phrase string %q", m.PhraseString())
	}
	if m.Address != "0xabc" {
		t.Errorf("unexpected address %q", m.Address)
	}
}

func TestNewProgressSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("rate is processed per second", func(t *testing.T) {
		t.Parallel()

		s := NewProgressSnapshot(500, 2*time.Second)
		if s.Rate != 250 {
			t.Errorf("expected rate 250, got %v", s.Rate)
		}
	})

	t.Run("zero elapsed gives zero rate", func(t *testing.T) {
		t.Parallel()

		s := NewProgressSnapshot(500, 0)
		if s.Rate != 0 {
			t.Errorf("expected rate 0, got %v", s.Rate)
		}
	})
}
