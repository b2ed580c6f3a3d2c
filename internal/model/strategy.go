package model

import (
	"errors"
	"fmt"
)

// DefaultPatternLength is the phrase length PatternCompletion fills up to
// when no explicit length is given.
const DefaultPatternLength = 24

// Strategy validation errors.
var (
	// ErrInvalidMissingCount is returned when MissingWords asks for a negative
	// number of missing words.
	ErrInvalidMissingCount = errors.New("invalid missing word count: must be non-negative")

	// ErrKnownWordsTooLong is returned when PatternCompletion already has at
	// least as many known words as the target length, leaving nothing to fill.
	ErrKnownWordsTooLong = errors.New("known words must be fewer than the phrase length")
)

// StrategyKind identifies one of the four search strategies.
type StrategyKind int

const (
	// KindUnknown is the zero value and never names a real strategy.
	KindUnknown StrategyKind = iota
	// KindPositionSubstitution varies one position of a full phrase at a time.
	KindPositionSubstitution
	// KindPatternCompletion appends word combinations and matches an address suffix.
	KindPatternCompletion
	// KindMissingWords appends word combinations and keeps every valid checksum.
	KindMissingWords
	// KindDescramble tries every distinct ordering of a full set of words.
	KindDescramble
)

// String returns the strategy's stable identifier.
func (k StrategyKind) String() string {
	switch k {
	case KindPositionSubstitution:
		return "position-substitution"
	case KindPatternCompletion:
		return "pattern-completion"
	case KindMissingWords:
		return "missing-words"
	case KindDescramble:
		return "descramble"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so kinds appear by name in JSON.
func (k StrategyKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseStrategyKind resolves a stable identifier back to its kind.
// Unknown identifiers yield KindUnknown.
func ParseStrategyKind(name string) StrategyKind {
	for _, k := range []StrategyKind{
		KindPositionSubstitution,
		KindPatternCompletion,
		KindMissingWords,
		KindDescramble,
	} {
		if k.String() == name {
			return k
		}
	}
	return KindUnknown
}

// Strategy is the tagged variant describing what a search enumerates.
// The concrete types are PositionSubstitution, PatternCompletion,
// MissingWords and Descramble.
type Strategy interface {
	// Kind returns the variant tag.
	Kind() StrategyKind

	// PhraseLength returns the length every candidate will have.
	PhraseLength() int

	// Validate checks the structural invariants of the strategy.
	// Length failures are reported as *InvalidLengthError.
	Validate() error
}

// PositionSubstitution replaces exactly one word of Phrase at a time.
// It isolates single-word transcription errors.
type PositionSubstitution struct {
	// Phrase is the full, possibly wrong, phrase.
	Phrase []string

	// TargetAddress is compared case-insensitively against the address derived
	// from every checksum-valid candidate. When empty, every checksum-valid
	// substitution is a match.
	TargetAddress string
}

// Kind implements Strategy.
func (PositionSubstitution) Kind() StrategyKind { return KindPositionSubstitution }

// PhraseLength implements Strategy.
func (s PositionSubstitution) PhraseLength() int { return len(s.Phrase) }

// Validate implements Strategy.
func (s PositionSubstitution) Validate() error {
	return CheckLength(len(s.Phrase))
}

// PatternCompletion appends combinations of words to Known until the phrase
// reaches Length and keeps candidates whose derived address ends with
// AddressSuffix.
//
// Combinations are drawn in the word set's fixed order and appended in that
// order; other relative orders of the same fill words are never tried.
type PatternCompletion struct {
	// Known are the leading words of the phrase.
	Known []string

	// Length is the full phrase length. Zero means DefaultPatternLength.
	Length int

	// AddressSuffix is matched case-insensitively against the end of the
	// derived address. An empty suffix matches every derived address.
	AddressSuffix string
}

// Kind implements Strategy.
func (PatternCompletion) Kind() StrategyKind { return KindPatternCompletion }

// PhraseLength implements Strategy.
func (s PatternCompletion) PhraseLength() int {
	if s.Length == 0 {
		return DefaultPatternLength
	}
	return s.Length
}

// Missing returns the number of positions to fill.
func (s PatternCompletion) Missing() int {
	return s.PhraseLength() - len(s.Known)
}

// Validate implements Strategy.
func (s PatternCompletion) Validate() error {
	if err := CheckLength(s.PhraseLength()); err != nil {
		return err
	}
	if len(s.Known) >= s.PhraseLength() {
		return fmt.Errorf("%w: %d known, length %d", ErrKnownWordsTooLong, len(s.Known), s.PhraseLength())
	}
	return nil
}

// MissingWords appends combinations of Missing words to Known and keeps every
// checksum-valid result. No address is derived.
type MissingWords struct {
	// Known are the leading words of the phrase.
	Known []string

	// Missing is the number of words to append.
	Missing int
}

// Kind implements Strategy.
func (MissingWords) Kind() StrategyKind { return KindMissingWords }

// PhraseLength implements Strategy.
func (s MissingWords) PhraseLength() int { return len(s.Known) + s.Missing }

// Validate implements Strategy.
func (s MissingWords) Validate() error {
	if s.Missing < 0 {
		return ErrInvalidMissingCount
	}
	return CheckLength(s.PhraseLength())
}

// Descramble tries every distinct permutation of Words and keeps every
// checksum-valid ordering. No address is derived.
type Descramble struct {
	// Words is the full multiset of phrase words in unknown order.
	Words []string
}

// Kind implements Strategy.
func (Descramble) Kind() StrategyKind { return KindDescramble }

// PhraseLength implements Strategy.
func (s Descramble) PhraseLength() int { return len(s.Words) }

// Validate implements Strategy.
func (s Descramble) Validate() error {
	return CheckLength(len(s.Words))
}

// HasAddressTarget reports whether matches for s require a derived address.
func HasAddressTarget(s Strategy) bool {
	switch st := s.(type) {
	case PositionSubstitution:
		return st.TargetAddress != ""
	case PatternCompletion:
		return true
	default:
		return false
	}
}
