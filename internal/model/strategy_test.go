package model

import (
	"errors"
	"testing"
)

func words(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "abandon"
	}
	return out
}

func TestStrategyValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		strategy Strategy
		wantErr  error
	}{
		{
			name:     "position substitution with 12 words",
			strategy: PositionSubstitution{Phrase: words(12)},
		},
		{
			name:     "position substitution with 13 words",
			strategy: PositionSubstitution{Phrase: words(13)},
			wantErr:  ErrInvalidLength,
		},
		{
			name:     "pattern completion defaults to 24 words",
			strategy: PatternCompletion{Known: words(22), AddressSuffix: "abc"},
		},
		{
			name:     "pattern completion with unsupported length",
			strategy: PatternCompletion{Known: words(10), Length: 13},
			wantErr:  ErrInvalidLength,
		},
		{
			name:     "pattern completion with nothing to fill",
			strategy: PatternCompletion{Known: words(12), Length: 12},
			wantErr:  ErrKnownWordsTooLong,
		},
		{
			name:     "missing words completing 18",
			strategy: MissingWords{Known: words(16), Missing: 2},
		},
		{
			name:     "missing words completing 14",
			strategy: MissingWords{Known: words(12), Missing: 2},
			wantErr:  ErrInvalidLength,
		},
		{
			name:     "negative missing count",
			strategy: MissingWords{Known: words(13), Missing: -1},
			wantErr:  ErrInvalidMissingCount,
		},
		{
			name:     "descramble 15 words",
			strategy: Descramble{Words: words(15)},
		},
		{
			name:     "descramble 16 words",
			strategy: Descramble{Words: words(16)},
			wantErr:  ErrInvalidLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.strategy.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestStrategyKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind StrategyKind
		want string
	}{
		{KindPositionSubstitution, "position-substitution"},
		{KindPatternCompletion, "pattern-completion"},
		{KindMissingWords, "missing-words"},
		{KindDescramble, "descramble"},
		{KindUnknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("StrategyKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
		if got := ParseStrategyKind(tt.want); got != tt.kind {
			t.Errorf("ParseStrategyKind(%q) = %d, want %d", tt.want, got, tt.kind)
		}
	}
}

func TestHasAddressTarget(t *testing.T) {
	t.Parallel()

	if !HasAddressTarget(PositionSubstitution{Phrase: words(12), TargetAddress: "0xabc"}) {
		t.Error("expected substitution with target to need an address")
	}
	if HasAddressTarget(PositionSubstitution{Phrase: words(12)}) {
		t.Error("expected substitution without target to skip derivation")
	}
	if !HasAddressTarget(PatternCompletion{Known: words(11), Length: 12}) {
		t.Error("expected pattern completion to need an address")
	}
	if HasAddressTarget(MissingWords{Known: words(11), Missing: 1}) {
		t.Error("expected missing words to skip derivation")
	}
	if HasAddressTarget(Descramble{Words: words(12)}) {
		t.Error("expected descramble to skip derivation")
	}
}

func TestPatternCompletionMissing(t *testing.T) {
	t.Parallel()

	s := PatternCompletion{Known: words(21)}
	if s.Missing() != 3 {
		t.Errorf("expected 3 missing words, got %d", s.Missing())
	}
	s.Length = 12
	if s.Missing() != -9 {
		t.Errorf("expected -9 missing words, got %d", s.Missing())
	}
}
