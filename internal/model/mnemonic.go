package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// SupportedLengths lists the phrase lengths accepted by every entry point.
// These are the BIP39 lengths for 128, 160, 192 and 256 bits of entropy.
var SupportedLengths = []int{12, 15, 18, 24}

// ErrInvalidLength is matched by every InvalidLengthError through errors.Is.
var ErrInvalidLength = errors.New("invalid mnemonic length")

// InvalidLengthError reports a phrase or candidate length outside SupportedLengths.
// It is always returned before any enumeration begins.
type InvalidLengthError struct {
	// Length is the offending number of words.
	Length int
}

// Error implements the error interface.
func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("%s %d: must be one of %v words", ErrInvalidLength, e.Length, SupportedLengths)
}

// Is reports whether target is ErrInvalidLength.
func (e *InvalidLengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

// IsSupportedLength reports whether n is one of SupportedLengths.
func IsSupportedLength(n int) bool {
	return slices.Contains(SupportedLengths, n)
}

// CheckLength returns an *InvalidLengthError when n is not a supported length.
func CheckLength(n int) error {
	if !IsSupportedLength(n) {
		return &InvalidLengthError{Length: n}
	}
	return nil
}

// Mnemonic is an immutable ordered sequence of seed words.
// Order is significant: permuting a mnemonic changes its checksum and
// every address derived from it.
type Mnemonic struct {
	words []string
}

// NewMnemonic creates a Mnemonic from the given words.
// The slice is copied, so later changes by the caller are not observed.
// Returns an *InvalidLengthError if the length is not supported.
func NewMnemonic(words []string) (Mnemonic, error) {
	if err := CheckLength(len(words)); err != nil {
		return Mnemonic{}, err
	}
	return Mnemonic{words: slices.Clone(words)}, nil
}

// ParseMnemonic splits a space-separated phrase into a Mnemonic.
// Words are lowercased and surrounding whitespace is ignored.
func ParseMnemonic(phrase string) (Mnemonic, error) {
	return NewMnemonic(SplitWords(phrase))
}

// SplitWords lowercases a phrase and splits it into words on any whitespace.
// It is the common normalization applied to every user-supplied phrase.
func SplitWords(phrase string) []string {
	return strings.Fields(strings.ToLower(phrase))
}

// Len returns the number of words.
func (m Mnemonic) Len() int {
	return len(m.words)
}

// Words returns a copy of the words.
func (m Mnemonic) Words() []string {
	return slices.Clone(m.words)
}

// String returns the words joined by single spaces.
func (m Mnemonic) String() string {
	return strings.Join(m.words, " ")
}
