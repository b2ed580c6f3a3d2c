package search

import "github.com/nao1215/seedscan/internal/wordlist"

// ChecksumValidator decides whether an ordered word sequence is a
// checksum-valid mnemonic. Implementations must be safe for concurrent use
// when the engine runs with more than one worker.
type ChecksumValidator interface {
	ValidChecksum(words []string) bool
}

// AddressDeriver derives the address of a checksum-valid mnemonic.
// A non-nil error means derivation failed for this phrase only; the engine
// treats it as a non-match and keeps going. Implementations must be safe for
// concurrent use when the engine runs with more than one worker.
type AddressDeriver interface {
	DeriveAddress(words []string) (string, error)
}

// ChecksumFunc adapts a function to ChecksumValidator.
type ChecksumFunc func(words []string) bool

// ValidChecksum implements ChecksumValidator.
func (f ChecksumFunc) ValidChecksum(words []string) bool { return f(words) }

// DeriveFunc adapts a function to AddressDeriver.
type DeriveFunc func(words []string) (string, error)

// DeriveAddress implements AddressDeriver.
func (f DeriveFunc) DeriveAddress(words []string) (string, error) { return f(words) }

// Collaborators bundles the read-only dependencies of a search.
type Collaborators struct {
	// WordSet is the vocabulary candidates are drawn from.
	WordSet *wordlist.WordSet

	// Validator checks candidate checksums. Required.
	Validator ChecksumValidator

	// Deriver derives addresses. Required only for strategies with an
	// address target.
	Deriver AddressDeriver
}
