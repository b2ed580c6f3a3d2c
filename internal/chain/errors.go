package chain

import "errors"

var (
	// ErrUnsupportedChain is returned when a chain name is not recognized.
	ErrUnsupportedChain = errors.New("unsupported chain")

	// ErrLanguageConflict is returned when a validator for one language is
	// requested while a validator for another language is active.
	// go-bip39 keeps its word list in package state, so a process can only
	// validate one language at a time.
	ErrLanguageConflict = errors.New("another wordlist language is already active")

	// ErrUnknownWord is returned by Check when a word is not in the word list.
	ErrUnknownWord = errors.New("word is not in the wordlist")

	// ErrChecksumMismatch is returned by Check when every word is known but
	// the checksum bits do not match.
	ErrChecksumMismatch = errors.New("mnemonic checksum mismatch")

	// ErrPathIndexOutOfRange is returned by NewDeriver when the account or
	// address index does not fit below the hardened key offset.
	ErrPathIndexOutOfRange = errors.New("derivation path index out of range")
)
