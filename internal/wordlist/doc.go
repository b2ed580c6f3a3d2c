// Package wordlist provides the immutable word sets that candidate phrases
// are drawn from.
//
// A WordSet keeps the canonical order of its source list so that iteration is
// stable for the lifetime of a search. Canonical returns the BIP39 wordlist
// for a language tag, sourced from github.com/tyler-smith/go-bip39/wordlists.
package wordlist
