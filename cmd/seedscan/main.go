// Package main provides the entry point for the seedscan CLI.
//
// seedscan recovers BIP39 seed phrases that were written down with a wrong
// word, with missing words, or in the wrong order. It runs entirely offline.
//
// Usage:
//
//	seedscan positions <phrase...> [--target <address>]
//	seedscan missing <known words...> --count 1
//	seedscan descramble <words...>
//
// See --help for all available options.
package main

// main is the entry point for seedscan.
func main() {
	Execute()
}
