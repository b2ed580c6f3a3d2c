// Package search enumerates candidate seed phrases and validates them.
//
// A search runs one model.Strategy through three stages:
//
//  1. A generator produces every candidate phrase of the strategy, split
//     into independent shards (by position, by first chosen word, or by
//     first word of the permutation).
//  2. The Engine passes each candidate to a ChecksumValidator and, when the
//     strategy carries an address target, to an AddressDeriver.
//  3. Accepted candidates become model.Match values in a Collector, which
//     returns them in generation order.
//
// Design decision: Cancellation is a context.Context polled between
// candidates. A cancelled search is not a failure; Run returns the matches
// collected so far with a nil error.
//
// The candidate space of PatternCompletion, MissingWords and Descramble grows
// combinatorially. Estimate returns the exact candidate count in closed form
// so callers can refuse infeasible runs before starting them, and the Engine
// enforces an optional limit through WithMaxCandidates.
package search
