// Package model defines the core data structures used throughout seedscan.
//
// This package contains the following main types:
//   - Mnemonic: An immutable, length-checked sequence of seed words
//   - Strategy: The four search strategies (PositionSubstitution,
//     PatternCompletion, MissingWords, Descramble)
//   - Candidate: One fully-formed word sequence produced by a strategy
//   - Match: A candidate that passed validation, tagged with what varied
//   - ProgressSnapshot: Throughput numbers emitted during a search
//   - SearchResult: The outcome of one search invocation
//   - Run: The history summary of a search, without any phrase or address
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. The search engine, the report writers and the CLI all need
// these types, so centralizing them prevents import cycles.
package model
