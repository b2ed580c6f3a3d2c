// Package database provides SQLite-based run history for seedscan.
//
// The RunDB stores one row per search: strategy, phrase length, estimate,
// processed count, match count, cancellation flag, timing and the
// derivation settings. It never stores a phrase, a word or an address.
//
// The database is a single SQLite file opened through the CGO-free
// modernc.org/sqlite driver in WAL mode.
package database
