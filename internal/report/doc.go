// Package report provides report generation and output functionality.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Human-readable text output for terminal display
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown for sharing recovery notes
//
// Report writing is kept apart from the data structures in the model
// package, so output formats can be added without touching the search.
//
// Writers are the only code path that prints recovered phrases. Logs mask
// them, and the history database never stores them.
package report
