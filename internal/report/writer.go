package report

import (
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/nao1215/seedscan/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Writer defines the interface for report output.
// Implementations write search results and run history in various formats.
type Writer interface {
	// Write outputs the matches and statistics of one search.
	// Returns the number of bytes written and any error encountered.
	Write(result *model.SearchResult) (int, error)

	// WriteHistory outputs previously recorded runs, newest first.
	WriteHistory(runs []model.Run) (int, error)
}

// Format selects a report writer.
type Format int

const (
	// FormatText is the human-readable default.
	FormatText Format = iota
	// FormatJSON is machine-readable JSON.
	FormatJSON
	// FormatMarkdown is GitHub Flavored Markdown.
	FormatMarkdown
)

// FormatFromFlags maps the --json and --markdown flags to a Format.
// Config validation already rejects both being set; JSON wins if they are.
func FormatFromFlags(jsonReport, markdownReport bool) Format {
	switch {
	case jsonReport:
		return FormatJSON
	case markdownReport:
		return FormatMarkdown
	default:
		return FormatText
	}
}

// NewWriter creates the Writer for format. version is embedded in JSON output.
func NewWriter(format Format, output io.Writer, version string) Writer {
	switch format {
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint(), WithVersion(version))
	case FormatMarkdown:
		return NewMarkdownWriter(output)
	default:
		return NewSimpleWriter(output)
	}
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
//
// It is a separate type rather than io.MultiWriter because Writer writes
// reports, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the result to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(result *model.SearchResult) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(result)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteHistory outputs the runs to all configured Writers.
func (m *MultiWriter) WriteHistory(runs []model.Run) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteHistory(runs)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

var titleCaser = cases.Title(language.English)

// StrategyTitle returns the display name of a strategy, e.g. "Position Substitution".
func StrategyTitle(kind model.StrategyKind) string {
	return titleCaser.String(strings.ReplaceAll(kind.String(), "-", " "))
}

// estimateText formats the pre-flight estimate with thousands separators.
func estimateText(result *model.SearchResult) string {
	if result.Estimated == nil {
		return "unknown"
	}
	return humanize.BigComma(result.Estimated)
}

// countText formats a candidate count with thousands separators.
func countText(n uint64) string {
	return humanize.Comma(int64(n)) //nolint:gosec // Candidate counts stay far below 2^63
}
