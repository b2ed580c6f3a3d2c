package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nao1215/seedscan/internal/model"
)

// SimpleWriter outputs human-readable text reports for terminal display.
// Matches use the classic recovery tool layout, one block per match, with
// 1-based word positions.
type SimpleWriter struct {
	baseWriter

	// verbose adds derived addresses to checksum-only matches and the
	// search statistics section.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the search result in human-readable format.
func (w *SimpleWriter) Write(result *model.SearchResult) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, result)
	w.writeMatches(&sb, result)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// WriteHistory outputs recorded runs as an aligned table.
func (w *SimpleWriter) WriteHistory(runs []model.Run) (int, error) {
	var sb strings.Builder

	if len(runs) == 0 {
		sb.WriteString("No recorded runs\n")
		return w.output.Write([]byte(sb.String()))
	}

	sb.WriteString(fmt.Sprintf("%-5s %-20s %-22s %6s %15s %8s %10s %s\n",
		"ID", "STARTED", "STRATEGY", "WORDS", "PROCESSED", "MATCHES", "ELAPSED", "STATUS"))
	for _, r := range runs {
		status := "complete"
		if r.Cancelled {
			status = "cancelled"
		}
		sb.WriteString(fmt.Sprintf("%-5d %-20s %-22s %6d %15s %8d %10s %s\n",
			r.ID,
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Strategy.String(),
			r.PhraseLength,
			countText(r.Processed),
			r.Matches,
			r.Elapsed.Round(time.Millisecond),
			status,
		))
	}
	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with search information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, result *model.SearchResult) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                         SEEDSCAN REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Strategy:      %s\n", StrategyTitle(result.Strategy)))
	sb.WriteString(fmt.Sprintf("Phrase Length: %d words\n", result.PhraseLength))
	sb.WriteString(fmt.Sprintf("Candidates:    %s of %s estimated\n", countText(result.Processed), estimateText(result)))
	if w.verbose {
		sb.WriteString(fmt.Sprintf("Workers:       %d\n", result.Workers))
		sb.WriteString(fmt.Sprintf("Speed:         %.0f/sec\n", result.Snapshot().Rate))
	}
	sb.WriteString(fmt.Sprintf("Elapsed:       %s\n", result.Elapsed.Round(time.Millisecond)))

	if result.Cancelled {
		sb.WriteString("Status:        CANCELLED (partial results)\n")
	} else {
		sb.WriteString("Status:        Complete\n")
	}

	sb.WriteString("\n")
}

// writeMatches writes one block per match.
func (w *SimpleWriter) writeMatches(sb *strings.Builder, result *model.SearchResult) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("MATCHES (%d)\n", len(result.Matches)))
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")

	if !result.HasMatches() {
		sb.WriteString("\nNo matching combinations found\n\n")
		return
	}

	for i, m := range result.Matches {
		w.writeMatch(sb, i+1, m)
	}
	sb.WriteString("\n")
}

// writeMatch writes a single match block.
func (w *SimpleWriter) writeMatch(sb *strings.Builder, n int, m model.Match) {
	switch m.Strategy {
	case model.KindPositionSubstitution:
		sb.WriteString(fmt.Sprintf("\nMatch %d:\n", n))
		sb.WriteString(fmt.Sprintf("Position %d: %s -> %s\n", m.Position+1, m.Original, m.Replacement))
		if m.Address != "" {
			sb.WriteString(fmt.Sprintf("Address: %s\n", m.Address))
		}
		sb.WriteString("Seed phrase:\n")
		sb.WriteString(m.PhraseString())
		sb.WriteString("\n")
	case model.KindPatternCompletion:
		sb.WriteString(fmt.Sprintf("\nMatch %d:\n", n))
		sb.WriteString(fmt.Sprintf("Address: %s\n", m.Address))
		sb.WriteString(fmt.Sprintf("Seed: %s\n", m.PhraseString()))
	default:
		sb.WriteString(fmt.Sprintf("\nOption %d:\n", n))
		sb.WriteString(m.PhraseString())
		sb.WriteString("\n")
	}
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by seedscan\n")
	sb.WriteString("https://github.com/nao1215/seedscan\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
