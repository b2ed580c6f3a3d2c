package report

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/seedscan/internal/model"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown.
// Reports use tables for statistics, alerts for the outcome, and a mermaid
// pie chart of matches per position for substitution searches.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the search result in Markdown format.
func (w *MarkdownWriter) Write(result *model.SearchResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, result)
	w.writeAlert(md, result)
	w.writeMatches(md, result)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteHistory outputs recorded runs in Markdown format.
func (w *MarkdownWriter) WriteHistory(runs []model.Run) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("seedscan History")
	md.PlainText("")

	if len(runs) == 0 {
		md.PlainText("No recorded runs.")
		md.PlainText("")
		return len(md.String()), md.Build()
	}

	rows := make([][]string, len(runs))
	perStrategy := make(map[model.StrategyKind]uint64)
	for i, r := range runs {
		status := "✅ Complete"
		if r.Cancelled {
			status = "⚠️ Cancelled"
		}
		rows[i] = []string{
			strconv.FormatInt(r.ID, 10),
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			StrategyTitle(r.Strategy),
			strconv.Itoa(r.PhraseLength),
			countText(r.Processed),
			strconv.Itoa(r.Matches),
			r.Elapsed.Round(time.Millisecond).String(),
			status,
		}
		perStrategy[r.Strategy]++
	}

	md.Table(markdown.TableSet{
		Header: []string{"ID", "Started", "Strategy", "Words", "Processed", "Matches", "Elapsed", "Status"},
		Rows:   rows,
	})
	md.PlainText("")

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Runs by Strategy"),
		piechart.WithShowData(true),
	)
	for _, kind := range []model.StrategyKind{
		model.KindPositionSubstitution,
		model.KindPatternCompletion,
		model.KindMissingWords,
		model.KindDescramble,
	} {
		if n := perStrategy[kind]; n > 0 {
			chart.LabelAndIntValue(StrategyTitle(kind), n)
		}
	}
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with search information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, result *model.SearchResult) {
	md.H1("seedscan Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Strategy", StrategyTitle(result.Strategy)},
			{"Phrase Length", strconv.Itoa(result.PhraseLength) + " words"},
			{"Candidates", countText(result.Processed) + " of " + estimateText(result)},
			{"Workers", strconv.Itoa(result.Workers)},
			{"Started", result.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Elapsed", result.Elapsed.Round(time.Millisecond).String()},
			{"Status", w.getStatusText(result)},
		},
	})
	md.PlainText("")
}

// getStatusText returns the status text based on result state.
func (w *MarkdownWriter) getStatusText(result *model.SearchResult) string {
	if result.Cancelled {
		return "⚠️ Cancelled (partial results)"
	}
	return "✅ Complete"
}

// writeAlert writes an alert summarizing the outcome.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, result *model.SearchResult) {
	switch {
	case result.HasMatches() && len(result.Matches) == 1:
		md.Tip("Exactly one candidate matched.")
	case result.HasMatches():
		md.Importantf("%d candidates matched. Confirm each one against a known address before use.", len(result.Matches))
	case result.Cancelled:
		md.Warning("The search was cancelled before any match was found.")
	default:
		md.Note("No matching combinations found.")
	}
	md.PlainText("")

	md.Caution("This report contains recovered seed phrases. Store it offline and delete it when done.")
	md.PlainText("")
}

// writeMatches writes the match table and one code block per phrase.
func (w *MarkdownWriter) writeMatches(md *markdown.Markdown, result *model.SearchResult) {
	md.H2("Matches")
	md.PlainText("")

	if !result.HasMatches() {
		md.PlainText("No matches.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(result.Matches))
	for i, m := range result.Matches {
		position, change := "-", "-"
		if m.HasPosition() {
			position = strconv.Itoa(m.Position + 1)
			change = "`" + m.Original + "` → `" + m.Replacement + "`"
		}
		address := "-"
		if m.Address != "" {
			address = "`" + m.Address + "`"
		}
		rows[i] = []string{strconv.Itoa(i + 1), position, change, address}
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "Position", "Change", "Address"},
		Rows:   rows,
	})
	md.PlainText("")

	if result.Strategy == model.KindPositionSubstitution && len(result.Matches) > 1 {
		w.writePositionChart(md, result.Matches)
	}

	for i, m := range result.Matches {
		md.H3("Match " + strconv.Itoa(i+1))
		md.CodeBlocks(markdown.SyntaxHighlightText, m.PhraseString())
		md.PlainText("")
	}
}

// writePositionChart writes a mermaid pie chart of matches per word position.
func (w *MarkdownWriter) writePositionChart(md *markdown.Markdown, matches []model.Match) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Matches by Position"),
		piechart.WithShowData(true),
	)

	counts := make(map[int]uint64)
	order := make([]int, 0)
	for _, m := range matches {
		if _, ok := counts[m.Position]; !ok {
			order = append(order, m.Position)
		}
		counts[m.Position]++
	}
	for _, pos := range order {
		chart.LabelAndIntValue("Position "+strconv.Itoa(pos+1), counts[pos])
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [seedscan](https://github.com/nao1215/seedscan)*")
}
