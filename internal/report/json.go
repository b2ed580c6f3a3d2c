package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/seedscan/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string

	// version is embedded in the report wrapper.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// WithVersion sets the seedscan version recorded in the output.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// JSONReport wraps a search result with output metadata, so output-only
// fields stay out of the core data structure.
type JSONReport struct {
	// Version is the seedscan version that generated this report.
	Version string `json:"version,omitempty"`

	// ElapsedSeconds duplicates Result.Elapsed in a unit people can read.
	ElapsedSeconds float64 `json:"elapsedSeconds"`

	// Result is the search result.
	Result *model.SearchResult `json:"result"`
}

// JSONHistory wraps recorded runs with output metadata.
type JSONHistory struct {
	Version string      `json:"version,omitempty"`
	Runs    []model.Run `json:"runs"`
}

// Write outputs the search result wrapped with metadata.
func (w *JSONWriter) Write(result *model.SearchResult) (int, error) {
	return w.writeJSON(&JSONReport{
		Version:        w.version,
		ElapsedSeconds: result.Elapsed.Seconds(),
		Result:         result,
	})
}

// WriteHistory outputs recorded runs wrapped with metadata.
func (w *JSONWriter) WriteHistory(runs []model.Run) (int, error) {
	if runs == nil {
		runs = []model.Run{}
	}
	return w.writeJSON(&JSONHistory{Version: w.version, Runs: runs})
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
