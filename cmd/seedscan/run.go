package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/nao1215/seedscan/internal/chain"
	"github.com/nao1215/seedscan/internal/config"
	"github.com/nao1215/seedscan/internal/database"
	"github.com/nao1215/seedscan/internal/log"
	"github.com/nao1215/seedscan/internal/model"
	"github.com/nao1215/seedscan/internal/report"
	"github.com/nao1215/seedscan/internal/search"
	"github.com/nao1215/seedscan/internal/wordlist"
	"github.com/spf13/cobra"
)

// errNoWords is returned when neither arguments nor stdin supply any word.
var errNoWords = errors.New("no words provided (pass them as arguments or on standard input)")

// session is the validated setup shared by the commands that touch phrases.
type session struct {
	cfg       *config.Config
	logger    *slog.Logger
	words     *wordlist.WordSet
	validator *chain.ChecksumValidator
	deriver   *chain.Deriver
}

// newSession builds and validates the configuration of cmd and creates the
// wordlist, checksum validator and address deriver it selects.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg)
	slog.SetDefault(logger)

	ws, err := wordlist.Canonical(cfg.Language)
	if err != nil {
		return nil, err
	}
	validator, err := chain.NewChecksumValidator(cfg.Language)
	if err != nil {
		return nil, err
	}
	c, err := chain.ParseChain(cfg.Chain)
	if err != nil {
		return nil, err
	}
	deriver, err := chain.NewDeriver(c,
		chain.WithPassphrase(cfg.Passphrase),
		chain.WithAccount(cfg.Account),
		chain.WithAddressIndex(cfg.AddressIndex),
	)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:       cfg,
		logger:    logger,
		words:     ws,
		validator: validator,
		deriver:   deriver,
	}, nil
}

// setupLogger creates the secure structured logger selected by cfg.
func setupLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	if cfg.LogJSON {
		return log.NewSecureJSONLogger(w, cfg.Verbose)
	}
	return log.NewSecureLogger(w, cfg.Verbose)
}

// readInput returns the arguments joined by spaces, or the command's
// standard input when there are no arguments.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		if fi, err := f.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "Enter the words, then press Ctrl-D:")
		}
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read words: %w", err)
	}
	return string(data), nil
}

// readWords returns the lowercased words of a partial phrase.
func readWords(cmd *cobra.Command, args []string) ([]string, error) {
	input, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	words := model.SplitWords(input)
	if len(words) == 0 {
		return nil, errNoWords
	}
	return words, nil
}

// readMnemonic returns a complete phrase. Unsupported lengths fail with an
// *model.InvalidLengthError before any search is set up.
func readMnemonic(cmd *cobra.Command, args []string) (model.Mnemonic, error) {
	input, err := readInput(cmd, args)
	if err != nil {
		return model.Mnemonic{}, err
	}
	if len(model.SplitWords(input)) == 0 {
		return model.Mnemonic{}, errNoWords
	}
	return model.ParseMnemonic(input)
}

// runSearch runs one strategy with the session's collaborators, writes the
// report and records the run in the history database.
func (s *session) runSearch(cmd *cobra.Command, strategy model.Strategy, input []string) error {
	stderr := cmd.ErrOrStderr()

	if unknown := s.words.Unknown(input); len(unknown) > 0 {
		s.logger.Warn("input contains words outside the wordlist",
			"count", len(unknown),
			"language", s.cfg.Language,
		)
		fmt.Fprintf(stderr, "Warning: not in the %s wordlist: %s\n",
			s.cfg.Language, strings.Join(unknown, ", "))
	}

	// Interrupts cancel the search; partial results are still reported.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := search.NewEngine(
		search.Collaborators{
			WordSet:   s.words,
			Validator: s.validator,
			Deriver:   s.deriver,
		},
		s.engineOptions(stderr)...,
	)

	result, err := engine.Run(ctx, strategy)
	if err != nil {
		if errors.Is(err, search.ErrSearchTooLarge) {
			return fmt.Errorf("%w (narrow the search, raise --max-candidates, or pass --force)", err)
		}
		return err
	}
	if result.Cancelled && !s.cfg.Quiet {
		fmt.Fprintln(stderr, "Search interrupted; reporting partial results.")
	}

	if err := writeReport(cmd.OutOrStdout(), s.cfg, func(w report.Writer) error {
		_, err := w.Write(result)
		return err
	}); err != nil {
		return err
	}

	// The run is recorded even after an interrupt.
	s.saveRun(context.WithoutCancel(ctx), result)
	return nil
}

// engineOptions translates the configuration into search engine options.
func (s *session) engineOptions(stderr io.Writer) []search.Option {
	opts := []search.Option{
		search.WithLogger(s.logger),
		search.WithWorkers(s.cfg.Workers),
		search.WithProgressInterval(s.cfg.ProgressInterval),
		search.WithMaxCandidates(new(big.Int).SetUint64(s.cfg.CandidateLimit())),
	}
	if s.cfg.Quiet {
		return opts
	}

	found := 0
	return append(opts,
		search.WithProgressFunc(func(p model.ProgressSnapshot) {
			fmt.Fprintf(stderr, "Processed %s candidates (%s/s, %s elapsed)\n",
				humanize.Comma(int64(p.Processed)), //nolint:gosec // Counts stay far below MaxInt64
				humanize.Comma(int64(p.Rate)),
				p.Elapsed.Round(time.Second))
		}),
		search.WithMatchFunc(func(m model.Match) {
			found++
			fmt.Fprintln(stderr, matchNotice(found, m))
		}),
	)
}

// matchNotice describes the nth match without printing the phrase itself.
func matchNotice(n int, m model.Match) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Match %d", n)
	if m.HasPosition() {
		fmt.Fprintf(&b, ": position %d: %s -> %s", m.Position+1, m.Original, m.Replacement)
	}
	if m.Address != "" {
		fmt.Fprintf(&b, ": address %s", m.Address)
	}
	if !m.HasPosition() && m.Address == "" {
		b.WriteString(" found")
	}
	return b.String()
}

// saveRun records the summary of result. Failures are logged, not returned:
// the matches have already been reported.
func (s *session) saveRun(ctx context.Context, result *model.SearchResult) {
	if !s.cfg.SaveHistory {
		return
	}

	db, err := database.Open(s.cfg.HistoryDir, database.DefaultOptions())
	if err != nil {
		s.logger.Error("failed to open history database", "dir", s.cfg.HistoryDir, "error", err)
		return
	}
	defer db.Close()

	id, err := db.SaveRun(ctx, model.NewRun(result, string(s.deriver.Chain()), s.validator.Language()))
	if err != nil {
		s.logger.Error("failed to save run", "error", err)
		return
	}
	s.logger.Debug("run saved to history", "id", id, "path", db.Path())
}

// writeReport opens the report destination of cfg and hands the writer for
// the configured format to write. With TeeReport the report goes to both
// the file and stdout.
func writeReport(stdout io.Writer, cfg *config.Config, write func(report.Writer) error) error {
	if cfg.ReportFile == "" {
		return runWriter(newReportWriter(stdout, cfg), write)
	}

	// Create directories if they don't exist
	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Reports contain recovered phrases and must only be readable by the owner
	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := newReportWriter(f, cfg)
	if cfg.TeeReport {
		w = report.NewMultiWriter(w, newReportWriter(stdout, cfg))
	}
	return runWriter(w, write)
}

// newReportWriter creates the writer for the configured format.
func newReportWriter(output io.Writer, cfg *config.Config) report.Writer {
	format := report.FormatFromFlags(cfg.JSONReport, cfg.MarkdownReport)
	if format == report.FormatText {
		return report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}
	return report.NewWriter(format, output, getVersion())
}

// runWriter calls write with w and wraps its error.
func runWriter(w report.Writer, write func(report.Writer) error) error {
	if err := write(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
