package search

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"sync/atomic"
	"time"

	"github.com/nao1215/seedscan/internal/model"
	"github.com/nao1215/seedscan/internal/progress"
	"golang.org/x/sync/errgroup"
)

// Engine drives a strategy's candidates through validation and collects matches.
// An Engine holds only read-only configuration; every Run owns its own
// Collector and progress Tracker, so one Engine may serve sequential runs.
type Engine struct {
	collab Collaborators

	// logger is used for structured logging of search milestones.
	logger *slog.Logger

	// workers is the number of shards searched concurrently.
	workers int

	// maxCandidates rejects runs whose estimate exceeds it. Nil means no limit.
	maxCandidates *big.Int

	onProgress func(model.ProgressSnapshot)
	onMatch    func(model.Match)

	clock    progress.Clock
	interval time.Duration
}

// Option is a function that configures an Engine.
type Option func(*Engine)

// WithLogger sets a custom logger for the engine.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithWorkers sets the number of concurrent workers.
// Values below 2 run the search sequentially.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithMaxCandidates makes Run fail with ErrSearchTooLarge when the
// pre-flight estimate exceeds limit. A nil or non-positive limit disables the check.
func WithMaxCandidates(limit *big.Int) Option {
	return func(e *Engine) {
		if limit == nil || limit.Sign() <= 0 {
			e.maxCandidates = nil
			return
		}
		e.maxCandidates = new(big.Int).Set(limit)
	}
}

// WithProgressFunc sets the callback for throttled progress snapshots.
// It may be called from worker goroutines; it must not block for long.
func WithProgressFunc(fn func(model.ProgressSnapshot)) Option {
	return func(e *Engine) {
		e.onProgress = fn
	}
}

// WithMatchFunc sets the callback invoked synchronously for each match as it
// is found, before Run returns. Calls never overlap.
func WithMatchFunc(fn func(model.Match)) Option {
	return func(e *Engine) {
		e.onMatch = fn
	}
}

// WithClock sets the time source used for progress and elapsed time.
func WithClock(clock progress.Clock) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

// WithProgressInterval sets the minimum time between progress snapshots.
func WithProgressInterval(d time.Duration) Option {
	return func(e *Engine) {
		e.interval = d
	}
}

// NewEngine creates an Engine over the given collaborators.
// Collaborators are checked on every Run, not here, so that a missing word
// set is reported as a setup error of the search that needed it.
func NewEngine(collab Collaborators, opts ...Option) *Engine {
	e := &Engine{
		collab:   collab,
		workers:  1,
		clock:    progress.SystemClock(),
		interval: progress.DefaultInterval,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Run searches the strategy's candidate space and returns the matches found.
//
// Structural problems (unsupported phrase length, empty word set, missing
// collaborator, estimate above the limit) are returned as errors before any
// candidate is generated. Once enumeration starts Run always returns a
// result and a nil error: invalid checksums and failed derivations only mean
// "no match", and cancellation of ctx stops the search between candidates
// with result.Cancelled set.
func (e *Engine) Run(ctx context.Context, s model.Strategy) (*model.SearchResult, error) {
	estimated, err := e.preflight(s)
	if err != nil {
		return nil, err
	}

	gen := newGenerator(s, e.collab.WordSet)
	shards := gen.Shards()
	workers := min(e.workers, max(shards, 1))
	accept := e.matcher(s)

	e.logger.Info("starting search",
		"strategy", s.Kind().String(),
		"length", s.PhraseLength(),
		"estimated", estimated.String(),
		"workers", workers,
	)

	tracker := progress.NewTracker(e.onProgress,
		progress.WithClock(e.clock),
		progress.WithInterval(e.interval),
	)
	collector := NewCollector(shards, e.notifyFunc(s.Kind()))

	var cancelled atomic.Bool
	run := func(shard int) {
		if e.runShard(ctx, gen, shard, s.Kind(), accept, tracker, collector) {
			cancelled.Store(true)
		}
	}

	if workers <= 1 {
		for shard := 0; shard < shards; shard++ {
			run(shard)
			if cancelled.Load() {
				break
			}
		}
	} else {
		g := new(errgroup.Group)
		g.SetLimit(workers)
		for shard := 0; shard < shards; shard++ {
			if ctx.Err() != nil {
				cancelled.Store(true)
				break
			}
			g.Go(func() error {
				run(shard)
				return nil
			})
		}
		_ = g.Wait() //nolint:errcheck // Workers never return errors
	}

	result := &model.SearchResult{
		Strategy:     s.Kind(),
		PhraseLength: s.PhraseLength(),
		Matches:      collector.Matches(),
		Processed:    tracker.Processed(),
		Estimated:    estimated,
		Workers:      workers,
		StartedAt:    tracker.Start(),
		Elapsed:      tracker.Elapsed(),
		Cancelled:    cancelled.Load(),
	}

	if result.Cancelled {
		e.logger.Warn("search cancelled",
			"strategy", s.Kind().String(),
			"processed", result.Processed,
			"matches", len(result.Matches),
			"reason", ctx.Err(),
		)
	} else {
		e.logger.Info("search complete",
			"strategy", s.Kind().String(),
			"processed", result.Processed,
			"matches", len(result.Matches),
			"elapsed", result.Elapsed,
		)
	}

	return result, nil
}

// preflight performs every setup check and returns the candidate estimate.
func (e *Engine) preflight(s model.Strategy) (*big.Int, error) {
	if s == nil {
		return nil, ErrNoStrategy
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if e.collab.WordSet.IsEmpty() {
		return nil, ErrEmptyWordSet
	}
	if e.collab.Validator == nil {
		return nil, ErrNoValidator
	}
	if model.HasAddressTarget(s) && e.collab.Deriver == nil {
		return nil, ErrNoDeriver
	}

	estimated, err := Estimate(s, e.collab.WordSet)
	if err != nil {
		return nil, err
	}
	if e.maxCandidates != nil && estimated.Cmp(e.maxCandidates) > 0 {
		return nil, fmt.Errorf("%w: %s candidates, limit %s", ErrSearchTooLarge, estimated, e.maxCandidates)
	}
	return estimated, nil
}

// runShard enumerates one shard and reports whether it stopped on cancellation.
func (e *Engine) runShard(
	ctx context.Context,
	gen generator,
	shard int,
	kind model.StrategyKind,
	accept acceptFunc,
	tracker *progress.Tracker,
	collector *Collector,
) bool {
	done := ctx.Done()
	for c := range gen.Shard(shard) {
		select {
		case <-done:
			return true
		default:
		}
		if address, ok := accept(c); ok {
			collector.Add(shard, model.NewMatch(kind, c, address))
		}
		tracker.RecordAttempt()
	}
	return false
}

// acceptFunc decides whether a candidate is a match and returns the derived
// address, if any.
type acceptFunc func(c model.Candidate) (string, bool)

// matcher builds the per-candidate match condition of a strategy.
func (e *Engine) matcher(s model.Strategy) acceptFunc {
	validator := e.collab.Validator
	checksumOnly := func(c model.Candidate) (string, bool) {
		return "", validator.ValidChecksum(c.Words)
	}

	var matchAddress func(address string) bool
	switch st := s.(type) {
	case model.PositionSubstitution:
		if st.TargetAddress == "" {
			return checksumOnly
		}
		target := st.TargetAddress
		matchAddress = func(address string) bool {
			return strings.EqualFold(address, target)
		}
	case model.PatternCompletion:
		suffix := strings.ToLower(st.AddressSuffix)
		matchAddress = func(address string) bool {
			return strings.HasSuffix(strings.ToLower(address), suffix)
		}
	default:
		return checksumOnly
	}

	deriver := e.collab.Deriver
	return func(c model.Candidate) (string, bool) {
		if !validator.ValidChecksum(c.Words) {
			return "", false
		}
		address, err := deriver.DeriveAddress(c.Words)
		if err != nil {
			e.logger.Debug("address derivation failed", "error", err)
			return "", false
		}
		return address, matchAddress(address)
	}
}

// notifyFunc logs each match and forwards it to the match callback.
func (e *Engine) notifyFunc(kind model.StrategyKind) func(model.Match) {
	return func(m model.Match) {
		e.logger.Info("match found",
			"strategy", kind.String(),
			"position", m.Position,
			"phrase", m.PhraseString(),
		)
		if e.onMatch != nil {
			e.onMatch(m)
		}
	}
}

// Run is a convenience wrapper that creates an Engine and returns only the
// matches of one search.
func Run(ctx context.Context, s model.Strategy, collab Collaborators, opts ...Option) ([]model.Match, error) {
	result, err := NewEngine(collab, opts...).Run(ctx, s)
	if err != nil {
		return nil, err
	}
	return result.Matches, nil
}
