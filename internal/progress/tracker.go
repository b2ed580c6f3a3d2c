package progress

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/nao1215/seedscan/internal/model"
)

// DefaultInterval is the minimum wall-clock time between two snapshots.
const DefaultInterval = 2 * time.Second

// Clock abstracts the current time.
type Clock interface {
	Now() time.Time
}

// systemClock reads the real wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}

// Tracker counts attempts and emits rate-limited snapshots.
// It is safe for concurrent use by multiple search workers.
type Tracker struct {
	clock    Clock
	interval time.Duration
	start    time.Time
	emit     func(model.ProgressSnapshot)

	processed atomic.Uint64

	// lastEmit is the elapsed time, in nanoseconds since start, of the last
	// emitted snapshot. Workers race on it with CompareAndSwap so that only
	// one of them emits per interval.
	lastEmit atomic.Int64

	// emitMu orders the winners of successive intervals, so snapshots leave
	// the tracker with non-decreasing Processed and Elapsed.
	emitMu      sync.Mutex
	lastElapsed time.Duration
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock sets the time source. Default is SystemClock.
func WithClock(clock Clock) Option {
	return func(t *Tracker) {
		if clock != nil {
			t.clock = clock
		}
	}
}

// WithInterval sets the minimum time between snapshots.
// Non-positive values keep DefaultInterval.
func WithInterval(interval time.Duration) Option {
	return func(t *Tracker) {
		if interval > 0 {
			t.interval = interval
		}
	}
}

// NewTracker creates a Tracker that calls emit with each snapshot.
// The start time is read from the clock immediately. A nil emit just counts.
func NewTracker(emit func(model.ProgressSnapshot), opts ...Option) *Tracker {
	t := &Tracker{
		clock:    SystemClock(),
		interval: DefaultInterval,
		emit:     emit,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.start = t.clock.Now()
	return t
}

// RecordAttempt increments the processed counter and emits a snapshot when
// at least one interval has passed since the previous one.
// It returns the snapshot and true when one was emitted.
func (t *Tracker) RecordAttempt() (model.ProgressSnapshot, bool) {
	t.processed.Add(1)

	elapsed := t.clock.Now().Sub(t.start)
	last := t.lastEmit.Load()
	if elapsed-time.Duration(last) < t.interval {
		return model.ProgressSnapshot{}, false
	}
	if !t.lastEmit.CompareAndSwap(last, int64(elapsed)) {
		return model.ProgressSnapshot{}, false
	}

	t.emitMu.Lock()
	defer t.emitMu.Unlock()

	// A winner delayed before this point may hold an older clock reading
	// than the previous winner.
	elapsed = max(elapsed, t.lastElapsed)
	t.lastElapsed = elapsed

	snapshot := model.NewProgressSnapshot(t.processed.Load(), elapsed)
	if t.emit != nil {
		t.emit(snapshot)
	}
	return snapshot, true
}

// Processed returns the number of recorded attempts.
func (t *Tracker) Processed() uint64 {
	return t.processed.Load()
}

// Elapsed returns the time since the tracker was created.
func (t *Tracker) Elapsed() time.Duration {
	return t.clock.Now().Sub(t.start)
}

// Start returns the time the tracker was created.
func (t *Tracker) Start() time.Time {
	return t.start
}

// Snapshot returns the current numbers without emitting or resetting the throttle.
func (t *Tracker) Snapshot() model.ProgressSnapshot {
	return model.NewProgressSnapshot(t.Processed(), t.Elapsed())
}
