package progress

import (
	"sync"
	"testing"
	"time"

	"github.com/nao1215/seedscan/internal/model"
)

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// tickingClock moves forward a microsecond on every read.
type tickingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Microsecond)
	return c.now
}

func TestTrackerRecordAttempt(t *testing.T) {
	t.Parallel()

	t.Run("no snapshot before the interval", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		var emitted []model.ProgressSnapshot
		tr := NewTracker(func(s model.ProgressSnapshot) { emitted = append(emitted, s) }, WithClock(clock))

		for i := 0; i < 1000; i++ {
			tr.RecordAttempt()
		}
		clock.Advance(1999 * time.Millisecond)
		tr.RecordAttempt()

		if len(emitted) != 0 {
			t.Errorf("expected no snapshots, got %d", len(emitted))
		}
		if tr.Processed() != 1001 {
			t.Errorf("expected 1001 processed, got %d", tr.Processed())
		}
	})

	t.Run("one snapshot per interval regardless of call count", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		var emitted []model.ProgressSnapshot
		tr := NewTracker(func(s model.ProgressSnapshot) { emitted = append(emitted, s) }, WithClock(clock))

		clock.Advance(2 * time.Second)
		for i := 0; i < 500; i++ {
			tr.RecordAttempt()
		}
		if len(emitted) != 1 {
			t.Fatalf("expected 1 snapshot, got %d", len(emitted))
		}
		if emitted[0].Processed != 1 {
			t.Errorf("expected first snapshot at attempt 1, got %d", emitted[0].Processed)
		}
		if emitted[0].Rate != 0.5 {
			t.Errorf("expected rate 0.5/s, got %v", emitted[0].Rate)
		}

		clock.Advance(2 * time.Second)
		tr.RecordAttempt()
		if len(emitted) != 2 {
			t.Fatalf("expected 2 snapshots, got %d", len(emitted))
		}
		if emitted[1].Processed != 501 {
			t.Errorf("expected 501 processed, got %d", emitted[1].Processed)
		}
		if emitted[1].Elapsed != 4*time.Second {
			t.Errorf("expected 4s elapsed, got %v", emitted[1].Elapsed)
		}
	})

	t.Run("processed is monotonic across snapshots", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		var emitted []model.ProgressSnapshot
		tr := NewTracker(func(s model.ProgressSnapshot) { emitted = append(emitted, s) },
			WithClock(clock), WithInterval(time.Second))

		for i := 0; i < 10; i++ {
			clock.Advance(700 * time.Millisecond)
			tr.RecordAttempt()
		}
		for i := 1; i < len(emitted); i++ {
			if emitted[i].Processed < emitted[i-1].Processed {
				t.Errorf("processed decreased: %d -> %d", emitted[i-1].Processed, emitted[i].Processed)
			}
			if emitted[i].Elapsed-emitted[i-1].Elapsed < time.Second {
				t.Errorf("snapshots closer than interval: %v -> %v", emitted[i-1].Elapsed, emitted[i].Elapsed)
			}
			if emitted[i].Rate < 0 {
				t.Errorf("negative rate %v", emitted[i].Rate)
			}
		}
		if len(emitted) == 0 {
			t.Error("expected at least one snapshot")
		}
	})

	t.Run("concurrent workers emit once per interval", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		var mu sync.Mutex
		count := 0
		tr := NewTracker(func(model.ProgressSnapshot) {
			mu.Lock()
			count++
			mu.Unlock()
		}, WithClock(clock))
		clock.Advance(3 * time.Second)

		var wg sync.WaitGroup
		for w := 0; w < 8; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 1000; i++ {
					tr.RecordAttempt()
				}
			}()
		}
		wg.Wait()

		if count != 1 {
			t.Errorf("expected exactly 1 snapshot, got %d", count)
		}
		if tr.Processed() != 8000 {
			t.Errorf("expected 8000 processed, got %d", tr.Processed())
		}
	})

	t.Run("concurrent snapshots never go backwards", func(t *testing.T) {
		t.Parallel()

		clock := &tickingClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
		var mu sync.Mutex
		var emitted []model.ProgressSnapshot
		tr := NewTracker(func(s model.ProgressSnapshot) {
			mu.Lock()
			emitted = append(emitted, s)
			mu.Unlock()
		}, WithClock(clock), WithInterval(time.Nanosecond))

		var wg sync.WaitGroup
		for w := 0; w < 8; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 2000; i++ {
					tr.RecordAttempt()
				}
			}()
		}
		wg.Wait()

		if len(emitted) == 0 {
			t.Fatal("expected snapshots")
		}
		for i := 1; i < len(emitted); i++ {
			if emitted[i].Processed < emitted[i-1].Processed {
				t.Fatalf("snapshot %d: processed decreased %d -> %d", i, emitted[i-1].Processed, emitted[i].Processed)
			}
			if emitted[i].Elapsed < emitted[i-1].Elapsed {
				t.Fatalf("snapshot %d: elapsed decreased %v -> %v", i, emitted[i-1].Elapsed, emitted[i].Elapsed)
			}
		}
		if last := emitted[len(emitted)-1].Processed; last > 16000 {
			t.Errorf("processed %d exceeds attempts", last)
		}
	})

	t.Run("nil callback still counts", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		tr := NewTracker(nil, WithClock(clock))
		clock.Advance(5 * time.Second)
		if _, ok := tr.RecordAttempt(); !ok {
			t.Error("expected snapshot to be reported even without callback")
		}
	})
}

func TestTrackerSnapshot(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	tr := NewTracker(nil, WithClock(clock))
	tr.RecordAttempt()
	tr.RecordAttempt()
	clock.Advance(time.Second)

	s := tr.Snapshot()
	if s.Processed != 2 || s.Elapsed != time.Second || s.Rate != 2 {
		t.Errorf("unexpected snapshot %+v", s)
	}
}
