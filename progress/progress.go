package progress

import (
	"sync/atomic"
	"time"
)

// Counters holds the atomic scalars the pipeline updates as it runs:
// lines read from the input, entities grouped, entities surviving filters,
// and bytes written to the output. Safe for concurrent use; every field is
// updated with atomic operations and never requires external locking.
//
// Create instances with [NewCounters].
type Counters struct {
	LinesRead       atomic.Int64
	EntitiesSeen    atomic.Int64
	EntitiesMatched atomic.Int64
	BytesWritten    atomic.Int64
}

// NewCounters returns a zeroed [Counters].
func NewCounters() *Counters {
	return &Counters{}
}

// Snapshot is a point-in-time read of [Counters].
type Snapshot struct {
	LinesRead       int64
	EntitiesSeen    int64
	EntitiesMatched int64
	BytesWritten    int64
}

// Snapshot reads all counters in one pass. Individual fields may be updated
// concurrently with the read, so the snapshot is approximate, not atomic as a
// whole -- sufficient for progress reporting.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		LinesRead:       c.LinesRead.Load(),
		EntitiesSeen:    c.EntitiesSeen.Load(),
		EntitiesMatched: c.EntitiesMatched.Load(),
		BytesWritten:    c.BytesWritten.Load(),
	}
}

// Watcher samples a [Counters] on a fixed cadence and reports each sample.
//
// Create instances with [Config.NewWatcher].
type Watcher struct {
	counters *Counters
	interval time.Duration
	report   func(Snapshot)
}

// Start begins sampling in a background goroutine. The returned stop function
// signals the goroutine to exit, reports one final sample, and blocks until
// it has exited. Start is a no-op returning a no-op stop function if w is
// nil, so callers can always defer the returned function regardless of
// whether reporting is enabled.
func (w *Watcher) Start() (stop func()) {
	if w == nil {
		return func() {}
	}

	quit := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-quit:
				w.report(w.counters.Snapshot())

				return
			case <-ticker.C:
				w.report(w.counters.Snapshot())
			}
		}
	}()

	return func() {
		close(quit)
		<-done
	}
}
