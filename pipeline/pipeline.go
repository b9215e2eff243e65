package pipeline

import (
	"context"
	"errors"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wdstream/wdstream/progress"
)

// EntitySource produces entities one at a time, in input order, reporting
// io.EOF when exhausted. Both [github.com/wdstream/wdstream/rdfent.Reader]
// and [github.com/wdstream/wdstream/jsonent.Reader] implement it.
type EntitySource[T any] interface {
	Next() (T, error)
	LinesRead() int
}

// ProcessFunc runs the full per-entity filter/convert/serialize chain for
// one item. keep=false drops the entity from output without being an
// error.
type ProcessFunc[T any] func(item T) (data []byte, keep bool, err error)

// Batch is a contiguous run of entities assigned a dense, zero-based
// sequence number by the grouper.
type Batch[T any] struct {
	Seq   int
	Items []T
}

// result is one worker's filtered/serialized output for a batch, still
// tagged with its sequence number so the writer can re-impose order.
type result struct {
	seq  int
	data [][]byte
}

// Config sizes the pipeline. Zero values fall back to runtime.NumCPU()
// workers and a batch size of 1.
type Config struct {
	Workers   int
	BatchSize int
	// MaxLines stops the reader once this many input lines have been
	// consumed; zero means unlimited. The limit is checked after each
	// entity the source returns: that entity is still emitted, but an
	// entity the source has begun and not yet returned (for the N-Triples
	// reader, the one whose first line was the last line read) is not.
	MaxLines int
}

// Run drives the pipeline to completion: it groups entities from src into
// batches, fans them out across Config.Workers goroutines running process,
// and writes surviving output to w in strict input order. Run blocks until
// the source is exhausted (or ctx is canceled) and all output has been
// written, returning the first error encountered by any stage.
func Run[T any](ctx context.Context, src EntitySource[T], process ProcessFunc[T], w io.Writer, cfg Config, counters *progress.Counters) error {
	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	batchSize := cfg.BatchSize
	if batchSize < 1 {
		batchSize = 1
	}

	batches := make(chan Batch[T], workers*2)
	results := make(chan result, workers*2)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer close(batches)

		return groupEntities(groupCtx, src, batchSize, cfg.MaxLines, counters, batches)
	})

	var workersDone sync.WaitGroup
	workersDone.Add(workers)

	for i := 0; i < workers; i++ {
		group.Go(func() error {
			defer workersDone.Done()

			return runWorker(groupCtx, process, batches, results, counters)
		})
	}

	go func() {
		workersDone.Wait()
		close(results)
	}()

	group.Go(func() error {
		return writeOrdered(w, results, counters)
	})

	return group.Wait()
}

// groupEntities is the single reader/grouper goroutine: it pulls entities
// from src and flushes a batch onto out every batchSize entities, or when
// the source is exhausted, or once maxLines input lines have been
// consumed.
func groupEntities[T any](ctx context.Context, src EntitySource[T], batchSize, maxLines int, counters *progress.Counters, out chan<- Batch[T]) error {
	seq := 0

	var items []T

	flush := func() error {
		if len(items) == 0 {
			return nil
		}

		b := Batch[T]{Seq: seq, Items: items}
		seq++
		items = nil

		select {
		case out <- b:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		item, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return flush()
			}

			return err
		}

		if counters != nil {
			counters.EntitiesSeen.Add(1)
			counters.LinesRead.Store(int64(src.LinesRead()))
		}

		items = append(items, item)

		if len(items) >= batchSize {
			if err := flush(); err != nil {
				return err
			}
		}

		if maxLines > 0 && src.LinesRead() >= maxLines {
			return flush()
		}
	}
}

// runWorker pulls batches from in until it's closed or ctx is canceled,
// running process over every item and pushing the surviving output onto
// out.
func runWorker[T any](ctx context.Context, process ProcessFunc[T], in <-chan Batch[T], out chan<- result, counters *progress.Counters) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case b, ok := <-in:
			if !ok {
				return nil
			}

			data := make([][]byte, 0, len(b.Items))

			for _, item := range b.Items {
				bytes, keep, err := process(item)
				if err != nil {
					return err
				}

				if !keep {
					continue
				}

				data = append(data, bytes)

				if counters != nil {
					counters.EntitiesMatched.Add(1)
				}
			}

			select {
			case out <- result{seq: b.Seq, data: data}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// writeOrdered is the single writer goroutine: it buffers out-of-order
// results keyed by sequence number and writes them to w, each entity's
// bytes followed by a newline, as soon as the next expected sequence
// number becomes available.
func writeOrdered(w io.Writer, in <-chan result, counters *progress.Counters) error {
	pending := map[int][][]byte{}
	next := 0

	for r := range in {
		pending[r.seq] = r.data

		for {
			data, ok := pending[next]
			if !ok {
				break
			}

			delete(pending, next)
			next++

			for _, line := range data {
				n, err := w.Write(line)
				if err != nil {
					return err
				}

				if counters != nil {
					counters.BytesWritten.Add(int64(n))
				}

				nl, err := w.Write([]byte{'\n'})
				if err != nil {
					return err
				}

				if counters != nil {
					counters.BytesWritten.Add(int64(nl))
				}
			}
		}
	}

	return nil
}
