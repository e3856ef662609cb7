// Package executor provides the execution engines that drive batched
// search. An Executor applies a function to every index of a range;
// engines differ only in scheduling, never in observable results.
//
// Every engine guarantees that fn is invoked at most once per index
// and that no two concurrent invocations share an index. Callers rely
// on this to write each output slot exactly once without locking.
package executor

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Executor applies fn to every index in [0, n). No ordering between
// indices is guaranteed. A non-nil error means the pass was cut short
// (context cancellation or engine shutdown) and some indices may not
// have been visited.
type Executor interface {
	ForEach(ctx context.Context, n int, fn func(i int)) error
}

// cancelCheckInterval is how many indices a worker processes between
// context polls. Polling per index would dominate cheap workloads.
const cancelCheckInterval = 1024

// Sequential runs the range as a plain loop on the calling goroutine.
// It is the default engine: for small batches the loop beats any
// goroutine fan-out.
type Sequential struct{}

// ForEach implements Executor.
func (Sequential) ForEach(ctx context.Context, n int, fn func(i int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		fn(i)
	}
	return nil
}

// Parallel fans the range out across goroutines, one contiguous chunk
// per worker. Goroutines are spawned per call; for sustained query
// load prefer Pool, which reuses its workers.
type Parallel struct {
	// MaxWorkers caps the number of goroutines. Defaults to
	// runtime.GOMAXPROCS(0) when <= 0.
	MaxWorkers int

	// MinPerWorker is the smallest chunk worth a goroutine. Ranges
	// smaller than this run sequentially. Defaults to
	// DefaultMinPerWorker when <= 0.
	MinPerWorker int
}

// DefaultMinPerWorker is the default fan-out grain. Below this many
// indices per worker the goroutine overhead outweighs the search work.
const DefaultMinPerWorker = 128

// ForEach implements Executor.
func (p Parallel) ForEach(ctx context.Context, n int, fn func(i int)) error {
	if n == 0 {
		return ctx.Err()
	}

	workers := p.MaxWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	grain := p.MinPerWorker
	if grain <= 0 {
		grain = DefaultMinPerWorker
	}
	if maxUseful := (n + grain - 1) / grain; workers > maxUseful {
		workers = maxUseful
	}
	if workers <= 1 {
		return Sequential{}.ForEach(ctx, n, fn)
	}

	chunk := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < n; start += chunk {
		start := start
		end := start + chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			return runChunk(gctx, start, end, fn)
		})
	}

	return g.Wait()
}

// runChunk applies fn to [start, end), polling ctx between intervals.
func runChunk(ctx context.Context, start, end int, fn func(i int)) error {
	for i := start; i < end; i++ {
		if (i-start)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		fn(i)
	}
	return nil
}
