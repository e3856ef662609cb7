package executor

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ErrPoolClosed is returned by ForEach when the pool has been closed.
var ErrPoolClosed = errors.New("executor: pool is closed")

// Pool is an Executor backed by a fixed set of long-lived worker
// goroutines. It avoids the per-call goroutine spawn cost of Parallel,
// which matters under high query rates.
//
// A Pool is safe for concurrent use. Concurrent ForEach calls are
// bounded by MaxInFlight; excess callers block until a slot frees up
// or their context is canceled.
type Pool struct {
	numWorkers int
	workCh     chan func()
	stopCh     chan struct{}
	wg         sync.WaitGroup
	closed     atomic.Bool
	submitMu   sync.RWMutex
	inflight   *semaphore.Weighted
}

// PoolOptions configures a Pool.
type PoolOptions struct {
	// MaxInFlight bounds concurrent ForEach calls. Defaults to the
	// number of workers when <= 0.
	MaxInFlight int64
}

// NewPool creates a pool with numWorkers worker goroutines.
// numWorkers <= 0 defaults to runtime.GOMAXPROCS(0).
//
// Close the pool when done to release the workers.
func NewPool(numWorkers int, optFns ...func(*PoolOptions)) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	opts := PoolOptions{}
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}
	if opts.MaxInFlight <= 0 {
		opts.MaxInFlight = int64(numWorkers)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workCh:     make(chan func(), numWorkers*2),
		stopCh:     make(chan struct{}),
		inflight:   semaphore.NewWeighted(opts.MaxInFlight),
	}

	p.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}

	return p
}

// worker processes tasks until the pool stops, draining queued work
// before exiting.
func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopCh:
			for {
				select {
				case task, ok := <-p.workCh:
					if !ok {
						return
					}
					task()
				default:
					return
				}
			}
		case task, ok := <-p.workCh:
			if !ok {
				return
			}
			task()
		}
	}
}

// ForEach implements Executor. The range is split into one contiguous
// chunk per worker and the chunks are run on the pool.
//
// If the pool closes or ctx is canceled while chunks are being
// enqueued, already-enqueued chunks still run to completion before the
// error is returned.
func (p *Pool) ForEach(ctx context.Context, n int, fn func(i int)) error {
	if n == 0 {
		return ctx.Err()
	}
	if p.closed.Load() {
		return ErrPoolClosed
	}

	if err := p.inflight.Acquire(ctx, 1); err != nil {
		return err
	}
	defer p.inflight.Release(1)

	chunk := (n + p.numWorkers - 1) / p.numWorkers

	var wg sync.WaitGroup
	var submitErr error
	for start := 0; start < n; start += chunk {
		start := start
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		err := p.submit(ctx, func() {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		})
		if err != nil {
			wg.Done()
			submitErr = err
			break
		}
	}

	wg.Wait()
	return submitErr
}

// submit enqueues one task, with backpressure from the work channel.
func (p *Pool) submit(ctx context.Context, task func()) error {
	p.submitMu.RLock()
	defer p.submitMu.RUnlock()

	if p.closed.Load() {
		return ErrPoolClosed
	}

	select {
	case p.workCh <- task:
		return nil
	case <-p.stopCh:
		return ErrPoolClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close shuts the pool down. Queued tasks are drained; idle workers
// exit. Close is idempotent.
func (p *Pool) Close() {
	if !p.closed.CompareAndSwap(false, true) {
		return
	}

	p.submitMu.Lock()
	close(p.stopCh)
	close(p.workCh)
	p.submitMu.Unlock()

	p.wg.Wait()
}
